// Package notify holds transient user-facing messages (toasts) until a
// renderer drains them or they expire.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
)

const DefaultDuration = 2 * time.Second

type Toast struct {
	ID         uuid.UUID     `json:"id"`
	Message    string        `json:"message"`
	Severity   Severity      `json:"severity"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
	CreatedAt  time.Time     `json:"created_at"`
}

func (t Toast) ExpiresAt() time.Time {
	return t.CreatedAt.Add(t.Duration)
}

// Queue is a FIFO of toasts. The zero value is not usable; use NewQueue.
type Queue struct {
	mu     sync.Mutex
	items  []Toast
	limit  int
	clock  func() time.Time
	defDur time.Duration
}

type Option func(*Queue)

func WithClock(clock func() time.Time) Option {
	return func(q *Queue) { q.clock = clock }
}

func WithLimit(n int) Option {
	return func(q *Queue) { q.limit = n }
}

func WithDefaultDuration(d time.Duration) Option {
	return func(q *Queue) { q.defDur = d }
}

func NewQueue(opts ...Option) *Queue {
	q := &Queue{limit: 50, clock: time.Now, defDur: DefaultDuration}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue adds a toast. A non-positive duration uses the queue default.
// When the queue is full the oldest toast is dropped.
func (q *Queue) Enqueue(message string, severity Severity, duration time.Duration) Toast {
	if duration <= 0 {
		duration = q.defDur
	}
	t := Toast{
		ID:         uuid.New(),
		Message:    message,
		Severity:   severity,
		Duration:   duration,
		DurationMS: duration.Milliseconds(),
		CreatedAt:  q.clock(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, t)
	if q.limit > 0 && len(q.items) > q.limit {
		q.items = q.items[len(q.items)-q.limit:]
	}
	return t
}

// Pending returns live toasts without removing them, discarding expired ones.
func (q *Queue) Pending() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.expireLocked()
	out := make([]Toast, len(q.items))
	copy(out, q.items)
	return out
}

// Drain returns live toasts and empties the queue.
func (q *Queue) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.expireLocked()
	out := q.items
	q.items = nil
	if out == nil {
		out = []Toast{}
	}
	return out
}

func (q *Queue) expireLocked() {
	at := q.clock()
	kept := q.items[:0]
	for _, t := range q.items {
		if at.Before(t.ExpiresAt()) {
			kept = append(kept, t)
		}
	}
	q.items = kept
}
