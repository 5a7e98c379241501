package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/internal/store"
)

var fixedNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

// MockUserDirectory stands in for the identity service.
type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func newRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set(middleware.UserIDKey, userID)
		}
		c.Next()
	})
	return r
}

func newStore() *store.Store {
	return store.New(store.WithClock(clock))
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decode[T any](resp *httptest.ResponseRecorder) (T, error) {
	var v T
	err := json.Unmarshal(resp.Body.Bytes(), &v)
	return v, err
}

func seedProject(st *store.Store, name string) model.Project {
	p, err := st.CreateProject(store.ProjectInput{
		Name:      name,
		StartDate: model.MustParseDate("2024-01-01"),
		EndDate:   model.MustParseDate("2024-03-31"),
	})
	if err != nil {
		panic(err)
	}
	return p
}

func seedTask(st *store.Store, projectID uuid.UUID, title, start, end string) model.Task {
	t, err := st.CreateTask(store.TaskInput{
		Title:     title,
		StartDate: model.MustParseDate(start),
		EndDate:   model.MustParseDate(end),
		ProjectID: projectID,
	})
	if err != nil {
		panic(err)
	}
	return t
}
