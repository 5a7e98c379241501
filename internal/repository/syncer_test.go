package repository_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/store"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestSyncer_Load(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	st := store.New()
	var logs bytes.Buffer
	syncer := repository.NewSyncer(gormDB, st, newTestLogger(&logs))
	projectID := uuid.New()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(projectID.String(), "Launch", nil, "2024-01-01", "2024-02-01", "IN_PROGRESS", nil, 0, 0, created, created))
	mock.ExpectQuery(`SELECT \* FROM "project_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"project_id", "user_id"}))
	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(uuid.NewString(), "a", nil, "2024-01-10", "2024-01-12", 0, "LOW", "COMPLETED",
				projectID.String(), nil, nil, created, created))

	// Act
	err := syncer.Load(context.Background())

	// Assert
	require.NoError(t, err)
	p, err := st.Project(projectID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.TaskCount, "counters are rebuilt from loaded tasks")
	assert.Equal(t, 1, p.CompletedTaskCount)
	assert.Len(t, st.TasksByProject(projectID), 1)
	assert.Contains(t, logs.String(), "store loaded from database")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncer_WritesStoreChanges(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	st := store.New()
	var logs bytes.Buffer
	stop := repository.NewSyncer(gormDB, st, newTestLogger(&logs)).Start()
	defer stop()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "projects"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "project_members"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "projects" WHERE id = `).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	p, err := st.CreateProject(store.ProjectInput{
		Name:      "Launch",
		StartDate: model.MustParseDate("2024-01-01"),
		EndDate:   model.MustParseDate("2024-01-31"),
	})
	require.NoError(t, err)
	require.NoError(t, st.DeleteProject(p.ID))

	// Assert
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, logs.String())
}

func TestSyncer_LogsFailedWrites(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	st := store.New()
	var logs bytes.Buffer
	stop := repository.NewSyncer(gormDB, st, newTestLogger(&logs)).Start()
	defer stop()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "projects"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := st.CreateProject(store.ProjectInput{
		Name:      "Launch",
		StartDate: model.MustParseDate("2024-01-01"),
		EndDate:   model.MustParseDate("2024-01-31"),
	})

	require.NoError(t, err, "the store stays authoritative")
	assert.Contains(t, logs.String(), "store sync failed")
	assert.Len(t, st.Projects(), 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncer_IgnoresAlreadyDeletedRows(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	syncer := repository.NewSyncer(gormDB, store.New(), newTestLogger(&bytes.Buffer{}))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = `).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := syncer.Apply(context.Background(), store.Event{Kind: store.Deleted, Collection: store.Tasks, ID: uuid.New()})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncer_DeleteDuringUpdateDeliveryStaysDeleted(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	st := store.New()
	p, err := st.CreateProject(store.ProjectInput{
		Name:      "Launch",
		StartDate: model.MustParseDate("2024-01-01"),
		EndDate:   model.MustParseDate("2024-01-31"),
	})
	require.NoError(t, err)
	tk, err := st.CreateTask(store.TaskInput{
		Title:     "a",
		ProjectID: p.ID,
		StartDate: model.MustParseDate("2024-01-10"),
		EndDate:   model.MustParseDate("2024-01-12"),
	})
	require.NoError(t, err)

	// deletes the task while the move is still being delivered
	var once sync.Once
	st.Subscribe(func(e store.Event) {
		if e.Collection == store.Tasks && e.Kind == store.Updated {
			once.Do(func() { require.NoError(t, st.DeleteTask(tk.ID)) })
		}
	})
	var logs bytes.Buffer
	stop := repository.NewSyncer(gormDB, st, newTestLogger(&logs)).Start()
	defer stop()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "tasks" .* ON CONFLICT`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = `).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "projects"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "project_members"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	_, err = st.MoveTask(tk.ID, model.MustParseDate("2024-01-11"), model.MustParseDate("2024-01-13"))

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, logs.String())
}
