package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

var taskColumns = []string{
	"id", "title", "description", "start_date", "end_date", "progress", "priority", "status",
	"project_id", "assignee_id", "parent_task_id", "created_at", "updated_at",
}

func TestTaskRepository_Save(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)
	task := &model.Task{
		ID:        uuid.New(),
		Title:     "Write docs",
		StartDate: model.MustParseDate("2024-01-10"),
		EndDate:   model.MustParseDate("2024-01-12"),
		Priority:  model.PriorityHigh,
		Status:    model.TaskTodo,
		ProjectID: uuid.New(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "tasks" .* ON CONFLICT \("id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.Save(context.Background(), task)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_List(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)
	projectID := uuid.New()
	created := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "tasks" ORDER BY created_at, id`).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(uuid.NewString(), "a", nil, "2024-01-10", "2024-01-12", 30, "HIGH", "IN_PROGRESS",
				projectID.String(), nil, nil, created, created))

	// Act
	tasks, err := repo.List(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "2024-01-10", tasks[0].StartDate.String())
	assert.Equal(t, 30, tasks[0].Progress)
	assert.Equal(t, model.TaskInProgress, tasks[0].Status)
	assert.Nil(t, tasks[0].AssigneeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = `).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
