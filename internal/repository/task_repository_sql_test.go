package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// These tests pin the generated SQL itself: the mutation predicate must
// carry both the task id and the owner id, and the affected-row count is
// the only success signal.

func setupMockRepo(t *testing.T) (TaskRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewTaskRepository(db, 5*time.Second), mock
}

func TestTaskRepository_Update_PredicateIncludesOwner(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec(`UPDATE "tasks" SET "title"=\$1 WHERE id = \$2 AND user_id = \$3`).
		WithArgs("after", 7, 42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	title := "after"
	require.NoError(t, repo.Update(7, 42, TaskUpdate{Title: &title}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_ZeroRowsIsNotFound(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec(`UPDATE "tasks" SET "title"=\$1 WHERE id = \$2 AND user_id = \$3`).
		WithArgs("after", 7, 42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	title := "after"
	err := repo.Update(7, 42, TaskUpdate{Title: &title})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete_PredicateIncludesOwner(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(7, 42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(7, 42))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete_ZeroRowsIsNotFound(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(7, 42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(7, 42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
