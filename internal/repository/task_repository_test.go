package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestGormTaskRepository_ListByOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "description", "status"}).
		AddRow(1, 5, "first", "pending").
		AddRow(2, 5, "second", "completed")
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE user_id = \$1`).
		WithArgs(5).
		WillReturnRows(rows)

	tasks, err := repo.ListByOwner(5)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "first", tasks[0].Description)
	require.Equal(t, uint64(5), tasks[1].UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_FindByIDAndOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "description", "status"}).
		AddRow(3, 5, "mine", "pending")
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(3, 5, 1).
		WillReturnRows(rows)

	task, err := repo.FindByIDAndOwner(3, 5)
	require.NoError(t, err)
	require.Equal(t, uint64(3), task.ID)
	require.Equal(t, "mine", task.Description)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks"`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(3)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
