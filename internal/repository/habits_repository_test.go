package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/okhotin/habitlog/internal/error_values"
	"github.com/okhotin/habitlog/internal/repository"
	"github.com/okhotin/habitlog/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateHabit(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	habit := entity.Habit{
		UserID:      uuid.New(),
		Title:       "test_habit",
		Description: "test_desc",
	}
	habitID := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO habits (user_id, title, description) VALUES ($1, $2, $3) RETURNING id;`)
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habit.UserID, habit.Title, habit.Description).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(habitID))
		id, err := repo.Create(ctx, &habit)
		assert.NoError(t, err)
		assert.Equal(t, habitID, id)
	})
	t.Run("owner doesn't exist", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habit.UserID, habit.Title, habit.Description).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &habit)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habit.UserID, habit.Title, habit.Description).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &habit)
		assert.Error(t, err)
	})
}

func TestGetHabitByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	habit := entity.Habit{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "test_habit",
		Description: "test_desc",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT user_id, title, description, created_at, updated_at FROM habits WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "title", "description", "created_at", "updated_at"}).
				AddRow(habit.UserID, habit.Title, habit.Description, habit.CreatedAt, habit.UpdatedAt))
		result, err := repo.GetByID(ctx, habit.ID)
		assert.NoError(t, err)
		assert.Equal(t, habit, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestGetHabitsByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`SELECT id, user_id, title, description, created_at, updated_at
		FROM habits WHERE user_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`)
	t.Run("listed", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "title", "description", "created_at", "updated_at"})
		for range 3 {
			rows.AddRow(uuid.New(), uid, "test_habit", "test_desc", time.Now(), time.Now())
		}
		conn.ExpectQuery(query).WithArgs(uid, 10, 0).WillReturnRows(rows)
		habits, err := repo.GetByUserID(ctx, uid, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, habits, 3)
	})
	t.Run("empty list", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, 10, 0).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "description", "created_at", "updated_at"}))
		habits, err := repo.GetByUserID(ctx, uid, 10, 0)
		assert.NoError(t, err)
		assert.Empty(t, habits)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, 10, 0).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, uid, 10, 0)
		assert.Error(t, err)
	})
}

func TestGetAllHabitsByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`SELECT id, user_id, title, description, created_at, updated_at
		FROM habits WHERE user_id = $1 ORDER BY created_at;`)
	t.Run("whole list provided", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "title", "description", "created_at", "updated_at"})
		for range 12 {
			rows.AddRow(uuid.New(), uid, "test_habit", "test_desc", time.Now(), time.Now())
		}
		conn.ExpectQuery(query).WithArgs(uid).WillReturnRows(rows)
		habits, err := repo.GetAllByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.Len(t, habits, 12)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetAllByUserID(ctx, uid)
		assert.Error(t, err)
	})
}

func TestUpdateHabit(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	habit := entity.Habit{
		ID:          uuid.New(),
		Title:       "new_title",
		Description: "new_desc",
	}
	query := regexp.QuoteMeta(`UPDATE habits SET title = $1, description = $2, updated_at = NOW() WHERE id = $3;`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(habit.Title, habit.Description, habit.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, &habit)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(habit.Title, habit.Description, habit.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, &habit)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestDeleteHabit(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM habits WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}
