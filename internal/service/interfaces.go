package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/okhotin/habitlog/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type RegisterRequest struct {
	Username string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
}

type HabitRequest struct {
	Title       string
	Description string
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID.
	// Unknown username and wrong password fail identically
	Login(ctx context.Context, username, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Deletes account with owned habits and logs. Caller may only delete themselves
	DeleteAccount(ctx context.Context, callerID, targetID uuid.UUID) error
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req HabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req HabitRequest) error
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type HabitLogsServiceI interface {
	// Records a completion of the habit for the date. Duplicate (habit, date) is rejected
	Track(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (*entity.HabitLog, error)
	// Removes a completion. Succeeds silently when no matching log exists
	Untrack(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error
	GetLogs(ctx context.Context, habitID, userID uuid.UUID) ([]entity.HabitLog, error)
	GetLogsRange(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.HabitLog, error)
	GetStats(ctx context.Context, habitID, userID uuid.UUID) (*entity.HabitStats, error)
}
