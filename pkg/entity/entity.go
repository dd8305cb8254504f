package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
}

type Habit struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HabitLog struct {
	ID        int64     `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	LogDate   time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type HabitStats struct {
	ID            uuid.UUID  `json:"habit_id"`
	TotalLogs     int        `json:"total_logs"`
	CurrentStreak int        `json:"current_streak"`
	MaxStreak     int        `json:"max_streak"`
	LastLog       *time.Time `json:"last_log,omitempty"`
}
