package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/okhotin/habitlog/internal/error_values"
	"github.com/okhotin/habitlog/internal/repository"
	"github.com/okhotin/habitlog/pkg/entity"
)

type HabitLogsService struct {
	habitsRepo repository.HabitsRepositoryI
	logsRepo   repository.HabitLogsRepositoryI
}

func NewHabitLogsService(habitsRepo repository.HabitsRepositoryI, logsRepo repository.HabitLogsRepositoryI) *HabitLogsService {
	if habitsRepo == nil || logsRepo == nil {
		log.Fatal("on habit logs service provided nil repos")
	}
	return &HabitLogsService{
		habitsRepo: habitsRepo,
		logsRepo:   logsRepo,
	}
}

// ownedHabit loads the habit and rejects callers that don't own it
func (serv *HabitLogsService) ownedHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (serv *HabitLogsService) Track(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (*entity.HabitLog, error) {
	_, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	if date.After(time.Now()) {
		return nil, errorvalues.ErrLogDateNotAllowed
	}
	logRow, err := serv.logsRepo.Create(ctx, habitID, date)
	if err != nil {
		// The unique constraint catches duplicates, including the
		// concurrent-request race this pre-insert code never sees
		switch {
		case errors.Is(err, errorvalues.ErrLogExists):
			return nil, errorvalues.ErrLogExists
		case errors.Is(err, errorvalues.ErrHabitNotFound):
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return logRow, nil
}

func (serv *HabitLogsService) Untrack(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error {
	_, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}
	err = serv.logsRepo.Delete(ctx, habitID, date)
	if err != nil {
		// Untrack is idempotent: deleting a log that isn't there is fine
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return nil
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *HabitLogsService) GetLogs(ctx context.Context, habitID, userID uuid.UUID) ([]entity.HabitLog, error) {
	_, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	logs, err := serv.logsRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return logs, nil
}

func (serv *HabitLogsService) GetLogsRange(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.HabitLog, error) {
	_, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	logs, err := serv.logsRepo.GetByHabitAndDateRange(ctx, habitID, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return logs, nil
}

func (serv *HabitLogsService) GetStats(ctx context.Context, habitID, userID uuid.UUID) (*entity.HabitStats, error) {
	_, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	total, err := serv.logsRepo.CountByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	last, err := serv.logsRepo.GetLastLogDate(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	stats := entity.HabitStats{
		ID:        habitID,
		TotalLogs: total,
		LastLog:   last,
	}
	if total == 0 {
		return &stats, nil
	}
	logs, err := serv.logsRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	stats.CurrentStreak, stats.MaxStreak = countStreaks(logs, time.Now().UTC())
	return &stats, nil
}

// countStreaks walks log dates newest-first. The current streak counts
// consecutive days ending today or yesterday (a habit isn't broken until
// a full day is missed); the max streak is the longest run anywhere.
func countStreaks(logs []entity.HabitLog, now time.Time) (current, max int) {
	if len(logs) == 0 {
		return 0, 0
	}
	today := truncateToDay(now)
	run := 1
	prev := truncateToDay(logs[0].LogDate)
	if d := today.Sub(prev); d <= 24*time.Hour {
		current = 1
	}
	for _, logRow := range logs[1:] {
		day := truncateToDay(logRow.LogDate)
		if prev.Sub(day) == 24*time.Hour {
			run++
			if current > 0 {
				current = run
			}
		} else {
			if run > max {
				max = run
			}
			run = 1
			if current > 0 {
				// first gap ends the current streak
				current = -current
			}
		}
		prev = day
	}
	if run > max {
		max = run
	}
	if current < 0 {
		current = -current
	}
	return current, max
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
