package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/okhotin/habitlog/internal/error_values"
	"github.com/okhotin/habitlog/internal/repository/mocks"
	"github.com/okhotin/habitlog/internal/service"
	"github.com/okhotin/habitlog/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestCreateHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo)
	habitID := uuid.New()
	userID := uuid.New()
	req := service.HabitRequest{
		Title:       "test_habit",
		Description: "test_desc",
	}
	ctx := context.Background()
	t.Run("created", func(t *testing.T) {
		habitsRepo.EXPECT().Create(gomock.Any(), &entity.Habit{
			UserID:      userID,
			Title:       req.Title,
			Description: req.Description,
		}).Return(habitID, nil)
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:          habitID,
			UserID:      userID,
			Title:       req.Title,
			Description: req.Description,
		}, nil)
		habit, err := serv.CreateHabit(ctx, userID, req)
		assert.NoError(t, err)
		assert.Equal(t, habitID, habit.ID)
	})
	t.Run("error owner doesn't exist", func(t *testing.T) {
		habitsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrUserNotFound)
		_, err := serv.CreateHabit(ctx, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("repository error", func(t *testing.T) {
		habitsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errors.New("db error"))
		_, err := serv.CreateHabit(ctx, userID, req)
		assert.Error(t, err)
	})
}

func TestGetHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo)
	habitID := uuid.New()
	userID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "owned habit provided",
			Error: nil,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
					ID:     habitID,
					UserID: userID,
					Title:  "test_habit",
				}, nil)
			},
		},
		{
			Desc:  "error wrong owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
					ID:     habitID,
					UserID: uuid.New(),
					Title:  "test_habit",
				}, nil)
			},
		},
		{
			Desc:  "error habit not found",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.GetHabit(ctx, habitID, userID)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestUpdateHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo)
	habitID := uuid.New()
	userID := uuid.New()
	req := service.HabitRequest{
		Title:       "new_title",
		Description: "new_desc",
	}
	ctx := context.Background()
	t.Run("updated wholesale", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:          habitID,
			UserID:      userID,
			Title:       "old_title",
			Description: "old_desc",
		}, nil)
		habitsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, habit *entity.Habit) error {
				assert.Equal(t, req.Title, habit.Title)
				assert.Equal(t, req.Description, habit.Description)
				return nil
			})
		err := serv.UpdateHabit(ctx, habitID, userID, req)
		assert.NoError(t, err)
	})
	t.Run("error wrong owner", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:     habitID,
			UserID: uuid.New(),
		}, nil)
		err := serv.UpdateHabit(ctx, habitID, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("error habit not found", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
		err := serv.UpdateHabit(ctx, habitID, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestDeleteHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo)
	habitID := uuid.New()
	userID := uuid.New()
	ctx := context.Background()
	t.Run("deleted", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:     habitID,
			UserID: userID,
		}, nil)
		habitsRepo.EXPECT().Delete(gomock.Any(), habitID).Return(nil)
		err := serv.DeleteHabit(ctx, habitID, userID)
		assert.NoError(t, err)
	})
	t.Run("error wrong owner", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:     habitID,
			UserID: uuid.New(),
		}, nil)
		err := serv.DeleteHabit(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("error habit not found", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
		err := serv.DeleteHabit(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestGetUserHabits(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo)
	userID := uuid.New()
	ctx := context.Background()
	t.Run("listed with pagination", func(t *testing.T) {
		habitsRepo.EXPECT().GetByUserID(gomock.Any(), userID, 10, 20).Return([]*entity.Habit{
			{ID: uuid.New(), UserID: userID, Title: "test_habit"},
		}, nil)
		habits, err := serv.GetUserHabits(ctx, userID, service.PaginationOpts{Limit: 10, Offset: 20})
		assert.NoError(t, err)
		assert.Len(t, habits, 1)
	})
	t.Run("zero limit lists everything", func(t *testing.T) {
		all := make([]*entity.Habit, 0, 12)
		for range 12 {
			all = append(all, &entity.Habit{ID: uuid.New(), UserID: userID, Title: "test_habit"})
		}
		habitsRepo.EXPECT().GetAllByUserID(gomock.Any(), userID).Return(all, nil)
		habits, err := serv.GetUserHabits(ctx, userID, service.PaginationOpts{})
		assert.NoError(t, err)
		assert.Len(t, habits, 12)
	})
	t.Run("repository error", func(t *testing.T) {
		habitsRepo.EXPECT().GetByUserID(gomock.Any(), userID, 10, 0).Return(nil, errors.New("db error"))
		_, err := serv.GetUserHabits(ctx, userID, service.PaginationOpts{Limit: 10})
		assert.Error(t, err)
	})
}
