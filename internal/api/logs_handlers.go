package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/okhotin/habitlog/internal/error_values"
	"github.com/okhotin/habitlog/pkg/entity"
	"github.com/okhotin/habitlog/pkg/httputil"
)

const dateLayout = "2006-01-02"

type TrackRequest struct {
	Date string `json:"date"`
}

type HabitLogResponse struct {
	ID      int64  `json:"id"`
	HabitID string `json:"habit_id"`
	Date    string `json:"date"`
}

func toLogResponse(logRow *entity.HabitLog) HabitLogResponse {
	return HabitLogResponse{
		ID:      logRow.ID,
		HabitID: logRow.HabitID.String(),
		Date:    logRow.LogDate.UTC().Format(dateLayout),
	}
}

func (s *Server) TrackHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("track error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("track error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	// Date is optional: an empty body or empty date means "today".
	// A body that is present but corrupt is still rejected
	var req TrackRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Error("track error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		date, err = time.ParseInLocation(dateLayout, req.Date, time.UTC)
		if err != nil {
			logger.Error("track error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	logRow, err := s.logsService.Track(ctx, id, uid, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrLogExists):
			logger.Error("track error: already tracked for that date")
			httputil.WriteErrorResponse(w, http.StatusConflict, "habit is already tracked for that date", nil)
		case errors.Is(err, errorvalues.ErrLogDateNotAllowed):
			logger.Error("track error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "tracking future dates is not allowed", nil)
		default:
			writeHabitLookupError(w, logger, "track error", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, toLogResponse(logRow))
	logger.Info("habit tracked")
}

func (s *Server) GetHabitLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get logs error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	var logs []entity.HabitLog
	fromStr, toStr := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if fromStr != "" || toStr != "" {
		from, errFrom := time.ParseInLocation(dateLayout, fromStr, time.UTC)
		to, errTo := time.ParseInLocation(dateLayout, toStr, time.UTC)
		if errFrom != nil || errTo != nil || to.Before(from) {
			logger.Error("get logs error: invalid date range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range, expected from/to as YYYY-MM-DD", nil)
			return
		}
		logs, err = s.logsService.GetLogsRange(ctx, id, uid, from, to)
	} else {
		logs, err = s.logsService.GetLogs(ctx, id, uid)
	}
	if err != nil {
		writeHabitLookupError(w, logger, "get logs error", err)
		return
	}
	result := make([]HabitLogResponse, 0, len(logs))
	for i := range logs {
		result = append(result, toLogResponse(&logs[i]))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("logs provided")
}

func (s *Server) GetHabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get stats error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.logsService.GetStats(ctx, id, uid)
	if err != nil {
		writeHabitLookupError(w, logger, "get stats error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}

func (s *Server) UntrackHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("untrack error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("untrack error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	date, err := time.ParseInLocation(dateLayout, r.PathValue("date"), time.UTC)
	if err != nil {
		logger.Error("untrack error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.logsService.Untrack(ctx, id, uid, date)
	if err != nil {
		writeHabitLookupError(w, logger, "untrack error", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("habit untracked")
}
