package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/okhotin/habitlog/internal/error_values"
	"github.com/okhotin/habitlog/pkg/cleanup"
	"github.com/okhotin/habitlog/pkg/entity"
)

type HabitLogsRepository struct {
	conn PgConnection
}

func NewHabitLogsRepo(cfg DBConfig) *HabitLogsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitLogsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitLogsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing habitLogsRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitLogsRepository{
		conn: pool,
	}
}

func NewHabitLogsRepoWithConn(conn PgConnection) *HabitLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitLogsRepo: " + err.Error())
	}
	return &HabitLogsRepository{
		conn: conn,
	}
}

// Create inserts a log row. The unique (habit_id, log_date) constraint is the
// backstop for concurrent duplicate tracking: the loser of the race gets
// ErrLogExists, never a second row.
func (lr *HabitLogsRepository) Create(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitLog, error) {
	logRow := entity.HabitLog{
		HabitID: habitID,
		LogDate: date,
	}
	row := lr.conn.QueryRow(
		ctx,
		`INSERT INTO habit_logs (habit_id, log_date) VALUES ($1, $2) RETURNING id, created_at;`,
		habitID,
		date,
	)
	if err := row.Scan(&logRow.ID, &logRow.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return nil, errorvalues.ErrLogExists
			// FK violation
			case "23503":
				return nil, errorvalues.ErrHabitNotFound
			}
		}
		return nil, errors.New("creating log error: " + err.Error())
	}
	return &logRow, nil
}

func (lr *HabitLogsRepository) Delete(ctx context.Context, habitID uuid.UUID, date time.Time) error {
	ct, err := lr.conn.Exec(
		ctx,
		`DELETE FROM habit_logs WHERE habit_id = $1 AND log_date = $2;`,
		habitID,
		date,
	)
	if err != nil {
		return errors.New("deleting log error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLogNotFound
	}
	return nil
}

func (lr *HabitLogsRepository) GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]entity.HabitLog, error) {
	rows, err := lr.conn.Query(
		ctx,
		`SELECT id, habit_id, log_date, created_at FROM habit_logs WHERE habit_id = $1 ORDER BY log_date DESC;`,
		habitID,
	)
	if err != nil {
		return nil, errors.New("getting logs error: " + err.Error())
	}
	defer rows.Close()
	return scanLogs(rows)
}

func (lr *HabitLogsRepository) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitLog, error) {
	rows, err := lr.conn.Query(
		ctx,
		`SELECT id, habit_id, log_date, created_at FROM habit_logs WHERE habit_id = $1 AND log_date >= $2 AND log_date <= $3 ORDER BY log_date DESC;`,
		habitID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting logs for period error: " + err.Error())
	}
	defer rows.Close()
	return scanLogs(rows)
}

func scanLogs(rows pgx.Rows) ([]entity.HabitLog, error) {
	result := make([]entity.HabitLog, 0, 2)
	for rows.Next() {
		logRow := entity.HabitLog{}
		err := rows.Scan(&logRow.ID, &logRow.HabitID, &logRow.LogDate, &logRow.CreatedAt)
		if err != nil {
			return nil, errors.New("log row parsing error: " + err.Error())
		}
		result = append(result, logRow)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected log rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (lr *HabitLogsRepository) GetLastLogDate(ctx context.Context, habitID uuid.UUID) (*time.Time, error) {
	row := lr.conn.QueryRow(
		ctx,
		`SELECT log_date FROM habit_logs WHERE habit_id = $1 ORDER BY log_date DESC LIMIT 1;`,
		habitID,
	)
	var date time.Time
	if err := row.Scan(&date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting last log date error: " + err.Error())
	}
	return &date, nil
}

func (lr *HabitLogsRepository) CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error) {
	row := lr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM habit_logs WHERE habit_id = $1;`,
		habitID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting logs: " + err.Error())
	}
	return count, nil
}
