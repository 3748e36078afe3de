package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

var _ domain.HabitRepository = (*PostgresHabitRepository)(nil)

// PostgresHabitRepository stores habits in a single table with the
// execution history as a JSONB array of dates. Ids come from the table's
// BIGSERIAL sequence, which is monotonic and never reuses values.
type PostgresHabitRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitRepository(db *sqlx.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func (r *PostgresHabitRepository) scanRow(row scannable) (*domain.Habit, error) {
	var h domain.Habit
	var historyJSON []byte

	err := row.Scan(
		&h.ID, &h.OwnerID, &h.Title, &h.Description,
		&h.Frequency, &h.Status, &historyJSON, &h.Created,
	)
	if err != nil {
		return nil, err
	}

	h.ExecutionHistory = []domain.Date{}
	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &h.ExecutionHistory); err != nil {
			return nil, fmt.Errorf("failed to unmarshal execution history: %w", err)
		}
	}

	return &h, nil
}

const habitColumns = `id, owner_id, title, description, frequency, status, execution_history, created`

func (r *PostgresHabitRepository) Add(ctx context.Context, h *domain.Habit) (*domain.Habit, error) {
	historyJSON, err := json.Marshal(h.ExecutionHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal execution history: %w", err)
	}

	query := `
        INSERT INTO habits (owner_id, title, description, frequency, status, execution_history, created)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id`

	created := *h
	err = r.db.QueryRowContext(ctx, query,
		h.OwnerID, h.Title, h.Description, h.Frequency, h.Status, historyJSON, h.Created,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert habit: %w", err)
	}

	return &created, nil
}

func (r *PostgresHabitRepository) GetByID(ctx context.Context, id int64) (*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)

	h, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	return h, nil
}

func (r *PostgresHabitRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE owner_id = $1 ORDER BY id ASC`

	return r.queryHabits(ctx, query, ownerID)
}

func (r *PostgresHabitRepository) ListAll(ctx context.Context) ([]*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits ORDER BY id ASC`

	return r.queryHabits(ctx, query)
}

func (r *PostgresHabitRepository) queryHabits(ctx context.Context, query string, args ...interface{}) ([]*domain.Habit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	habits := make([]*domain.Habit, 0)
	for rows.Next() {
		h, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("row scan error: %w", err)
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (r *PostgresHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	historyJSON, err := json.Marshal(h.ExecutionHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal execution history: %w", err)
	}

	query := `
        UPDATE habits SET
            title=$1, description=$2, frequency=$3, status=$4, execution_history=$5
        WHERE id=$6`

	res, err := r.db.ExecContext(ctx, query,
		h.Title, h.Description, h.Frequency, h.Status, historyJSON, h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrHabitNotFound
	}

	return nil
}

func (r *PostgresHabitRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrHabitNotFound
	}

	return nil
}

func (r *PostgresHabitRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("failed to delete habits by owner: %w", err)
	}
	return nil
}

func (r *PostgresHabitRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM habits WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check habit existence: %w", err)
	}
	return exists, nil
}
