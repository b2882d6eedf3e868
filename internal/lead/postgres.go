package lead

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// PostgresRepository archives leads in the leads table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, l *Lead) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leads (id, first_name, last_name, email, phone, vehicle,
			appointment_date, appointment_time, event_id, outcome, coupon_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.FirstName, l.LastName, l.Email, l.Phone, l.Vehicle,
		l.Date, l.Time, l.EventID, l.Outcome, l.CouponCode, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByEventID(ctx context.Context, eventID string) (*Lead, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, vehicle,
			appointment_date, appointment_time, event_id, outcome, coupon_code, created_at
		FROM leads
		WHERE event_id = $1`

	var l Lead
	err := r.db.QueryRowContext(ctx, query, eventID).Scan(
		&l.ID, &l.FirstName, &l.LastName, &l.Email, &l.Phone, &l.Vehicle,
		&l.Date, &l.Time, &l.EventID, &l.Outcome, &l.CouponCode, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return &l, nil
}
