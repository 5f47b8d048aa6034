package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anjalishikhare80/event-management-system/internal/entity"
)

type registrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *entity.Registration) error {
	query := `
		INSERT INTO registrations (event_id, user_id, full_name, mobile, email,
			college, year, branch, payment_image, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		reg.EventID,
		reg.UserID,
		reg.FullName,
		reg.Mobile,
		reg.Email,
		reg.College,
		reg.Year,
		reg.Branch,
		reg.PaymentImage,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted registration id: %w", err)
	}
	reg.ID = id
	return nil
}

func (r *registrationRepository) GetByEventID(ctx context.Context, eventID int64) ([]*entity.RegistrationWithUser, error) {
	query := `
		SELECT r.id, r.event_id, r.user_id, r.full_name, r.mobile, r.email,
			r.college, r.year, r.branch, r.payment_image, r.created_at,
			u.username
		FROM registrations r
		JOIN users u ON r.user_id = u.id
		WHERE r.event_id = ?
		ORDER BY r.created_at
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get registrations: %w", err)
	}
	defer rows.Close()

	var regs []*entity.RegistrationWithUser
	for rows.Next() {
		var reg entity.RegistrationWithUser
		err := rows.Scan(
			&reg.ID,
			&reg.EventID,
			&reg.UserID,
			&reg.FullName,
			&reg.Mobile,
			&reg.Email,
			&reg.College,
			&reg.Year,
			&reg.Branch,
			&reg.PaymentImage,
			&reg.CreatedAt,
			&reg.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		regs = append(regs, &reg)
	}

	return regs, rows.Err()
}

// GetByEventAndUser returns the user's latest registration for the event.
func (r *registrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID int64) (*entity.Registration, error) {
	query := `
		SELECT id, event_id, user_id, full_name, mobile, email,
			college, year, branch, payment_image, created_at
		FROM registrations
		WHERE event_id = ? AND user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var reg entity.Registration
	err := r.db.QueryRowContext(ctx, query, eventID, userID).Scan(
		&reg.ID,
		&reg.EventID,
		&reg.UserID,
		&reg.FullName,
		&reg.Mobile,
		&reg.Email,
		&reg.College,
		&reg.Year,
		&reg.Branch,
		&reg.PaymentImage,
		&reg.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	return &reg, nil
}

func (r *registrationRepository) DeleteByEventAndUser(ctx context.Context, eventID, userID int64) error {
	query := `DELETE FROM registrations WHERE event_id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrRegistrationNotFound
	}

	return nil
}

func (r *registrationRepository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	query := `SELECT COUNT(*) FROM registrations WHERE event_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return count, nil
}
