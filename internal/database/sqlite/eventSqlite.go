package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anjalishikhare80/event-management-system/internal/entity"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (title, description, category, date, start_time, end_time,
			venue, deadline, fee, is_team_event, team_size,
			organizer_name, organizer_contact, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		event.Title,
		event.Description,
		event.Category,
		event.Date,
		event.StartTime,
		event.EndTime,
		event.Venue,
		event.Deadline,
		event.Fee,
		event.IsTeamEvent,
		event.TeamSize,
		event.OrganizerName,
		event.OrganizerContact,
		event.Status,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted event id: %w", err)
	}
	event.ID = id
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	query := `
		SELECT id, title, description, category, date, start_time, end_time,
			venue, deadline, fee, is_team_event, team_size,
			organizer_name, organizer_contact, status, created_at
		FROM events
		WHERE id = ?
	`

	var event entity.Event
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.Date,
		&event.StartTime,
		&event.EndTime,
		&event.Venue,
		&event.Deadline,
		&event.Fee,
		&event.IsTeamEvent,
		&event.TeamSize,
		&event.OrganizerName,
		&event.OrganizerContact,
		&event.Status,
		&event.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*entity.Event, error) {
	query := `
		SELECT id, title, description, category, date, start_time, end_time,
			venue, deadline, fee, is_team_event, team_size,
			organizer_name, organizer_contact, status, created_at
		FROM events
		ORDER BY date
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		var event entity.Event
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Category,
			&event.Date,
			&event.StartTime,
			&event.EndTime,
			&event.Venue,
			&event.Deadline,
			&event.Fee,
			&event.IsTeamEvent,
			&event.TeamSize,
			&event.OrganizerName,
			&event.OrganizerContact,
			&event.Status,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &event)
	}

	return events, rows.Err()
}
