package postgres

import (
	"context"
	"database/sql"
	"errors"

	"evonto/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, start_time, end_time, location, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING event_id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.StartTime, e.EndTime, e.Location, e.CreatedBy, e.CreatedAt,
	).Scan(&e.ID)
}

func scanEvent(row *sql.Row) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, locNull sql.NullString
	err := row.Scan(&e.ID, &e.Title, &descNull, &e.StartTime, &e.EndTime, &locNull, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if locNull.Valid {
		e.Location = &locNull.String
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT event_id, title, description, start_time, end_time, location, created_by, created_at
		FROM events
		WHERE event_id = $1
	`
	return scanEvent(r.DB.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT event_id, title, description, start_time, end_time, location, created_by, created_at
		FROM events
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *eventRepository) ListByCreatorID(ctx context.Context, creatorID int64) ([]*domain.Event, error) {
	query := `
		SELECT event_id, title, description, start_time, end_time, location, created_by, created_at
		FROM events
		WHERE created_by = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var descNull, locNull sql.NullString
		if err := rows.Scan(&e.ID, &e.Title, &descNull, &e.StartTime, &e.EndTime, &locNull, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		if descNull.Valid {
			e.Description = &descNull.String
		}
		if locNull.Valid {
			e.Location = &locNull.String
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE event_id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
