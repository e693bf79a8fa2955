package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"evonto/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{
		DB: db,
	}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (event_id, guest_name, guest_email, guest_phone, rsvp_status, invitation_sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING invitation_id
	`
	err := r.DB.QueryRowContext(ctx, query,
		inv.EventID, inv.GuestName, inv.GuestEmail, inv.GuestPhone, string(inv.RSVPStatus), inv.SentAt,
	).Scan(&inv.ID)
	if err != nil {
		// The partial unique index on (event_id, lower(guest_email)) turns a
		// concurrent duplicate insert into a reportable duplicate outcome.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyInvited
		}
		return err
	}
	return nil
}

func scanInvitation(row *sql.Row) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	var status string
	var emailNull, phoneNull sql.NullString
	var respondedNull sql.NullTime
	err := row.Scan(&inv.ID, &inv.EventID, &inv.GuestName, &emailNull, &phoneNull, &status, &inv.SentAt, &respondedNull)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	inv.RSVPStatus = domain.RSVPStatus(status)
	if emailNull.Valid {
		inv.GuestEmail = &emailNull.String
	}
	if phoneNull.Valid {
		inv.GuestPhone = &phoneNull.String
	}
	if respondedNull.Valid {
		inv.RespondedAt = &respondedNull.Time
	}
	return inv, nil
}

func (r *invitationRepository) GetByID(ctx context.Context, id int64) (*domain.Invitation, error) {
	query := `
		SELECT invitation_id, event_id, guest_name, guest_email, guest_phone, rsvp_status, invitation_sent_at, responded_at
		FROM invitations
		WHERE invitation_id = $1
	`
	return scanInvitation(r.DB.QueryRowContext(ctx, query, id))
}

func (r *invitationRepository) GetByEventAndGuestEmail(ctx context.Context, eventID int64, guestEmail string) (*domain.Invitation, error) {
	query := `
		SELECT invitation_id, event_id, guest_name, guest_email, guest_phone, rsvp_status, invitation_sent_at, responded_at
		FROM invitations
		WHERE event_id = $1 AND lower(guest_email) = lower($2)
	`
	return scanInvitation(r.DB.QueryRowContext(ctx, query, eventID, guestEmail))
}

func (r *invitationRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Invitation, error) {
	query := `
		SELECT invitation_id, event_id, guest_name, guest_email, guest_phone, rsvp_status, invitation_sent_at, responded_at
		FROM invitations
		WHERE event_id = $1
		ORDER BY invitation_sent_at DESC, invitation_id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvitations(rows)
}

func (r *invitationRepository) ListByGuestEmail(ctx context.Context, guestEmail string) ([]*domain.Invitation, error) {
	query := `
		SELECT invitation_id, event_id, guest_name, guest_email, guest_phone, rsvp_status, invitation_sent_at, responded_at
		FROM invitations
		WHERE lower(guest_email) = lower($1)
		ORDER BY invitation_sent_at DESC, invitation_id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, guestEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvitations(rows)
}

func collectInvitations(rows *sql.Rows) ([]*domain.Invitation, error) {
	invs := make([]*domain.Invitation, 0)
	for rows.Next() {
		inv := &domain.Invitation{}
		var status string
		var emailNull, phoneNull sql.NullString
		var respondedNull sql.NullTime
		if err := rows.Scan(&inv.ID, &inv.EventID, &inv.GuestName, &emailNull, &phoneNull, &status, &inv.SentAt, &respondedNull); err != nil {
			return nil, err
		}
		inv.RSVPStatus = domain.RSVPStatus(status)
		if emailNull.Valid {
			inv.GuestEmail = &emailNull.String
		}
		if phoneNull.Valid {
			inv.GuestPhone = &phoneNull.String
		}
		if respondedNull.Valid {
			inv.RespondedAt = &respondedNull.Time
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}

func (r *invitationRepository) UpdateResponse(ctx context.Context, id int64, status domain.RSVPStatus, respondedAt time.Time) (*domain.Invitation, error) {
	query := `
		UPDATE invitations
		SET rsvp_status = $1, responded_at = $2
		WHERE invitation_id = $3
		RETURNING invitation_id, event_id, guest_name, guest_email, guest_phone, rsvp_status, invitation_sent_at, responded_at
	`
	return scanInvitation(r.DB.QueryRowContext(ctx, query, string(status), respondedAt, id))
}

func (r *invitationRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM invitations WHERE invitation_id = $1`
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
