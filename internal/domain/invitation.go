package domain

import (
	"context"
	"strings"
	"time"
)

// RSVPStatus is a guest's response state to an invitation.
type RSVPStatus string

// The four valid RSVP states. NO_RESPONSE is the default on issuance.
const (
	RSVPYes        RSVPStatus = "YES"
	RSVPNo         RSVPStatus = "NO"
	RSVPMaybe      RSVPStatus = "MAYBE"
	RSVPNoResponse RSVPStatus = "NO_RESPONSE"
)

// ParseRSVPStatus parses a free-form status token case-insensitively and
// normalizes it to the canonical uppercase form. An unrecognized token
// returns ErrInvalidInput.
func ParseRSVPStatus(s string) (RSVPStatus, error) {
	switch RSVPStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case RSVPYes:
		return RSVPYes, nil
	case RSVPNo:
		return RSVPNo, nil
	case RSVPMaybe:
		return RSVPMaybe, nil
	case RSVPNoResponse:
		return RSVPNoResponse, nil
	default:
		return "", ErrInvalidInput
	}
}

// Valid reports whether s is one of the four canonical RSVP states.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPYes, RSVPNo, RSVPMaybe, RSVPNoResponse:
		return true
	}
	return false
}

// Invitation represents one guest's invite to one event. GuestEmail and
// GuestPhone are optional; RespondedAt is nil until the guest first responds.
// swagger:model Invitation
type Invitation struct {
	ID          int64      `json:"invitation_id"`
	EventID     int64      `json:"event_id"`
	GuestName   string     `json:"guest_name"`
	GuestEmail  *string    `json:"guest_email"`
	GuestPhone  *string    `json:"guest_phone"`
	RSVPStatus  RSVPStatus `json:"rsvp_status"`
	SentAt      time.Time  `json:"invitation_sent_at"`
	RespondedAt *time.Time `json:"responded_at"`
}

// NewInvitation returns a new Invitation with status NO_RESPONSE and the
// given sent timestamp. ID is typically set by the repository on create.
func NewInvitation(eventID int64, guestName string, guestEmail, guestPhone *string, sentAt time.Time) *Invitation {
	return &Invitation{
		EventID:    eventID,
		GuestName:  guestName,
		GuestEmail: guestEmail,
		GuestPhone: guestPhone,
		RSVPStatus: RSVPNoResponse,
		SentAt:     sentAt,
	}
}

// InvitationRepository defines the interface for invitation storage.
// GetByEventAndGuestEmail matches the email case-insensitively; it backs
// duplicate suppression on issuance.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	GetByID(ctx context.Context, id int64) (*Invitation, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*Invitation, error)
	ListByGuestEmail(ctx context.Context, guestEmail string) ([]*Invitation, error)
	GetByEventAndGuestEmail(ctx context.Context, eventID int64, guestEmail string) (*Invitation, error)
	UpdateResponse(ctx context.Context, id int64, status RSVPStatus, respondedAt time.Time) (*Invitation, error)
	Delete(ctx context.Context, id int64) error
}

// InvitationWithEvent bundles a guest's invitation with its event. This is
// what the public guest lookup returns.
type InvitationWithEvent struct {
	Event      *Event      `json:"event"`
	Invitation *Invitation `json:"invitation"`
}

// InvitationService defines the business logic for the invitation lifecycle.
type InvitationService interface {
	// SendInvitation issues an invitation for the caller's event. Returns
	// ErrAlreadyInvited when the event already has an invitation for the
	// guest email (email non-null); invitations without an email are never
	// deduplicated.
	SendInvitation(ctx context.Context, eventID, callerID int64, guestName string, guestEmail, guestPhone *string) (*Invitation, error)
	// FindGuestInvitation is the public guest self-lookup: case-insensitive
	// exact match on guest name, optionally narrowed by a case-insensitive
	// email match. First match in listing order (most recent first) wins.
	FindGuestInvitation(ctx context.Context, eventID int64, guestName string, guestEmail *string) (*InvitationWithEvent, error)
	// RespondToInvitation records an RSVP. Re-responses are allowed and
	// always refresh RespondedAt. No authentication is required.
	RespondToInvitation(ctx context.Context, invitationID int64, status RSVPStatus) (*Invitation, error)
	ListInvitationsForEvent(ctx context.Context, eventID, callerID int64) ([]*Invitation, error)
	ListInvitationsByGuestEmail(ctx context.Context, guestEmail string) ([]*Invitation, error)
	DeleteInvitation(ctx context.Context, invitationID, callerID int64) error
}
