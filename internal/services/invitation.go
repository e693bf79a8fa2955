package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"evonto/internal/domain"
)

type invitationService struct {
	invitationRepo domain.InvitationRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewInvitationService creates an InvitationService with the given repositories.
func NewInvitationService(invitationRepo domain.InvitationRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *invitationService) SendInvitation(ctx context.Context, eventID, callerID int64, guestName string, guestEmail, guestPhone *string) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(guestName) == "" {
		return nil, domain.ErrInvalidInput
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !isOwner(event, callerID) {
		return nil, domain.ErrForbidden
	}

	// Duplicate suppression is keyed on email only; invitations without an
	// email are never deduplicated.
	if guestEmail != nil {
		if _, err := s.invitationRepo.GetByEventAndGuestEmail(ctx, eventID, *guestEmail); err == nil {
			return nil, domain.ErrAlreadyInvited
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("check existing invitation: %w", err)
		}
	}

	inv := domain.NewInvitation(eventID, guestName, guestEmail, guestPhone, time.Now())
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		// The unique index on (event_id, lower(guest_email)) closes the
		// check-then-insert race: a concurrent duplicate surfaces here.
		if errors.Is(err, domain.ErrAlreadyInvited) {
			return nil, domain.ErrAlreadyInvited
		}
		return nil, fmt.Errorf("create invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) FindGuestInvitation(ctx context.Context, eventID int64, guestName string, guestEmail *string) (*domain.InvitationWithEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	invs, err := s.invitationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	for _, inv := range invs {
		if !strings.EqualFold(inv.GuestName, guestName) {
			continue
		}
		if guestEmail != nil && (inv.GuestEmail == nil || !strings.EqualFold(*inv.GuestEmail, *guestEmail)) {
			continue
		}
		return &domain.InvitationWithEvent{Event: event, Invitation: inv}, nil
	}
	return nil, domain.ErrNotFound
}

func (s *invitationService) RespondToInvitation(ctx context.Context, invitationID int64, status domain.RSVPStatus) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.invitationRepo.GetByID(ctx, invitationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	// Re-responses are allowed; RespondedAt is refreshed every time.
	updated, err := s.invitationRepo.UpdateResponse(ctx, invitationID, status, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update invitation response: %w", err)
	}
	return updated, nil
}

func (s *invitationService) ListInvitationsForEvent(ctx context.Context, eventID, callerID int64) ([]*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !isOwner(event, callerID) {
		return nil, domain.ErrForbidden
	}
	invs, err := s.invitationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	if invs == nil {
		invs = []*domain.Invitation{}
	}
	return invs, nil
}

func (s *invitationService) ListInvitationsByGuestEmail(ctx context.Context, guestEmail string) ([]*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invs, err := s.invitationRepo.ListByGuestEmail(ctx, guestEmail)
	if err != nil {
		return nil, fmt.Errorf("list invitations by guest email: %w", err)
	}
	if invs == nil {
		invs = []*domain.Invitation{}
	}
	return invs, nil
}

func (s *invitationService) DeleteInvitation(ctx context.Context, invitationID, callerID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	inv, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get invitation: %w", err)
	}
	event, err := s.eventRepo.GetByID(ctx, inv.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if !isOwner(event, callerID) {
		return domain.ErrForbidden
	}
	if err := s.invitationRepo.Delete(ctx, invitationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete invitation: %w", err)
	}
	return nil
}
