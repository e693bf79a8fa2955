package services

import (
	"context"
	"testing"
	"time"

	"evonto/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvitationFixture(t *testing.T) (domain.InvitationService, *fakeEventRepo, *fakeInvitationRepo, *domain.Event) {
	t.Helper()
	eventRepo := newFakeEventRepo()
	invRepo := newFakeInvitationRepo()
	svc := NewInvitationService(invRepo, eventRepo, time.Second)
	event := newTestEvent(t, eventRepo, 1, "Launch Party")
	return svc, eventRepo, invRepo, event
}

func TestInvitationService_SendInvitation(t *testing.T) {
	svc, _, _, event := newInvitationFixture(t)

	inv, err := svc.SendInvitation(context.Background(), event.ID, 1, "Ada", strPtr("ada@example.com"), strPtr("555-0100"))
	require.NoError(t, err)
	assert.NotZero(t, inv.ID)
	assert.Equal(t, domain.RSVPNoResponse, inv.RSVPStatus)
	assert.False(t, inv.SentAt.IsZero())
	assert.Nil(t, inv.RespondedAt)
}

func TestInvitationService_SendInvitation_duplicateEmail(t *testing.T) {
	svc, _, invRepo, event := newInvitationFixture(t)

	_, err := svc.SendInvitation(context.Background(), event.ID, 1, "Ada", strPtr("ada@example.com"), nil)
	require.NoError(t, err)

	// Same email again: duplicate outcome, no second record. The match is
	// case-insensitive on the email.
	_, err = svc.SendInvitation(context.Background(), event.ID, 1, "Ada Lovelace", strPtr("Ada@Example.com"), nil)
	assert.ErrorIs(t, err, domain.ErrAlreadyInvited)
	assert.Len(t, invRepo.byID, 1)
}

func TestInvitationService_SendInvitation_nilEmailNeverDeduplicated(t *testing.T) {
	svc, _, invRepo, event := newInvitationFixture(t)

	for i := 0; i < 3; i++ {
		_, err := svc.SendInvitation(context.Background(), event.ID, 1, "Walk-in Guest", nil, nil)
		require.NoError(t, err)
	}
	assert.Len(t, invRepo.byID, 3)
}

func TestInvitationService_SendInvitation_authorization(t *testing.T) {
	svc, _, _, event := newInvitationFixture(t)

	t.Run("non-owner forbidden", func(t *testing.T) {
		_, err := svc.SendInvitation(context.Background(), event.ID, 99, "Ada", strPtr("ada@example.com"), nil)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := svc.SendInvitation(context.Background(), 404, 1, "Ada", strPtr("ada@example.com"), nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("blank guest name", func(t *testing.T) {
		_, err := svc.SendInvitation(context.Background(), event.ID, 1, "  ", nil, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestInvitationService_FindGuestInvitation(t *testing.T) {
	svc, _, _, event := newInvitationFixture(t)

	sent, err := svc.SendInvitation(context.Background(), event.ID, 1, "Ada", strPtr("ada@example.com"), nil)
	require.NoError(t, err)

	t.Run("case-insensitive name and email match", func(t *testing.T) {
		found, err := svc.FindGuestInvitation(context.Background(), event.ID, "ADA", strPtr("Ada@Example.com"))
		require.NoError(t, err)
		assert.Equal(t, sent.ID, found.Invitation.ID)
		assert.Equal(t, event.ID, found.Event.ID)
	})

	t.Run("name only", func(t *testing.T) {
		found, err := svc.FindGuestInvitation(context.Background(), event.ID, "ada", nil)
		require.NoError(t, err)
		assert.Equal(t, sent.ID, found.Invitation.ID)
	})

	t.Run("email mismatch", func(t *testing.T) {
		_, err := svc.FindGuestInvitation(context.Background(), event.ID, "Ada", strPtr("other@example.com"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown guest", func(t *testing.T) {
		_, err := svc.FindGuestInvitation(context.Background(), event.ID, "Grace", nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := svc.FindGuestInvitation(context.Background(), 404, "Ada", nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInvitationService_FindGuestInvitation_supplyingEmailSkipsEmaillessMatch(t *testing.T) {
	svc, _, _, event := newInvitationFixture(t)

	_, err := svc.SendInvitation(context.Background(), event.ID, 1, "Ada", nil, nil)
	require.NoError(t, err)

	// The stored invitation has no email, so supplying one cannot match it.
	_, err = svc.FindGuestInvitation(context.Background(), event.ID, "Ada", strPtr("ada@example.com"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvitationService_RespondToInvitation(t *testing.T) {
	svc, _, _, event := newInvitationFixture(t)

	sent, err := svc.SendInvitation(context.Background(), event.ID, 1, "Ada", strPtr("ada@example.com"), nil)
	require.NoError(t, err)

	updated, err := svc.RespondToInvitation(context.Background(), sent.ID, domain.RSVPMaybe)
	require.NoError(t, err)
	assert.Equal(t, domain.RSVPMaybe, updated.RSVPStatus)
	require.NotNil(t, updated.RespondedAt)

	// Re-responding is allowed and refreshes RespondedAt.
	first := *updated.RespondedAt
	time.Sleep(time.Millisecond)
	again, err := svc.RespondToInvitation(context.Background(), sent.ID, domain.RSVPYes)
	require.NoError(t, err)
	assert.Equal(t, domain.RSVPYes, again.RSVPStatus)
	assert.True(t, again.RespondedAt.After(first) || again.RespondedAt.Equal(first))
}

func TestInvitationService_RespondToInvitation_invalidStatus(t *testing.T) {
	svc, _, invRepo, event := newInvitationFixture(t)

	sent, err := svc.SendInvitation(context.Background(), event.ID, 1, "Ada", strPtr("ada@example.com"), nil)
	require.NoError(t, err)

	_, err = svc.RespondToInvitation(context.Background(), sent.ID, domain.RSVPStatus("GOING"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Stored state unchanged.
	stored := invRepo.byID[sent.ID]
	assert.Equal(t, domain.RSVPNoResponse, stored.RSVPStatus)
	assert.Nil(t, stored.RespondedAt)
}

func TestInvitationService_RespondToInvitation_notFound(t *testing.T) {
	svc, _, _, _ := newInvitationFixture(t)

	_, err := svc.RespondToInvitation(context.Background(), 404, domain.RSVPYes)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvitationService_ListInvitationsForEvent(t *testing.T) {
	svc, _, _, event := newInvitationFixture(t)

	_, err := svc.SendInvitation(context.Background(), event.ID, 1, "Ada", strPtr("ada@example.com"), nil)
	require.NoError(t, err)
	_, err = svc.SendInvitation(context.Background(), event.ID, 1, "Grace", strPtr("grace@example.com"), nil)
	require.NoError(t, err)

	t.Run("owner lists all", func(t *testing.T) {
		invs, err := svc.ListInvitationsForEvent(context.Background(), event.ID, 1)
		require.NoError(t, err)
		assert.Len(t, invs, 2)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		_, err := svc.ListInvitationsForEvent(context.Background(), event.ID, 99)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestInvitationService_ListInvitationsByGuestEmail(t *testing.T) {
	svc, eventRepo, _, event := newInvitationFixture(t)
	other := newTestEvent(t, eventRepo, 1, "Second Event")

	_, err := svc.SendInvitation(context.Background(), event.ID, 1, "Ada", strPtr("ada@example.com"), nil)
	require.NoError(t, err)
	_, err = svc.SendInvitation(context.Background(), other.ID, 1, "Ada", strPtr("ada@example.com"), nil)
	require.NoError(t, err)

	invs, err := svc.ListInvitationsByGuestEmail(context.Background(), "ADA@example.com")
	require.NoError(t, err)
	assert.Len(t, invs, 2)
}

func TestInvitationService_DeleteInvitation(t *testing.T) {
	svc, _, invRepo, event := newInvitationFixture(t)

	sent, err := svc.SendInvitation(context.Background(), event.ID, 1, "Ada", strPtr("ada@example.com"), nil)
	require.NoError(t, err)

	t.Run("non-owner forbidden, invitation unchanged", func(t *testing.T) {
		err := svc.DeleteInvitation(context.Background(), sent.ID, 99)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		stored, ok := invRepo.byID[sent.ID]
		require.True(t, ok)
		assert.Equal(t, domain.RSVPNoResponse, stored.RSVPStatus)
	})

	t.Run("not found", func(t *testing.T) {
		err := svc.DeleteInvitation(context.Background(), 404, 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		err := svc.DeleteInvitation(context.Background(), sent.ID, 1)
		require.NoError(t, err)
		assert.NotContains(t, invRepo.byID, sent.ID)
	})
}

// End-to-end flow across both services: host invites, guest looks up and
// responds, host sees the updated RSVP.
func TestInvitationLifecycle(t *testing.T) {
	eventRepo := newFakeEventRepo()
	invRepo := newFakeInvitationRepo()
	eventSvc := NewEventService(eventRepo, invRepo, time.Second)
	invSvc := NewInvitationService(invRepo, eventRepo, time.Second)

	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	event := domain.NewEvent("Launch Party", nil, start, start.Add(4*time.Hour), nil, 1, time.Time{})
	require.NoError(t, eventSvc.CreateEvent(context.Background(), event))

	_, err := invSvc.SendInvitation(context.Background(), event.ID, 1, "Ada", strPtr("ada@example.com"), nil)
	require.NoError(t, err)

	found, err := invSvc.FindGuestInvitation(context.Background(), event.ID, "ADA", strPtr("Ada@Example.com"))
	require.NoError(t, err)

	_, err = invSvc.RespondToInvitation(context.Background(), found.Invitation.ID, domain.RSVPMaybe)
	require.NoError(t, err)

	invs, err := invSvc.ListInvitationsForEvent(context.Background(), event.ID, 1)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, domain.RSVPMaybe, invs[0].RSVPStatus)
	assert.NotNil(t, invs[0].RespondedAt)
}
