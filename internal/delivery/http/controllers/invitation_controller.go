package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "evonto/internal/delivery/http/helpers"
	"evonto/internal/delivery/http/middleware"
	"evonto/internal/domain"
)

// SendInvitationRequest is the request body for POST /invitations/send.
type SendInvitationRequest struct {
	EventID    int64   `json:"event_id"`
	GuestName  string  `json:"guest_name"`
	GuestEmail *string `json:"guest_email"`
	GuestPhone *string `json:"guest_phone"`
}

// Validate implements Validator.
func (s SendInvitationRequest) Validate() []string {
	var errs []string
	if s.EventID <= 0 {
		errs = append(errs, "event_id is required")
	}
	if strings.TrimSpace(s.GuestName) == "" {
		errs = append(errs, "guest_name is required")
	}
	if s.GuestEmail != nil && !emailRegexp.MatchString(strings.TrimSpace(*s.GuestEmail)) {
		errs = append(errs, "invalid guest_email format")
	}
	return errs
}

// InvitationInfoRequest is the request body for POST /invitations/info.
// This is the public guest self-lookup; guest_email narrows the match when
// supplied.
type InvitationInfoRequest struct {
	EventID    int64   `json:"event_id"`
	GuestName  string  `json:"guest_name"`
	GuestEmail *string `json:"guest_email"`
}

// Validate implements Validator.
func (i InvitationInfoRequest) Validate() []string {
	var errs []string
	if i.EventID <= 0 {
		errs = append(errs, "event_id is required")
	}
	if strings.TrimSpace(i.GuestName) == "" {
		errs = append(errs, "guest_name is required")
	}
	return errs
}

// RespondRequest is the request body for POST /invitations/respond.
type RespondRequest struct {
	InvitationID int64  `json:"invitation_id"`
	RSVPStatus   string `json:"rsvp_status"`
}

// Validate implements Validator.
func (r RespondRequest) Validate() []string {
	var errs []string
	if r.InvitationID <= 0 {
		errs = append(errs, "invitation_id is required")
	}
	if strings.TrimSpace(r.RSVPStatus) == "" {
		errs = append(errs, "rsvp_status is required")
	}
	return errs
}

// ListInvitationsRequest is the request body for POST /invitations/list.
type ListInvitationsRequest struct {
	EventID int64 `json:"event_id"`
}

// Validate implements Validator.
func (l ListInvitationsRequest) Validate() []string {
	var errs []string
	if l.EventID <= 0 {
		errs = append(errs, "event_id is required")
	}
	return errs
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// SendInvitation godoc
// @Summary Invite a guest to an event
// @Description Issues an invitation for the caller's event. Duplicate issuance for the same event and guest email is reported, not repeated; invitations without an email are never deduplicated.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendInvitationRequest true "Invitation data"
// @Success 201 {object} helpers.APIResponse "data contains the created invitation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not creator)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: already_invited"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/send [post]
func (c *InvitationController) SendInvitation(w http.ResponseWriter, r *http.Request) {
	var req SendInvitationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	inv, err := c.Service.SendInvitation(r.Context(), req.EventID, userID, req.GuestName, req.GuestEmail, req.GuestPhone)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrForbidden):
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "you can only send invitations for your own events")
		case errors.Is(err, domain.ErrAlreadyInvited):
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeAlreadyInvited, "guest already invited")
		case errors.Is(err, domain.ErrInvalidInput):
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid invitation")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		}
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, inv)
}

// GetInvitationInfo godoc
// @Summary Look up a guest's invitation
// @Description Public guest self-lookup by event and guest name (case-insensitive), optionally narrowed by guest email. Returns the invitation together with its event.
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body InvitationInfoRequest true "Lookup data"
// @Success 200 {object} helpers.APIResponse "data contains the invitation and event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/info [post]
func (c *InvitationController) GetInvitationInfo(w http.ResponseWriter, r *http.Request) {
	var req InvitationInfoRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.FindGuestInvitation(r.Context(), req.EventID, req.GuestName, req.GuestEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "invitation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, result)
}

// RespondToInvitation godoc
// @Summary Respond to an invitation
// @Description Records an RSVP for the invitation. The status token is case-insensitive: YES, NO, MAYBE, or NO_RESPONSE. Re-responses are allowed and refresh the response timestamp. Public: anyone who knows the invitation id may respond.
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body RespondRequest true "RSVP data"
// @Success 200 {object} helpers.APIResponse "data contains the updated invitation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid RSVP status)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/respond [post]
func (c *InvitationController) RespondToInvitation(w http.ResponseWriter, r *http.Request) {
	var req RespondRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	status, err := domain.ParseRSVPStatus(req.RSVPStatus)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid RSVP status, use: YES, NO, MAYBE, NO_RESPONSE")
		return
	}
	inv, err := c.Service.RespondToInvitation(r.Context(), req.InvitationID, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "invitation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, inv)
}

// ListEventInvitations godoc
// @Summary List invitations for the caller's event
// @Description Returns every invitation of the event. Only the event creator may list them.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ListInvitationsRequest true "Event to list"
// @Success 200 {object} helpers.APIResponse "data contains the invitation list"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not creator)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/list [post]
func (c *InvitationController) ListEventInvitations(w http.ResponseWriter, r *http.Request) {
	var req ListInvitationsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	invs, err := c.Service.ListInvitationsForEvent(r.Context(), req.EventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "you do not own this event")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, invs)
}

// DeleteInvitation godoc
// @Summary Delete an invitation
// @Description Deletes an invitation. Only the creator of the invitation's event may delete it.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param invitationID path int true "Invitation ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not creator)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{invitationID} [delete]
func (c *InvitationController) DeleteInvitation(w http.ResponseWriter, r *http.Request) {
	invitationID, err := parseID(r.PathValue("invitationID"))
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid invitationID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteInvitation(r.Context(), invitationID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "invitation not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "you can only delete invitations for your own events")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "invitation deleted"})
}
