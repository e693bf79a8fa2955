package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"evonto/internal/delivery/http/controllers"
	"evonto/internal/delivery/http/middleware"
	"evonto/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Guest-facing invitation lookup and RSVP are deliberately unauthenticated;
// everything that mutates an event or reveals its guest list requires a
// bearer token (ownership itself is checked in the services).
func NewRouter(
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	invitationController *controllers.InvitationController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/register", authController.Register)
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("GET /auth/check", auth(authController.CheckToken))

	// Events
	mux.HandleFunc("POST /events", auth(eventController.CreateEvent))
	mux.HandleFunc("GET /events", auth(eventController.ListAllEvents))
	mux.HandleFunc("GET /events/my", auth(eventController.ListMyEvents))
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("DELETE /events/{eventID}", auth(eventController.DeleteEvent))
	mux.HandleFunc("GET /events/{eventID}/details", auth(eventController.GetEventDetails))

	// Invitations
	mux.HandleFunc("POST /invitations/send", auth(invitationController.SendInvitation))
	mux.HandleFunc("POST /invitations/info", invitationController.GetInvitationInfo)
	mux.HandleFunc("POST /invitations/respond", invitationController.RespondToInvitation)
	mux.HandleFunc("POST /invitations/list", auth(invitationController.ListEventInvitations))
	mux.HandleFunc("DELETE /invitations/{invitationID}", auth(invitationController.DeleteInvitation))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
