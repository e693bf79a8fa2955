package domain

import "errors"

// Sentinel errors shared across services. Controllers match these with
// errors.Is to pick the HTTP status; anything else is a storage failure.
var (
	// ErrNotFound is returned when an event or invitation does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the acting user is not the owner of the
	// targeted event.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyInvited is returned by invitation issuance when the event
	// already has an invitation for the guest email. It is a normal outcome,
	// not a failure: no new record is created.
	ErrAlreadyInvited = errors.New("guest already invited")

	// ErrInvalidInput is returned when the request is invalid (e.g. an
	// unrecognized RSVP status token).
	ErrInvalidInput = errors.New("invalid input")
)
