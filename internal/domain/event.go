package domain

import (
	"context"
	"time"
)

// Event represents a hosted occasion
// swagger:model Event
type Event struct {
	ID          int64     `json:"event_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	StartTime   time.Time `json:"start_date_time"`
	EndTime     time.Time `json:"end_date_time"`
	Location    *string   `json:"location"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title string, description *string, startTime, endTime time.Time, location *string, createdBy int64, createdAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    location,
		CreatedBy:   createdBy,
		CreatedAt:   createdAt,
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
	ListByCreatorID(ctx context.Context, creatorID int64) ([]*Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventWithGuestList bundles an event with its full invitation list.
// Only the event owner may see it.
type EventWithGuestList struct {
	Event       *Event        `json:"event"`
	Invitations []*Invitation `json:"invitations"`
}

// EventService defines the business logic for events. Deleting an event
// relies on the database to cascade-delete its invitations.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, eventID int64) (*Event, error)
	ListAllEvents(ctx context.Context) ([]*Event, error)
	ListEventsByCreator(ctx context.Context, creatorID int64) ([]*Event, error)
	DeleteEvent(ctx context.Context, eventID, callerID int64) error
	GetEventGuestList(ctx context.Context, eventID, callerID int64) (*EventWithGuestList, error)
}
