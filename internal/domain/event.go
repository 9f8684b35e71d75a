package domain

import (
	"context"
	"time"
)

// Event represents a campus event with a fixed number of slots.
// swagger:model Event
type Event struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	Venue      string    `json:"venue"`
	TotalSlots int       `json:"total_slots"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the
// repository on create.
func NewEvent(name string, date time.Time, timeOfDay, venue string, totalSlots int, createdAt time.Time) *Event {
	return &Event{
		Name:       name,
		Date:       date,
		Time:       timeOfDay,
		Venue:      venue,
		TotalSlots: totalSlots,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
}

// EventService defines event management operations.
type EventService interface {
	Create(ctx context.Context, name string, date time.Time, timeOfDay, venue string, totalSlots int) (*Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
}
