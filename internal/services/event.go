package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campusevents/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
}

// NewEventService creates an EventService with the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

func (s *eventService) Create(ctx context.Context, name string, date time.Time, timeOfDay, venue string, totalSlots int) (*domain.Event, error) {
	name = strings.TrimSpace(name)
	venue = strings.TrimSpace(venue)
	if name == "" || venue == "" || timeOfDay == "" || date.IsZero() {
		return nil, fmt.Errorf("%w: all event fields are required", domain.ErrInvalidInput)
	}
	if totalSlots <= 0 {
		return nil, fmt.Errorf("%w: total slots must be a positive number", domain.ErrInvalidInput)
	}

	event := domain.NewEvent(name, date, timeOfDay, venue, totalSlots, time.Now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}
