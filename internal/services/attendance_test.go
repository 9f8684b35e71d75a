package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

type fakeEventRepo struct {
	events map[string]*domain.Event
	err    error
}

func (f *fakeEventRepo) Create(ctx context.Context, event *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	event.ID = "ev-" + event.Name
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	ev, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	events := make([]*domain.Event, 0, len(f.events))
	for _, ev := range f.events {
		events = append(events, ev)
	}
	return events, nil
}

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	marks   map[string]domain.AttendanceStatus // eventID:studentID
	entries map[string][]*domain.AttendanceEntry
	err     error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		marks:   map[string]domain.AttendanceStatus{},
		entries: map[string][]*domain.AttendanceEntry{},
	}
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, eventID, studentID string, status domain.AttendanceStatus) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marks[regKey(eventID, studentID)] = status
	return nil
}

func (f *fakeAttendanceRepo) ListForEvent(ctx context.Context, eventID string) ([]*domain.AttendanceEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[eventID], nil
}

func (f *fakeAttendanceRepo) CountPresent(ctx context.Context, eventID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for key, status := range f.marks {
		if status == domain.AttendancePresent && len(key) > len(eventID) && key[:len(eventID)] == eventID {
			count++
		}
	}
	return count, nil
}

func pastEvent(id string) *domain.Event {
	return &domain.Event{
		ID:         id,
		Name:       "Past Event",
		Date:       time.Now().AddDate(0, 0, -1),
		Time:       "10:00 AM",
		Venue:      "Main Hall",
		TotalSlots: 100,
	}
}

func TestAttendanceService_Mark_UpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	eventRepo := &fakeEventRepo{events: map[string]*domain.Event{"ev-1": pastEvent("ev-1")}}
	regRepo := newFakeRegistrationRepo()
	regRepo.regs[regKey("ev-1", "S001")] = &domain.Registration{EventID: "ev-1", StudentID: "S001"}
	attRepo := newFakeAttendanceRepo()
	svc := NewAttendanceService(eventRepo, regRepo, attRepo)

	require.NoError(t, svc.Mark(ctx, "ev-1", "S001", domain.AttendancePresent))
	require.Equal(t, domain.AttendancePresent, attRepo.marks[regKey("ev-1", "S001")])

	// Marking again with the same status is a no-op in effect; a different
	// status simply overwrites.
	require.NoError(t, svc.Mark(ctx, "ev-1", "S001", domain.AttendancePresent))
	require.NoError(t, svc.Mark(ctx, "ev-1", "S001", domain.AttendanceAbsent))
	require.Equal(t, domain.AttendanceAbsent, attRepo.marks[regKey("ev-1", "S001")])
}

func TestAttendanceService_Mark_FutureEventRejected(t *testing.T) {
	ctx := context.Background()
	tomorrow := time.Now().AddDate(0, 0, 1)
	eventRepo := &fakeEventRepo{events: map[string]*domain.Event{
		"ev-future": {ID: "ev-future", Name: "Future", Date: tomorrow, TotalSlots: 10},
	}}
	regRepo := newFakeRegistrationRepo()
	regRepo.regs[regKey("ev-future", "S001")] = &domain.Registration{EventID: "ev-future", StudentID: "S001"}
	svc := NewAttendanceService(eventRepo, regRepo, newFakeAttendanceRepo())

	err := svc.Mark(ctx, "ev-future", "S001", domain.AttendancePresent)
	var notStarted *domain.EventNotStartedError
	require.ErrorAs(t, err, &notStarted)
	require.Equal(t, tomorrow.Format("2006-01-02"), notStarted.EventDate.Format("2006-01-02"))
}

func TestAttendanceService_Mark_OnEventDayAllowed(t *testing.T) {
	ctx := context.Background()
	eventRepo := &fakeEventRepo{events: map[string]*domain.Event{
		"ev-today": {ID: "ev-today", Name: "Today", Date: time.Now(), TotalSlots: 10},
	}}
	regRepo := newFakeRegistrationRepo()
	regRepo.regs[regKey("ev-today", "S001")] = &domain.Registration{EventID: "ev-today", StudentID: "S001"}
	svc := NewAttendanceService(eventRepo, regRepo, newFakeAttendanceRepo())

	require.NoError(t, svc.Mark(ctx, "ev-today", "S001", domain.AttendancePresent))
}

func TestAttendanceService_Mark_UnregisteredStudentRejected(t *testing.T) {
	ctx := context.Background()
	eventRepo := &fakeEventRepo{events: map[string]*domain.Event{"ev-1": pastEvent("ev-1")}}
	svc := NewAttendanceService(eventRepo, newFakeRegistrationRepo(), newFakeAttendanceRepo())

	err := svc.Mark(ctx, "ev-1", "S-unregistered", domain.AttendancePresent)
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestAttendanceService_Mark_MissingEvent(t *testing.T) {
	ctx := context.Background()
	eventRepo := &fakeEventRepo{events: map[string]*domain.Event{}}
	svc := NewAttendanceService(eventRepo, newFakeRegistrationRepo(), newFakeAttendanceRepo())

	err := svc.Mark(ctx, "ev-missing", "S001", domain.AttendancePresent)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttendanceService_Mark_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	eventRepo := &fakeEventRepo{events: map[string]*domain.Event{"ev-1": pastEvent("ev-1")}}
	svc := NewAttendanceService(eventRepo, newFakeRegistrationRepo(), newFakeAttendanceRepo())

	err := svc.Mark(ctx, "ev-1", "S001", domain.AttendanceStatus("maybe"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAttendanceService_ListForEvent_DefaultsAbsent(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepo()
	attRepo.entries["ev-1"] = []*domain.AttendanceEntry{
		{StudentID: "S001", Name: "Alice", Status: domain.AttendancePresent},
		{StudentID: "S002", Name: "Bob", Status: domain.AttendanceAbsent},
	}
	svc := NewAttendanceService(&fakeEventRepo{events: map[string]*domain.Event{}}, newFakeRegistrationRepo(), attRepo)

	entries, err := svc.ListForEvent(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, domain.AttendanceAbsent, entries[1].Status)
}

func TestAttendanceService_ListForEvent_Empty(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(&fakeEventRepo{events: map[string]*domain.Event{}}, newFakeRegistrationRepo(), newFakeAttendanceRepo())

	entries, err := svc.ListForEvent(ctx, "ev-1")
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func TestAttendanceService_CancelCascadeRemovesStudent(t *testing.T) {
	// register -> mark present -> cancel: the registration is gone and a
	// fresh mark is rejected as unregistered.
	ctx := context.Background()
	eventRepo := &fakeEventRepo{events: map[string]*domain.Event{"ev-1": pastEvent("ev-1")}}
	regRepo := newFakeRegistrationRepo()
	regRepo.events["ev-1"] = 10
	regRepo.students["S001"] = true
	attRepo := newFakeAttendanceRepo()

	regSvc := NewRegistrationService(regRepo, testLogger())
	attSvc := NewAttendanceService(eventRepo, regRepo, attRepo)

	_, _, err := regSvc.Register(ctx, "ev-1", "S001")
	require.NoError(t, err)
	require.NoError(t, attSvc.Mark(ctx, "ev-1", "S001", domain.AttendancePresent))

	require.NoError(t, regSvc.Cancel(ctx, "ev-1", "S001"))

	_, err = regRepo.GetByEventAndStudent(ctx, "ev-1", "S001")
	require.True(t, errors.Is(err, domain.ErrNotFound))

	err = attSvc.Mark(ctx, "ev-1", "S001", domain.AttendancePresent)
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}
