package services

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

type fakeMailer struct {
	mu       sync.Mutex
	sent     []string
	failFor  map[string]bool
	inFlight int32
	maxSeen  int32
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: map[string]bool{}}
}

func (f *fakeMailer) Send(to, subject, body string) error {
	cur := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		seen := atomic.LoadInt32(&f.maxSeen)
		if cur <= seen || atomic.CompareAndSwapInt32(&f.maxSeen, seen, cur) {
			break
		}
	}
	time.Sleep(time.Millisecond)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[to] {
		return errors.New("smtp unreachable")
	}
	f.sent = append(f.sent, to)
	return nil
}

func waitForDispatch(t *testing.T, done <-chan domain.DispatchResult) domain.DispatchResult {
	t.Helper()
	select {
	case result := <-done:
		return result
	case <-time.After(5 * time.Second):
		t.Fatal("dispatch did not complete")
		return domain.DispatchResult{}
	}
}

func TestNotificationService_Dispatch_TalliesFailures(t *testing.T) {
	mailer := newFakeMailer()
	mailer.failFor["bob@campus.edu"] = true
	mailer.failFor["dan@campus.edu"] = true
	svc := NewNotificationService(mailer, 4, testLogger())

	recipients := []string{
		"alice@campus.edu",
		"bob@campus.edu",
		"carol@campus.edu",
		"dan@campus.edu",
		"erin@campus.edu",
	}

	done := make(chan domain.DispatchResult, 1)
	svc.Dispatch(recipients, "Reminder", "See you there", func(r domain.DispatchResult) {
		done <- r
	})

	result := waitForDispatch(t, done)
	require.Equal(t, 3, result.SuccessCount)
	require.Equal(t, 2, result.FailCount)
	require.Len(t, mailer.sent, 3)
}

func TestNotificationService_Dispatch_BoundedConcurrency(t *testing.T) {
	mailer := newFakeMailer()
	svc := NewNotificationService(mailer, 2, testLogger())

	recipients := make([]string, 20)
	for i := range recipients {
		recipients[i] = strings.Repeat("x", i+1) + "@campus.edu"
	}

	done := make(chan domain.DispatchResult, 1)
	svc.Dispatch(recipients, "Reminder", "body", func(r domain.DispatchResult) {
		done <- r
	})

	result := waitForDispatch(t, done)
	require.Equal(t, 20, result.SuccessCount)
	require.LessOrEqual(t, atomic.LoadInt32(&mailer.maxSeen), int32(2))
}

func TestNotificationService_Dispatch_NoRecipients(t *testing.T) {
	mailer := newFakeMailer()
	svc := NewNotificationService(mailer, 4, testLogger())

	done := make(chan domain.DispatchResult, 1)
	svc.Dispatch(nil, "Reminder", "body", func(r domain.DispatchResult) {
		done <- r
	})

	result := waitForDispatch(t, done)
	require.Equal(t, 0, result.SuccessCount)
	require.Equal(t, 0, result.FailCount)
	require.Empty(t, mailer.sent)
}

func TestNotificationService_Dispatch_NilCallback(t *testing.T) {
	mailer := newFakeMailer()
	svc := NewNotificationService(mailer, 1, testLogger())

	svc.Dispatch([]string{"alice@campus.edu"}, "Reminder", "body", nil)

	require.Eventually(t, func() bool {
		mailer.mu.Lock()
		defer mailer.mu.Unlock()
		return len(mailer.sent) == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestEventNotificationBody(t *testing.T) {
	event := &domain.Event{
		Name:  "Tech Symposium",
		Date:  time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		Time:  "10:00 AM",
		Venue: "Main Auditorium",
	}

	body := EventNotificationBody(event, "Bring your student ID.")
	require.Contains(t, body, "Dear Attendee,")
	require.Contains(t, body, "Tech Symposium")
	require.Contains(t, body, "Date: 2025-11-03")
	require.Contains(t, body, "Time: 10:00 AM")
	require.Contains(t, body, "Location: Main Auditorium")
	require.Contains(t, body, "Bring your student ID.")

	plain := EventNotificationBody(event, "")
	require.NotContains(t, plain, "Bring your student ID.")
}
