package services

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"campusevents/internal/domain"
)

const defaultNotifyWorkers = 4

type notificationService struct {
	mailer  domain.Mailer
	workers int
	logger  *slog.Logger
}

// NewNotificationService creates a NotificationService that delivers mail
// through the given Mailer with at most workers concurrent sends.
func NewNotificationService(mailer domain.Mailer, workers int, logger *slog.Logger) domain.NotificationService {
	if workers <= 0 {
		workers = defaultNotifyWorkers
	}
	return &notificationService{
		mailer:  mailer,
		workers: workers,
		logger:  logger,
	}
}

// Dispatch returns as soon as delivery is scheduled. A bounded pool of
// workers drains the recipient list; each failed send is counted and
// logged, never retried. onComplete fires exactly once, after the last
// attempt resolves.
func (s *notificationService) Dispatch(recipients []string, subject, body string, onComplete func(domain.DispatchResult)) {
	go func() {
		jobs := make(chan string)
		var wg sync.WaitGroup
		var mu sync.Mutex
		result := domain.DispatchResult{}

		workers := s.workers
		if workers > len(recipients) {
			workers = len(recipients)
		}
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for to := range jobs {
					err := s.mailer.Send(to, subject, body)
					mu.Lock()
					if err != nil {
						result.FailCount++
					} else {
						result.SuccessCount++
					}
					mu.Unlock()
					if err != nil {
						s.logger.Error("notification delivery failed", "to", to, "err", err)
					}
				}
			}()
		}

		for _, to := range recipients {
			jobs <- to
		}
		close(jobs)
		wg.Wait()

		s.logger.Info("notification dispatch complete",
			"recipients", len(recipients),
			"success", result.SuccessCount,
			"failed", result.FailCount,
		)
		if onComplete != nil {
			onComplete(result)
		}
	}()
}

// EventNotificationBody renders the standard notification email for an
// event.
func EventNotificationBody(event *domain.Event, customMessage string) string {
	var b strings.Builder
	b.WriteString("Dear Attendee,\n\n")
	fmt.Fprintf(&b, "This is a notification regarding the upcoming event: %s.\n\n", event.Name)
	fmt.Fprintf(&b, "Date: %s\n", event.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Time: %s\n", event.Time)
	fmt.Fprintf(&b, "Location: %s\n", event.Venue)
	if customMessage != "" {
		b.WriteString("\n")
		b.WriteString(customMessage)
		b.WriteString("\n")
	}
	b.WriteString("\nWe look forward to seeing you there!\n\nBest regards,\nThe Event Management Team")
	return b.String()
}
