package domain

// Mailer defines the contract for sending a single email (infrastructure
// port).
type Mailer interface {
	Send(to, subject, body string) error
}

// DispatchResult is the final tally of a notification fan-out: one count
// per recipient, summed over all delivery attempts.
type DispatchResult struct {
	SuccessCount int `json:"success_count"`
	FailCount    int `json:"fail_count"`
}

// NotificationService dispatches one email per recipient without blocking
// the caller.
type NotificationService interface {
	// Dispatch schedules delivery to every recipient and returns
	// immediately. onComplete is invoked exactly once, after every attempt
	// has resolved, with the aggregate tally. Failed recipients are counted,
	// not retried. onComplete may be nil.
	Dispatch(recipients []string, subject, body string, onComplete func(DispatchResult))
}
