// Package notify is the user-visible notification surface. Mutations
// report their outcome here; the presentation layer decides how to
// render it (the CLI prints, a UI would toast).
package notify

import "log/slog"

// Notifier receives one message per completed mutation.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to the structured log. The default
// sink for headless use.
type LogNotifier struct{}

func (LogNotifier) Success(message string) {
	slog.Info(message, "notification", "success")
}

func (LogNotifier) Error(message string) {
	slog.Error(message, "notification", "error")
}

// Recorder captures notifications for assertions. Test use.
type Recorder struct {
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(message string) {
	r.Successes = append(r.Successes, message)
}

func (r *Recorder) Error(message string) {
	r.Errors = append(r.Errors, message)
}
