// Package notify is the transient message surface used to tell the user
// about completed or failed operations.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Severity is the display variant of a notification.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification is one transient message.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Success builds a default-severity notification titled "Success".
func Success(description string) Notification {
	return Notification{Title: "Success", Description: description, Severity: SeverityDefault}
}

// Failure builds a destructive notification titled "Error".
func Failure(description string) Notification {
	return Notification{Title: "Error", Description: description, Severity: SeverityDestructive}
}

// Notifier displays notifications. Nothing is returned to the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier builds a LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs n at info level, or warn level when destructive.
func (l *LogNotifier) Notify(ctx context.Context, n Notification) {
	level := slog.LevelInfo
	if n.Severity == SeverityDestructive {
		level = slog.LevelWarn
	}
	l.logger.Log(ctx, level, n.Title, slog.String("description", n.Description), slog.String("severity", string(n.Severity)))
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// Notify records n.
func (r *Recorder) Notify(ctx context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Count returns how many notifications of the given severity were recorded.
func (r *Recorder) Count(severity Severity) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, item := range r.items {
		if item.Severity == severity {
			n++
		}
	}
	return n
}

type discard struct{}

func (discard) Notify(context.Context, Notification) {}

// Discard drops every notification.
var Discard Notifier = discard{}
