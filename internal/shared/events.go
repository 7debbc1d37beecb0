package shared

import (
	"context"
	"time"
)

// Change actions published after a successful mutation.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// ChangeEvent describes a committed create or update.
type ChangeEvent struct {
	Module string    `json:"module"`
	ID     string    `json:"id"`
	Action string    `json:"action"`
	At     time.Time `json:"at"`
}

// ChangePublisher receives change events. Implementations must not block the
// caller for long; failures are logged by the caller and never undo the change.
type ChangePublisher interface {
	PublishChange(ctx context.Context, evt ChangeEvent) error
}
