// Package notifier delivers operational alerts to an external channel.
// Delivery is best effort; callers treat failures as log-only.
package notifier

import (
	"context"
	"time"
)

// Field is one name/value pair in a message.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Message is a channel-agnostic structured notification.
type Message struct {
	Title     string
	Color     int
	Fields    []Field
	Timestamp time.Time
}

// Notifier sends a message to wherever ops alerts go. Implementations exist
// for Discord webhooks and plain console logging.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}
