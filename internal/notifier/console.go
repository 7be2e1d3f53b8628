package notifier

import (
	"context"

	"go.uber.org/zap"
)

// ConsoleNotifier logs messages instead of delivering them. Used in
// development and whenever no webhook is configured.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(_ context.Context, msg Message) error {
	fields := make([]zap.Field, 0, len(msg.Fields)+1)
	fields = append(fields, zap.Time("timestamp", msg.Timestamp))
	for _, f := range msg.Fields {
		fields = append(fields, zap.String(f.Name, f.Value))
	}

	zap.L().Info("notify: "+msg.Title, fields...)

	return nil
}
