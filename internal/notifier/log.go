package notifier

import (
	"context"

	"go.uber.org/zap"

	"github.com/lojadev/checkout-service/internal/domain/notification"
)

var _ notification.Notifier = (*LogNotifier)(nil)

// LogNotifier writes notifications to the log instead of delivering them.
// Used when no Kafka brokers are configured, typically in local development.
type LogNotifier struct {
	lg *zap.Logger
}

// NewLogNotifier creates a notifier that logs through lg.
func NewLogNotifier(lg *zap.Logger) *LogNotifier {
	return &LogNotifier{lg: lg}
}

// Send logs the message and reports success.
func (n *LogNotifier) Send(_ context.Context, to, subject, body string) error {
	n.lg.Info("Email notification",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
