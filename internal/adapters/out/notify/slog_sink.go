package notify

import (
	"log/slog"

	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

var (
	_ ports.NotificationSink = (*SlogSink)(nil)
	_ ports.SessionListener  = (*SlogSessionListener)(nil)
)

// SlogSink renders operation notifications as structured log records. A
// richer UI can swap in its own sink; the core only sees the port.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink writing to the given logger.
func NewSlogSink(logger *slog.Logger) (*SlogSink, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	return &SlogSink{logger: logger}, nil
}

// Started reports that an operation began.
func (s *SlogSink) Started(operation, orderID string) {
	s.logger.Info("operation started", "operation", operation, "order", orderID)
}

// Succeeded reports that an operation completed, with the service message
// when one was returned.
func (s *SlogSink) Succeeded(operation, orderID, message string) {
	s.logger.Info("operation succeeded",
		"operation", operation, "order", orderID, "message", message)
}

// Failed reports that an operation failed.
func (s *SlogSink) Failed(operation, orderID string, err error) {
	s.logger.Error("operation failed",
		"operation", operation, "order", orderID, "error", err)
}

// SlogSessionListener logs session endings. The hosting UI replaces it with
// a listener that redirects to the login screen.
type SlogSessionListener struct {
	logger *slog.Logger
}

// NewSlogSessionListener creates a listener writing to the given logger.
func NewSlogSessionListener(logger *slog.Logger) (*SlogSessionListener, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	return &SlogSessionListener{logger: logger}, nil
}

// SessionEnded logs why the session ended.
func (l *SlogSessionListener) SessionEnded(reason string) {
	l.logger.Warn("session ended", "reason", reason)
}
