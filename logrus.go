package playlytics

import (
	"github.com/sirupsen/logrus"
)

// LogrusAdapter adapts a *logrus.Logger to the StructuredLogger interface.
// Key-value pairs are converted to logrus fields.
//
// Example:
//
//	logger := logrus.New()
//	client, _ := playlytics.New(serverKey,
//	    playlytics.WithStructuredLogger(playlytics.NewLogrusAdapter(logger)),
//	)
type LogrusAdapter struct {
	logger *logrus.Logger
}

// NewLogrusAdapter creates a new LogrusAdapter wrapping the given logger.
// If logger is nil, logrus.StandardLogger() is used.
func NewLogrusAdapter(logger *logrus.Logger) *LogrusAdapter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusAdapter{logger: logger}
}

// Debug implements StructuredLogger.Debug.
func (a *LogrusAdapter) Debug(msg string, args ...any) {
	a.entry(args).Debug(msg)
}

// Info implements StructuredLogger.Info.
func (a *LogrusAdapter) Info(msg string, args ...any) {
	a.entry(args).Info(msg)
}

// Warn implements StructuredLogger.Warn.
func (a *LogrusAdapter) Warn(msg string, args ...any) {
	a.entry(args).Warn(msg)
}

// Error implements StructuredLogger.Error.
func (a *LogrusAdapter) Error(msg string, args ...any) {
	a.entry(args).Error(msg)
}

// entry converts alternating key-value args to a logrus entry with fields.
func (a *LogrusAdapter) entry(args []any) *logrus.Entry {
	if len(args) == 0 {
		return logrus.NewEntry(a.logger)
	}
	fields := make(logrus.Fields, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "arg"
		}
		fields[key] = args[i+1]
	}
	return a.logger.WithFields(fields)
}

// Ensure LogrusAdapter implements StructuredLogger.
var _ StructuredLogger = (*LogrusAdapter)(nil)
