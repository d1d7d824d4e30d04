// Package notify is the fire-and-forget message sink. Nothing in the
// cashier pipeline depends on a notification being delivered.
package notify

import "log"

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier receives user-facing messages. A frontend would surface them as
// toasts; the default sink just logs them.
type Notifier interface {
	Notify(message string, level Level)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Notify(message string, level Level) {
	log.Printf("[%s] %s", level, message)
}
