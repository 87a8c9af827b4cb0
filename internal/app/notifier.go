package app

import "go.uber.org/zap"

// Notifier is the sink for the transient success/info messages the core's
// callers surface as toasts. The presentation layer supplies its own; the
// bootstrap binary uses the log-backed one below.
type Notifier interface {
	Notify(msg, kind string)
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	Log *zap.Logger
}

func (n *LogNotifier) Notify(msg, kind string) {
	n.Log.Info("notification", zap.String("kind", kind), zap.String("message", msg))
}

var _ Notifier = (*LogNotifier)(nil)
