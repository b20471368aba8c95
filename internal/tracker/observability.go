package tracker

import (
	"log/slog"
	"time"
)

// CommandEvent captures lightweight execution telemetry for a session command.
type CommandEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
}

// Observer receives session command events.
type Observer interface {
	ObserveCommand(event CommandEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveCommand(CommandEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver logs every command at debug level, and failures at warn.
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) ObserveCommand(event CommandEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"command", event.Name,
		"duration_us", event.Duration.Microseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Warn("session_command", attrs...)
		return
	}
	o.logger.Debug("session_command", attrs...)
}
