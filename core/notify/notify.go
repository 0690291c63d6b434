package notify

import "context"

// Notifier delivers operational messages to an external channel.
// Implementations are best-effort: the sync service logs delivery
// failures but never fails a run because of them.
type Notifier interface {
	// Info sends an informational message.
	Info(ctx context.Context, msg string) error
	// Success sends a success message.
	Success(ctx context.Context, msg string) error
	// Warning sends a warning message.
	Warning(ctx context.Context, msg string) error
	// Error sends an error message.
	Error(ctx context.Context, msg string) error
}

// New builds a Notifier from the configuration. Missing credentials yield
// a no-op notifier so callers never have to nil-check.
func New(cfg Config) Notifier {
	if cfg.Token == "" || cfg.ChatID == "" {
		return Noop{}
	}
	return newTelegram(cfg)
}

// Noop is a Notifier that drops every message.
type Noop struct{}

func (Noop) Info(context.Context, string) error    { return nil }
func (Noop) Success(context.Context, string) error { return nil }
func (Noop) Warning(context.Context, string) error { return nil }
func (Noop) Error(context.Context, string) error   { return nil }
