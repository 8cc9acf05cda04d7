package engine

// Logger receives debug output about unresolved keys.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithLogger sets the logger for unresolved and suppressed keys.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCapacity overrides the profile's display capacity.
// Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.capacity = n
		}
	}
}
