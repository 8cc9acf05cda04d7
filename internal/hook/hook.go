// Package hook delivers physical key transitions from an input source to a
// Sink.
//
// Three sources exist:
//
//	evdev     - global keyboard capture from /dev/input (Linux, needs read access)
//	terminal  - key events of the focused terminal, mapped back to physical keys
//	replay    - a line-oriented script, for demos and tests
//
// Start installs the hook and returns; delivery continues on the hook's own
// goroutine until the context is cancelled. Start fails only when the hook
// cannot be installed. Once running, a failed delivery is logged and the
// transition dropped.
package hook

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/keyscreen/internal/input/key"
)

// Hook errors
var (
	// ErrHookInstall wraps every installation failure.
	ErrHookInstall = errors.New("hook installation failed")

	// ErrNoDevice means no keyboard-like input device was found.
	ErrNoDevice = errors.New("no keyboard device found")

	// ErrPermission means an input device exists but cannot be opened.
	ErrPermission = errors.New("permission denied opening input device")

	// ErrScript means a replay script could not be parsed.
	ErrScript = errors.New("invalid replay script")
)

// Sink receives transitions. Push must not block.
type Sink interface {
	Push(key.Transition) error
}

// Hook is an input source.
type Hook interface {
	// Start installs the hook and begins delivering transitions to sink.
	Start(ctx context.Context, sink Sink) error

	// Name returns the source name ("evdev", "terminal", "replay").
	Name() string
}

// Logger is the logging surface hooks need.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}

// Option configures a hook.
type Option func(*options)

type options struct {
	logger       Logger
	modifierKeys []key.Key
	loop         bool
}

func defaultOptions() options {
	return options{
		logger:       nopLogger{},
		modifierKeys: []key.Key{key.ControlLeft, key.ShiftLeft, key.AltGr, key.MetaLeft},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the hook logger.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithModifierKeys sets the keys released when held state becomes unknown.
func WithModifierKeys(keys ...key.Key) Option {
	return func(o *options) {
		if len(keys) > 0 {
			o.modifierKeys = keys
		}
	}
}

// WithLoop makes the replay hook restart its script when it ends.
func WithLoop(loop bool) Option {
	return func(o *options) {
		o.loop = loop
	}
}

// installError wraps cause with ErrHookInstall.
func installError(name string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrHookInstall, name, cause)
}

// deliver pushes t and logs a dropped transition.
func deliver(sink Sink, t key.Transition, log Logger) {
	if err := sink.Push(t); err != nil {
		log.Warn("dropped %s: %v", t, err)
	}
}

// releaseAll pushes a release for each key, used when held state is unknown.
func releaseAll(sink Sink, keys []key.Key, log Logger) {
	for _, k := range keys {
		deliver(sink, key.Release(k), log)
	}
}
