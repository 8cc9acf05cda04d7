//go:build !linux

package hook

import (
	"context"
	"errors"
)

// Evdev is unavailable outside Linux.
type Evdev struct {
	opts options
}

// NewEvdev returns a hook whose Start always fails.
func NewEvdev(device string, opts ...Option) *Evdev {
	return &Evdev{opts: applyOptions(opts)}
}

// Name returns "evdev".
func (h *Evdev) Name() string {
	return "evdev"
}

// Start returns ErrHookInstall.
func (h *Evdev) Start(ctx context.Context, sink Sink) error {
	return installError(h.Name(), errors.New("evdev input is only available on Linux"))
}
