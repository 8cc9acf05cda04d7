package keymap

import "errors"

// Keymap errors
var (
	// ErrUnknownProfile is returned by Lookup for an unregistered profile name.
	ErrUnknownProfile = errors.New("unknown keymap profile")

	// ErrInvalidKeymap is returned by Validate when a table breaks its contract.
	ErrInvalidKeymap = errors.New("invalid keymap")
)
