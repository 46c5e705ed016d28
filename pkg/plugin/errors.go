package plugin

import "errors"

// Processing and factory errors. The host reacts per kind: an invalid
// argument means the IO description changed and must be re-queried, an
// internal error is tolerated until it passes a frequency threshold, a
// load failure tears the plugin down immediately, and an unknown error
// is ignored after the plugin's output buffers are cleared.
var (
	// ErrInvalidArgument signals that a given argument does not follow
	// the specified conditions.
	ErrInvalidArgument = errors.New("plugin: invalid argument")

	// ErrInternal signals that something went wrong inside the plugin
	// or factory itself.
	ErrInternal = errors.New("plugin: internal error")

	// ErrLoadFailure signals that a factory failed to load a plugin.
	ErrLoadFailure = errors.New("plugin: load failure")

	// ErrUnknown is a catch-all for errors that fit no other kind.
	ErrUnknown = errors.New("plugin: unknown error")
)
