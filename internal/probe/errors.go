package probe

import "errors"

var (
	ErrEmptyChannelID   = errors.New("probe channel id cannot be empty")
	ErrInvalidTimestamp = errors.New("probe timestamp must not be zero")
	ErrNoProbeData      = errors.New("no probe data available")
)
