package game

import (
	"errors"
	"fmt"
)

var (
	ErrProviderUnavailable = errors.New("hint provider unavailable")
	ErrMalformedResponse   = errors.New("malformed hint response")
	ErrRoundFinished       = errors.New("round is already finished")
	ErrHintsPending        = errors.New("hints are still loading")
	ErrWrongPhase          = errors.New("command not accepted in current phase")
	ErrRejectedInput       = errors.New("input character rejected")
	ErrUnknownCommand      = errors.New("unknown command")
)

// ConfigurationError is fatal at startup: a session never starts with it
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Reason)
}
