package locale

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is the sentinel every catalog misconfiguration unwraps to.
// It is a startup-time error: a process holding one must not serve traffic.
var ErrInvalidCatalog = errors.New("locale: invalid catalog configuration")

// ErrUnknownPolicy is returned when an unknown-prefix policy name cannot be parsed.
var ErrUnknownPolicy = errors.New("locale: unknown prefix policy")

// ConfigurationError describes why a catalog could not be built.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("locale: invalid catalog configuration: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidCatalog
}
