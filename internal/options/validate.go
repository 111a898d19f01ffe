// Package options provides shared utilities for option validation across packages.
package options

import (
	"cmp"

	"github.com/erraggy/oasbundler/oaserrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg is the error message when no source is specified.
// multiSourceMsg is the error message when multiple sources are specified.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &oaserrors.ConfigError{Option: "input", Message: noSourceMsg}
	}
	if sourceCount > 1 {
		return &oaserrors.ConfigError{Option: "input", Message: multiSourceMsg}
	}

	return nil
}

// NonNegative returns a *oaserrors.ConfigError naming option when v < 0.
func NonNegative[T cmp.Ordered](option string, v T) error {
	var zero T
	if v < zero {
		return &oaserrors.ConfigError{Option: option, Value: v, Message: "cannot be negative"}
	}
	return nil
}
