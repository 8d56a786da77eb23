package governance

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration aborts a planning run: unknown network, unknown price
	// source key, or a contract a command must target has no address.
	ErrConfiguration = errors.New("configuration error")

	// ErrMissingDeployment marks a contract without a recorded deployment on
	// the network. Ownership planning recovers from it, the other planners
	// report it wrapped in ErrConfiguration.
	ErrMissingDeployment = errors.New("missing deployment")

	// ErrInspection wraps failures of the state inspector or the deployment
	// registry. It is never retried here.
	ErrInspection = errors.New("inspection failed")
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConfiguration}, args...)...)
}

func inspectionError(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInspection, what, err)
}
