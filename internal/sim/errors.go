package sim

import (
	"errors"
	"fmt"
)

// Domain errors for simulation requests. The generators themselves never
// fail; these are raised where requests enter the lab.
var (
	// ErrUnknownModel indicates a model name missing from the registry.
	ErrUnknownModel = errors.New("sim: unknown model")

	// ErrInvalidLength indicates a requested series length below 1.
	ErrInvalidLength = errors.New("sim: series length must be positive")

	// ErrUnknownParam indicates a parameter name no model understands.
	ErrUnknownParam = errors.New("sim: unknown parameter")

	// ErrInvalidParam indicates a parameter value that could not be parsed.
	ErrInvalidParam = errors.New("sim: invalid parameter value")

	// ErrNonFinite indicates a generated series that diverged to NaN or
	// infinity, typically from a non-stationary AR coefficient.
	ErrNonFinite = errors.New("sim: series contains non-finite values")

	// ErrNotSetup indicates an experiment run before Setup.
	ErrNotSetup = errors.New("sim: experiment not set up")
)

// ParamError wraps an error with the parameter it concerns.
type ParamError struct {
	Name string
	Err  error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}
