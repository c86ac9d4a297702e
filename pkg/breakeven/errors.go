package breakeven

import "errors"

var (
	// ErrInvalidModel is returned when the price per unit does not exceed the
	// variable cost per unit. No derived metric is meaningful in that case.
	ErrInvalidModel = errors.New("price per unit must be greater than variable cost")

	// ErrInvalidParameter is returned for out-of-range forecast or sweep
	// arguments.
	ErrInvalidParameter = errors.New("invalid parameter")
)
