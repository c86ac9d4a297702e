package validation

import (
	"fmt"
	"math"
)

// Finite rejects NaN and infinite values.
func Finite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number, got %v", name, value)
	}
	return nil
}

// NonNegative rejects negative and non-finite values.
func NonNegative(name string, value float64) error {
	if err := Finite(name, value); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%s cannot be negative, got %.2f", name, value)
	}
	return nil
}

// Positive rejects zero, negative and non-finite values.
func Positive(name string, value float64) error {
	if err := NonNegative(name, value); err != nil {
		return err
	}
	if value == 0 {
		return fmt.Errorf("%s must be greater than zero", name)
	}
	return nil
}

// InRange rejects values outside [min, max].
func InRange(name string, value, min, max float64) error {
	if math.IsNaN(value) || value < min || value > max {
		return fmt.Errorf("%s must be between %.2f and %.2f, got %.2f", name, min, max, value)
	}
	return nil
}

// IntInRange rejects values outside [min, max].
func IntInRange(name string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, min, max, value)
	}
	return nil
}
