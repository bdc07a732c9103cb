// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strconv"
)

// Capacity bounds offered by the settings form.
const (
	CapacityMin = 10
	CapacityMax = 500
)

// Capacity validates a history capacity value.
func Capacity(n int) error {
	if n < CapacityMin || n > CapacityMax {
		return fmt.Errorf("must be between %d and %d", CapacityMin, CapacityMax)
	}
	return nil
}

// CapacityString validates a capacity entered as text and returns the
// parsed value.
func CapacityString(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	if err := Capacity(n); err != nil {
		return 0, err
	}
	return n, nil
}
