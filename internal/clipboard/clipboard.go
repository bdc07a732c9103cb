// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when the platform has no usable clipboard.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Clipboard reads and writes textual data on the system clipboard.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
	// Available reports whether the platform clipboard is usable at all.
	Available() bool
}

// System implements Clipboard using github.com/atotto/clipboard.
type System struct{}

// NewSystem constructs a system clipboard implementation.
func NewSystem() *System {
	return &System{}
}

// Read returns the current clipboard text.
func (s *System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// Write replaces the clipboard contents with text.
func (s *System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Available reports whether clipboard operations are supported.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

var _ Clipboard = (*System)(nil)
