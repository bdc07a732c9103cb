// Package sysopen opens paths in the platform's file browser.
package sysopen

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open opens path with the operating system's default file browser.
func Open(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	// Release the child; we don't care when the file browser exits.
	go func() { _ = cmd.Wait() }()

	return nil
}
