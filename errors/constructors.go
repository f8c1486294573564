package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *StatusError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *StatusError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// NvimConnect creates an error for a failed Neovim RPC connection
func NvimConnect(addr string, err error) *StatusError {
	return Wrap(err, ErrCodeNvimConnect, fmt.Sprintf("could not connect to nvim at %s", addr)).
		WithDetail("address", addr)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *StatusError {
	statusErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		statusErr = statusErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return statusErr
}
