package command

import (
	"context"
	"os/exec"
)

// Executor creates exec.Cmd instances. Tests inject an implementation that
// swaps the git binary for a fixture without touching the builder.
type Executor interface {
	// Command creates an exec.Cmd for the given binary and arguments.
	Command(name string, args ...string) *exec.Cmd

	// CommandContext creates a context-aware exec.Cmd.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor runs commands through os/exec.
type RealExecutor struct{}

func (e *RealExecutor) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
