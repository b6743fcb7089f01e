package packager

import (
	"context"
	"io"
	"os/exec"
)

// Executor abstracts external-process invocation so builds can run against
// a fake in tests without spawning a real subprocess.
//
// The caller is responsible for validating command arguments; nothing here
// goes through a shell.
type Executor interface {
	// Run executes a command synchronously and blocks until it exits.
	// A nonzero exit status is returned as an error.
	Run(ctx context.Context, name string, args ...string) error
}

// OSExecutor is the production Executor backed by os/exec. Subprocess
// output is streamed to the configured writers.
type OSExecutor struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSExecutor creates an Executor that streams subprocess output to the
// given writers.
func NewOSExecutor(stdout, stderr io.Writer) *OSExecutor {
	return &OSExecutor{Stdout: stdout, Stderr: stderr}
}

// Run executes the command via exec.CommandContext. The command is killed
// if the context is cancelled.
func (e *OSExecutor) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	return cmd.Run()
}
