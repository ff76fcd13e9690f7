package compress

import (
	"context"
	"os/exec"
)

// CommandExecutor defines an interface for running external commands.
// This abstraction is crucial for enabling unit tests to mock the
// Ghostscript invocation.
type CommandExecutor interface {
	// RunCombined executes a command and returns its combined standard
	// output and standard error.
	RunCombined(ctx context.Context, name string, args ...string) ([]byte, error)
}

// defaultExecutor implements the CommandExecutor interface using the
// standard os/exec package.
type defaultExecutor struct{}

// RunCombined is the production implementation for executing a command
// and capturing all output.
func (executor *defaultExecutor) RunCombined(
	ctx context.Context,
	name string,
	args ...string,
) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
