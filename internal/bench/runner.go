package bench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"
	"time"

	"kvbench/internal/suite"
)

// ErrExecNotFound means the benchmark executable is not on the search path.
var ErrExecNotFound = errors.New("benchmark executable not found")

// Status is the outcome of a single external invocation.
type Status int

const (
	StatusCompleted Status = iota
	StatusCancelled
	StatusFailed
)

// RunResult carries the captured output and outcome of one invocation.
// A non-nil Err with StatusCompleted means the process exited non-zero but
// its stdout is still worth parsing.
type RunResult struct {
	Status Status
	Stdout string
	Stderr string
	Err    error
}

// Runner invokes the external benchmark executable, one suite at a time.
type Runner struct {
	Executable string
}

func NewRunner(executable string) *Runner {
	return &Runner{Executable: executable}
}

// lookPath allows tests to fake executable resolution.
var lookPath = exec.LookPath

// command builds the invocation. The executable may be a wrapper that
// forks, and its children inherit our output pipes; cancellation therefore
// kills the whole process group, not just the direct child, or Run would
// stay blocked on the pipe copier until every descendant exits.
func (r *Runner) command(ctx context.Context, def suite.Definition) *exec.Cmd {
	cmd := exec.CommandContext(ctx, r.Executable, def.Args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = time.Second
	return cmd
}

// Execute runs the suite and buffers stdout/stderr for parsing. Cancelling
// ctx kills the process and yields StatusCancelled.
func (r *Runner) Execute(ctx context.Context, def suite.Definition) RunResult {
	if _, err := lookPath(r.Executable); err != nil {
		return RunResult{
			Status: StatusFailed,
			Err:    fmt.Errorf("%w: %q", ErrExecNotFound, r.Executable),
		}
	}

	var out, errOut bytes.Buffer
	cmd := r.command(ctx, def)
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	if ctx.Err() != nil {
		return RunResult{
			Status: StatusCancelled,
			Stdout: out.String(),
			Stderr: errOut.String(),
			Err:    ctx.Err(),
		}
	}

	return RunResult{
		Status: StatusCompleted,
		Stdout: out.String(),
		Stderr: errOut.String(),
		Err:    err,
	}
}

// Stream runs the suite forwarding output to the given writers without
// capturing anything. Used when nothing will be parsed or persisted.
func (r *Runner) Stream(ctx context.Context, def suite.Definition, out, errOut io.Writer) RunResult {
	if _, err := lookPath(r.Executable); err != nil {
		return RunResult{
			Status: StatusFailed,
			Err:    fmt.Errorf("%w: %q", ErrExecNotFound, r.Executable),
		}
	}

	cmd := r.command(ctx, def)
	cmd.Stdout = out
	cmd.Stderr = errOut

	err := cmd.Run()
	if ctx.Err() != nil {
		return RunResult{Status: StatusCancelled, Err: ctx.Err()}
	}
	return RunResult{Status: StatusCompleted, Err: err}
}
