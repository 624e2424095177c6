package grader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// ExitError carries a failed command's stderr verbatim so the report can
// show the student the child's own words.
type ExitError struct {
	Stderr string
}

func (e *ExitError) Error() string {
	return e.Stderr
}

// Runner executes setup and run commands through a shell. The zero value
// uses bash and the standard logger.
type Runner struct {
	Shell string
	Log   *logrus.Logger
}

func (r *Runner) shell() string {
	if r.Shell == "" {
		return "bash"
	}
	return r.Shell
}

func (r *Runner) log() *logrus.Logger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}

// Setup runs a test's setup command and returns its stdout. A nonzero exit
// comes back as an *ExitError holding the command's stderr.
func (r *Runner) Setup(ctx context.Context, tc *TestCase) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, tc.Deadline())
	defer cancel()

	r.log().WithFields(logrus.Fields{"at": "runner.setup", "test": tc.Name}).Debug(tc.Setup)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.shell(), "-c", tc.Setup)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", r.commandError(ctx, "failed to run test setup", err, &stderr)
	}
	return stdout.String(), nil
}

// Run executes a test's run command with the test input piped to stdin and
// returns the captured stdout for comparison.
func (r *Runner) Run(ctx context.Context, tc *TestCase) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, tc.Deadline())
	defer cancel()

	r.log().WithFields(logrus.Fields{"at": "runner.run", "test": tc.Name}).Debug(tc.Run)

	cmd := exec.CommandContext(ctx, r.shell(), "-c", tc.Run)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", fmt.Errorf("could not get a handle to stdin: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start %s with the test run command: %w", r.shell(), err)
	}

	// Close stdin once the input is written so EOF-driven programs finish
	// instead of waiting out the deadline. A write error here means the
	// child exited without reading; its exit status tells the real story.
	if _, err := io.WriteString(stdin, tc.Input); err != nil {
		r.log().WithFields(logrus.Fields{"at": "runner.stdin", "test": tc.Name}).Debug(err)
	}
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return "", r.commandError(ctx, "failed to run the test command", err, &stderr)
	}
	return stdout.String(), nil
}

func (r *Runner) commandError(ctx context.Context, action string, err error, stderr *bytes.Buffer) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.New("command timed out")
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExitError{Stderr: stderr.String()}
	}
	return fmt.Errorf("%s: %w", action, err)
}
