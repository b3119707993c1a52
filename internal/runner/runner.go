// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/homer-cli/homer/internal/log"
)

// ErrInterrupted is returned when the user interrupted the child process.
// main maps it to exit code 130.
var ErrInterrupted = errors.New("interrupted by user")

// ToolNotFoundError reports a required executable missing from PATH.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("required tool %q not found on PATH", e.Tool)
}

// ExitError reports a child process that ran and exited non-zero. Code is
// the child's exit code, propagated verbatim by main. Stderr is only
// populated in captured mode; in streaming mode the child already wrote to
// the terminal.
type ExitError struct {
	Cmd    string
	Code   int
	Stdout string
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command `%s` exited with code %d", e.Cmd, e.Code)
}

// Result holds captured child output.
type Result struct {
	Stdout string
	Stderr string
}

// CheckTool verifies an executable is resolvable on PATH.
func CheckTool(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return &ToolNotFoundError{Tool: name}
	}
	return nil
}

// Run executes name with args in dir, streaming the child's stdout/stderr
// straight to the terminal. The child runs in its own process group: the
// first SIGINT is forwarded to that group so Terraform can shut down
// gracefully, a second one kills the child outright.
func Run(ctx context.Context, dir, name string, args ...string) error {
	_, err := run(ctx, dir, name, args, false)
	return err
}

// Capture executes name with args in dir and returns the child's output
// instead of streaming it. Used for probe commands such as
// `terraform show -json`.
func Capture(ctx context.Context, dir, name string, args ...string) (Result, error) {
	return run(ctx, dir, name, args, true)
}

func run(ctx context.Context, dir, name string, args []string, capture bool) (Result, error) {
	if err := CheckTool(name); err != nil {
		return Result{}, err
	}

	cmdline := name + " " + strings.Join(args, " ")
	log.Debugf("exec: dir=%s cmd=%s capture=%v", dir, cmdline, capture)

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout, stderr bytes.Buffer
	if capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("failed to start `%s`: %w", cmdline, err)
	}

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	interrupts := 0
	for {
		select {
		case <-ctx.Done():
			_ = cmd.Process.Kill()
			<-done
			return Result{}, ctx.Err()

		case <-sigCh:
			interrupts++
			if interrupts == 1 {
				log.Warnf("interrupt received, forwarding to child for a clean shutdown")
				// Negative pid signals the whole process group.
				_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGINT)
			} else {
				log.Warnf("second interrupt, killing child")
				_ = cmd.Process.Kill()
			}

		case err := <-done:
			res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
			if interrupts > 0 {
				return res, ErrInterrupted
			}
			if err != nil {
				var ee *exec.ExitError
				if errors.As(err, &ee) {
					return res, &ExitError{
						Cmd:    cmdline,
						Code:   ee.ExitCode(),
						Stdout: res.Stdout,
						Stderr: res.Stderr,
					}
				}
				return res, fmt.Errorf("command `%s` failed: %w", cmdline, err)
			}
			return res, nil
		}
	}
}
