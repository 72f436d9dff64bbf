package sdrfeatures

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-shellwords"
)

// DefaultProbeTimeout is how long a probe waits for a spawned command
// before each kill attempt.
const DefaultProbeTimeout = 10 * time.Second

// Runner spawns external commands on behalf of detection strategies.
//
// Probed tools are run with stdin, stdout, and stderr wired to the null
// device so they cannot prompt or pollute the host's output, with DISPLAY
// and WAYLAND_DISPLAY removed from the environment so GUI-capable tools
// never open a window, and with the working directory pointed at a scratch
// directory so probes that drop files do so out of the way.
type Runner struct {
	// Dir is the working directory for probed commands. Defaults to the
	// system temporary directory.
	Dir string
	// Timeout is the wait window of the kill protocol. Defaults to
	// DefaultProbeTimeout.
	Timeout time.Duration
	// Log receives timeout warnings. Defaults to the package logger.
	Log *log.Logger

	// killProcess overrides the kill step of the timeout protocol.
	// For tests.
	killProcess func(*os.Process)
}

// Runnable reports whether command (a shell-quoted command line) resolves
// to an executable that runs to termination. The exit code is irrelevant;
// only a missing or unlaunchable executable counts as failure.
func (r *Runner) Runnable(command string) bool {
	_, ok := r.run(command)
	return ok
}

// RunnableWithExit is like Runnable but additionally requires the command
// to exit with the expected code.
func (r *Runner) RunnableWithExit(command string, expected int) bool {
	code, ok := r.run(command)
	return ok && code == expected
}

// run executes command to completion and returns its exit code. ok is
// false when the command line cannot be parsed or the executable cannot be
// launched at all, which is distinct from launching and exiting nonzero.
func (r *Runner) run(command string) (int, bool) {
	argv, err := shellwords.Parse(command)
	if err != nil || len(argv) == 0 {
		return 0, false
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = r.dir()
	cmd.Env = sanitizedEnv()
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		// Covers exec.ErrNotFound and permission failures.
		return 0, false
	}

	err = r.wait(cmd, command)
	if err == nil {
		return 0, true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}

// wait blocks until the probed process terminates. Every time the timeout
// elapses it logs a warning, kills the process, and waits again, so the
// probe eventually returns even against binaries that shrug off the first
// kill. Total wall-clock time is unbounded by design.
func (r *Runner) wait(cmd *exec.Cmd, command string) error {
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	timeout := r.timeout()
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case err := <-done:
			return err
		case <-timer.C:
			r.log().Warn("feature check command did not return, killing",
				"command", command, "timeout", timeout)
			r.kill(cmd.Process)
			timer.Reset(timeout)
		}
	}
}

// FirstLine runs a short-lived helper and returns the first line of its
// standard output. ok is false when the executable is missing, produces no
// output, or outlives the probe timeout.
func (r *Runner) FirstLine(name string, args ...string) (string, bool) {
	lines, ok := r.output(name, args...)
	if !ok || len(lines) == 0 {
		return "", false
	}
	return lines[0], true
}

// Lines runs a short-lived helper and returns its standard output split
// into trimmed lines.
func (r *Runner) Lines(name string, args ...string) ([]string, bool) {
	return r.output(name, args...)
}

func (r *Runner) output(name string, args ...string) ([]string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir()
	cmd.Env = sanitizedEnv()

	out, err := cmd.Output()
	// Version helpers are allowed to exit nonzero after printing; only an
	// empty capture is a failure.
	if len(out) == 0 {
		if err != nil {
			return nil, false
		}
		return nil, true
	}

	raw := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines, true
}

func (r *Runner) kill(p *os.Process) {
	if r.killProcess != nil {
		r.killProcess(p)
		return
	}
	kill(p)
}

func (r *Runner) dir() string {
	if r.Dir != "" {
		return r.Dir
	}
	return os.TempDir()
}

func (r *Runner) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return DefaultProbeTimeout
}

func (r *Runner) log() *log.Logger {
	if r.Log != nil {
		return r.Log
	}
	return log.Default()
}

// sanitizedEnv returns the process environment without display server
// variables, so probes of GUI-capable tools never attempt to open windows.
func sanitizedEnv() []string {
	env := os.Environ()
	kept := make([]string, 0, len(env))
	for _, kv := range env {
		if strings.HasPrefix(kv, "DISPLAY=") || strings.HasPrefix(kv, "WAYLAND_DISPLAY=") {
			continue
		}
		kept = append(kept, kv)
	}
	return kept
}
