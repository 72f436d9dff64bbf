package sdrfeatures

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// testScript writes a shell script into a scratch dir and returns its path.
func testScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("probe tests rely on sh scripts")
	}
	path := filepath.Join(t.TempDir(), "probe.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunner_MissingBinary(t *testing.T) {
	r := &Runner{Timeout: time.Second}
	if r.Runnable("definitely-not-installed-anywhere --help") {
		t.Error("Runnable() with a missing binary = true, want false")
	}
	if r.RunnableWithExit("definitely-not-installed-anywhere", 0) {
		t.Error("RunnableWithExit() with a missing binary = true, want false")
	}
}

func TestRunner_UnparsableCommandLine(t *testing.T) {
	r := &Runner{Timeout: time.Second}
	if r.Runnable("foo 'unclosed quote") {
		t.Error("Runnable() with unbalanced quoting = true, want false")
	}
	if r.Runnable("") {
		t.Error("Runnable() with an empty command line = true, want false")
	}
}

func TestRunner_ShellQuoting(t *testing.T) {
	script := testScript(t, `test "$1" = "two words"`+"\n")
	r := &Runner{Timeout: 5 * time.Second}
	if !r.RunnableWithExit(script+` "two words"`, 0) {
		t.Error("quoted argument was not passed through as a single word")
	}
}

func TestRunner_ExitCodeInterpretation(t *testing.T) {
	script := testScript(t, "exit 3\n")
	r := &Runner{Timeout: 5 * time.Second}

	if !r.Runnable(script) {
		t.Error("Runnable() = false for a binary that runs and exits nonzero, want true")
	}
	if !r.RunnableWithExit(script, 3) {
		t.Error("RunnableWithExit(3) = false, want true")
	}
	if r.RunnableWithExit(script, 0) {
		t.Error("RunnableWithExit(0) = true for exit code 3, want false")
	}
}

func TestRunner_StripsDisplayEnv(t *testing.T) {
	t.Setenv("DISPLAY", ":0")
	t.Setenv("WAYLAND_DISPLAY", "wayland-1")

	script := testScript(t, `test -z "$DISPLAY" && test -z "$WAYLAND_DISPLAY"`+"\n")
	r := &Runner{Timeout: 5 * time.Second}
	if !r.RunnableWithExit(script, 0) {
		t.Error("probe environment still carries display server variables")
	}
}

func TestRunner_RunsInScratchDir(t *testing.T) {
	dir := t.TempDir()
	script := testScript(t, "touch probe-marker\n")
	r := &Runner{Dir: dir, Timeout: 5 * time.Second}

	if !r.Runnable(script) {
		t.Fatal("Runnable() = false, want true")
	}
	if _, err := os.Stat(filepath.Join(dir, "probe-marker")); err != nil {
		t.Errorf("probe did not run in the scratch dir: %v", err)
	}
}

func TestRunner_KillProtocolEventuallyReturns(t *testing.T) {
	var buf bytes.Buffer
	script := testScript(t, "sleep 1\n")

	// Neutering the kill step simulates a binary that shrugs off kill
	// signals; the probe must keep rewaiting and still return once the
	// process exits on its own.
	r := &Runner{
		Timeout:     200 * time.Millisecond,
		Log:         log.New(&buf),
		killProcess: func(*os.Process) {},
	}

	done := make(chan bool, 1)
	go func() { done <- r.Runnable(script) }()

	select {
	case ok := <-done:
		if !ok {
			t.Error("Runnable() = false, want true once the command exits")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("probe never returned")
	}

	if warnings := strings.Count(buf.String(), "did not return"); warnings < 2 {
		t.Errorf("logged %d timeout warnings, want at least 2", warnings)
	}
}

func TestRunner_KillTerminatesStuckCommand(t *testing.T) {
	var buf bytes.Buffer
	script := testScript(t, "sleep 60\n")
	r := &Runner{Timeout: 200 * time.Millisecond, Log: log.New(&buf)}

	done := make(chan bool, 1)
	go func() { done <- r.Runnable(script) }()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("kill protocol failed to terminate a stuck command")
	}

	if !strings.Contains(buf.String(), "did not return") {
		t.Error("no timeout warning logged for a stuck command")
	}
}

func TestRunner_FirstLine(t *testing.T) {
	script := testScript(t, "echo 'soapy_connector version 0.8.1'\necho second\n")
	r := &Runner{Timeout: 5 * time.Second}

	line, ok := r.FirstLine(script)
	if !ok {
		t.Fatal("FirstLine() ok = false, want true")
	}
	if line != "soapy_connector version 0.8.1" {
		t.Errorf("FirstLine() = %q", line)
	}
}

func TestRunner_FirstLine_MissingBinary(t *testing.T) {
	r := &Runner{Timeout: time.Second}
	if _, ok := r.FirstLine("definitely-not-installed-anywhere", "--version"); ok {
		t.Error("FirstLine() ok = true for a missing binary, want false")
	}
}

func TestRunner_Lines_Trimmed(t *testing.T) {
	script := testScript(t, "printf '  rtlsdr  \\nairspy\\nhackrf\\n'\n")
	r := &Runner{Timeout: 5 * time.Second}

	lines, ok := r.Lines(script)
	if !ok {
		t.Fatal("Lines() ok = false, want true")
	}
	want := []string{"rtlsdr", "airspy", "hackrf"}
	if len(lines) != len(want) {
		t.Fatalf("Lines() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRunner_Output_ToleratesNonzeroExit(t *testing.T) {
	// Version helpers may exit nonzero after printing; the output still counts.
	script := testScript(t, "echo 'rtl_connector version 0.7'\nexit 1\n")
	r := &Runner{Timeout: 5 * time.Second}

	line, ok := r.FirstLine(script)
	if !ok {
		t.Fatal("FirstLine() ok = false for nonzero exit with output, want true")
	}
	if line != "rtl_connector version 0.7" {
		t.Errorf("FirstLine() = %q", line)
	}
}
