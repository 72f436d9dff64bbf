//go:build linux

package sdrfeatures

import (
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setProcessGroup places the probed command in its own process group so
// the kill protocol also reaches any children it spawned.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func kill(p *os.Process) {
	if p == nil {
		return
	}
	if err := unix.Kill(-p.Pid, unix.SIGKILL); err == nil {
		return
	}
	// Process group already gone or never created; fall back to the
	// process itself.
	_ = p.Kill()
}
