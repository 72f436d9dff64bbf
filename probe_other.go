//go:build !linux

package sdrfeatures

import (
	"os"
	"os/exec"
)

func setProcessGroup(_ *exec.Cmd) {}

func kill(p *os.Process) {
	if p == nil {
		return
	}
	_ = p.Kill()
}
