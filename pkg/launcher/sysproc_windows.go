//go:build windows
// +build windows

package launcher

import (
	"os/exec"
	"syscall"
)

// configureSysProcAttr keeps the GUI from opening an extra console
// window on Windows.
func configureSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow: true,
	}
}
