//go:build !windows

// Package process terminates the headless browser used for PDF output.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, taking
// the browser's helper processes with it. Errors are ignored: the group
// may already be gone.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
