//go:build unix

package tools

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuTime returns the user and system CPU time consumed by the process.
func cpuTime() (user time.Duration, sys time.Duration, ok bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, 0, false
	}
	return time.Duration(ru.Utime.Nano()), time.Duration(ru.Stime.Nano()), true
}
