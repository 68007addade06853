//go:build !unix

package tools

import "time"

func cpuTime() (user time.Duration, sys time.Duration, ok bool) {
	return 0, 0, false
}
