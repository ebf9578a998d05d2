//go:build linux

package search

import "golang.org/x/sys/unix"

// loadShift converts the kernel's fixed-point load averages.
const loadShift = 16

// loadAverage returns the 1-minute load average, or 0 when it cannot
// be read.
func loadAverage() float64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}
	return float64(info.Loads[0]) / (1 << loadShift)
}
