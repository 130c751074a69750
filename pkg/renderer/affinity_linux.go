//go:build linux

package renderer

import (
	"runtime"

	"github.com/df07/go-pathtracer/pkg/log"
	"golang.org/x/sys/unix"
)

// pinToCore locks the calling goroutine to its OS thread and restricts that thread to
// core worker mod NumCPU. The thread is never unlocked; it exits with the worker, so its
// affinity mask does not leak to other goroutines.
func pinToCore(worker int, logger log.Logger) {
	runtime.LockOSThread()

	core := worker % runtime.NumCPU()
	var set unix.CPUSet
	set.Zero()
	set.Set(core)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		logger.Debugf("worker %d: could not pin to core %d: %v", worker, core, err)
		return
	}
	logger.Debugf("worker %d: pinned to core %d", worker, core)
}
