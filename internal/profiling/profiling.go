// Package profiling wraps CPU profile capture for the raycaster binaries.
package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
)

// StartCPU begins writing a CPU profile to path. The returned stop func is
// safe to call more than once.
func StartCPU(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to start cpu profile: %w", err)
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}
	return stop, nil
}
