package conv

import (
	"sync"

	"github.com/gridconv/gridconv/internal/parallel"
)

// The engine's parallelism is configured package-wide rather than per
// call, since a process typically picks one policy for all convolutions.

var (
	parallelCfg   = parallel.DefaultConfig()
	parallelCfgMu sync.RWMutex
)

// SetParallelConfig replaces the configuration used by subsequent
// convolution calls. Safe for concurrent use; calls already in flight
// keep the configuration they started with.
func SetParallelConfig(cfg parallel.Config) {
	parallelCfgMu.Lock()
	defer parallelCfgMu.Unlock()
	parallelCfg = cfg
}

// ParallelConfig returns the current parallel configuration.
func ParallelConfig() parallel.Config {
	parallelCfgMu.RLock()
	defer parallelCfgMu.RUnlock()
	return parallelCfg
}
