package config

import "runtime"

// Worker-count resolution chain (highest priority first):
//  1. CLI flag (--workers)
//  2. Environment variable (MULCALC_WORKERS)
//  3. Hardware estimation (this file)

// ResolveWorkers returns the effective self-test worker count, replacing
// the automatic zero value with a hardware-based estimate. User-specified
// values pass through untouched.
func ResolveWorkers(cfg AppConfig) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return EstimateWorkers()
}

// EstimateWorkers provides a heuristic worker count without running
// benchmarks. A single 8192-bit schoolbook multiply is far below the cost
// where goroutine overhead matters, so the trials batch cleanly across
// all available cores; very high core counts are capped because the
// math/big reference on the comparison side becomes memory-bound first.
func EstimateWorkers() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return numCPU
	case numCPU <= 16:
		return numCPU
	default:
		return 16
	}
}
