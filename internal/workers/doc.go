/*
Package workers provides utilities for determining optimal worker counts
in containerized environments.

# Overview

When running in containers, the number of available CPUs may be limited by
cgroup constraints. While Go 1.19+ automatically sets GOMAXPROCS based on
container CPU limits, the commonly used runtime.NumCPU() function still
returns the host machine's CPU count.

This package provides helper functions that use GOMAXPROCS to determine
appropriate worker counts for different types of workloads, ensuring
bundle packing and verification respect container resource limits.

# Basic Usage

The package provides task-specific helper functions:

	// For CPU-intensive tasks (entry decompression, checksum verification)
	// Uses 1 worker per available CPU
	numWorkers := workers.ForCPU(8) // max 8 workers

	// For I/O-bound tasks (reading loose files from the data path)
	// Uses 2 workers per available CPU
	numWorkers := workers.ForIO(16) // max 16 workers

	// For mixed workloads (read entry, decompress, write to disk)
	// Uses 1.5 workers per available CPU
	numWorkers := workers.ForMixed(12) // max 12 workers

For fine-grained control, use the Count function directly:

	// 3 workers per CPU, maximum of 24
	numWorkers := workers.Count(3.0, 24)

# Environment Variable Override

All functions respect the ASSET_WORKERS environment variable, allowing
operators to override the automatic calculation:

	env:
	- name: ASSET_WORKERS
	  value: "4"

This is useful for fine-tuning performance in specific environments,
debugging resource issues, or temporarily limiting concurrency.

# Thread Safety

All functions in this package are safe for concurrent use. They read from
runtime.GOMAXPROCS and environment variables, which are themselves
thread-safe.
*/
package workers
