// Package system probes the host to size the page worker pool.
package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// perWorkerBytes is a rough ceiling for one in-flight page: the decoded
// raster, its luminance field with partial counts, and the panel crops of a
// high-resolution scan.
const perWorkerBytes = 256 << 20

// DefaultWorkers returns the default parallelism for page segmentation: one
// worker per logical CPU, reduced when available memory cannot hold that
// many pages in flight. Always at least 1.
func DefaultWorkers() int {
	workers := runtime.NumCPU()
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		workers = n
	}

	if vm, err := mem.VirtualMemory(); err == nil && vm.Available > 0 {
		if byMem := int(vm.Available / perWorkerBytes); byMem < workers {
			workers = byMem
		}
	}

	if workers < 1 {
		workers = 1
	}
	return workers
}
