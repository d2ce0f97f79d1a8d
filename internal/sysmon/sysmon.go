// Package sysmon provides system-wide CPU and memory usage sampling for
// the TUI status line, plus Go heap snapshots for verbose run details.
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// HeapSnapshot holds a point-in-time reading of the Go heap.
type HeapSnapshot struct {
	HeapAlloc uint64 // bytes in use by the application
	Sys       uint64 // total bytes obtained from the OS
	NumGC     uint32 // completed GC cycles
}

// SampleHeap reads current Go runtime memory statistics.
func SampleHeap() HeapSnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return HeapSnapshot{
		HeapAlloc: m.HeapAlloc,
		Sys:       m.Sys,
		NumGC:     m.NumGC,
	}
}
