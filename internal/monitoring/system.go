// Package monitoring exposes host-level resource usage for the admin
// dashboard.
package monitoring

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type SystemStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryTotal   uint64  `json:"memory_total"`
	MemoryUsed    uint64  `json:"memory_used"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskTotal     uint64  `json:"disk_total"`
	DiskFree      uint64  `json:"disk_free"`
	DiskPercent   float64 `json:"disk_percent"`
}

// CollectSystemStats samples CPU over one second and reads memory and disk
// usage. Sampling errors leave the corresponding fields zero.
func CollectSystemStats() *SystemStats {
	stats := &SystemStats{}

	if cpuPercents, err := cpu.Percent(time.Second, false); err == nil && len(cpuPercents) > 0 {
		stats.CPUPercent = cpuPercents[0]
	}
	if memStats, err := mem.VirtualMemory(); err == nil {
		stats.MemoryTotal = memStats.Total
		stats.MemoryUsed = memStats.Used
		stats.MemoryPercent = memStats.UsedPercent
	}
	if diskStats, err := disk.Usage("/"); err == nil {
		stats.DiskTotal = diskStats.Total
		stats.DiskFree = diskStats.Free
		stats.DiskPercent = diskStats.UsedPercent
	}

	return stats
}
