package renderer

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// HostInfo describes the machine a render runs on
type HostInfo struct {
	CPUModel        string
	MHz             float64
	PhysicalCores   int
	LogicalCores    int
	TotalMemory     uint64 // bytes
	AvailableMemory uint64 // bytes
}

// GetHostInfo queries the CPU and memory of the host
func GetHostInfo() (HostInfo, error) {
	info := HostInfo{LogicalCores: runtime.NumCPU()}

	cpuInfo, err := cpu.Info()
	if err != nil {
		return info, fmt.Errorf("renderer: reading cpu info: %w", err)
	}
	if len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
		info.MHz = cpuInfo[0].Mhz
	}

	if n, err := cpu.Counts(false); err == nil && n > 0 {
		info.PhysicalCores = n
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		info.LogicalCores = n
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return info, fmt.Errorf("renderer: reading memory info: %w", err)
	}
	info.TotalMemory = memInfo.Total
	info.AvailableMemory = memInfo.Available

	return info, nil
}

// DefaultThreads is the number of physical cores, or runtime.NumCPU when that is unknown
func DefaultThreads() int {
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Table renders the host description as a text table
func (h HostInfo) Table() string {
	const gib = 1024 * 1024 * 1024

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"CPU", h.CPUModel})
	table.Append([]string{"Clock", fmt.Sprintf("%.2f GHz", h.MHz/1000)})
	table.Append([]string{"Physical cores", fmt.Sprintf("%d", h.PhysicalCores)})
	table.Append([]string{"Logical cores", fmt.Sprintf("%d", h.LogicalCores)})
	table.Append([]string{"Memory", fmt.Sprintf("%.1f GiB (%.1f GiB available)", float64(h.TotalMemory)/gib, float64(h.AvailableMemory)/gib)})
	table.Append([]string{"Go", fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)})
	table.Render()
	return buf.String()
}
