// Package cpu reports host capabilities used to pick defaults.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to choosing a batched DFT
// strategy and its worker count.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasBMI2      bool
	HasADX       bool
	HasNEON      bool
	Architecture string
	NumCPU       int
	MaxProcs     int
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasBMI2:      cpu.X86.HasBMI2,
		HasADX:       cpu.X86.HasADX,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
		MaxProcs:     runtime.GOMAXPROCS(0),
	}
}

// DefaultWorkers is the worker count used when none is configured.
func DefaultWorkers() int {
	return max(1, runtime.GOMAXPROCS(0))
}

// String lists the detected SIMD extensions, e.g. "amd64 sse2,avx2,bmi2,adx".
func (f Features) String() string {
	var ext []string

	for _, e := range []struct {
		on   bool
		name string
	}{
		{f.HasSSE2, "sse2"},
		{f.HasAVX2, "avx2"},
		{f.HasAVX512, "avx512"},
		{f.HasBMI2, "bmi2"},
		{f.HasADX, "adx"},
		{f.HasNEON, "neon"},
	} {
		if e.on {
			ext = append(ext, e.name)
		}
	}

	if len(ext) == 0 {
		return f.Architecture + " generic"
	}

	return f.Architecture + " " + strings.Join(ext, ",")
}
