package sample

import (
	"context"
	"math"

	"github.com/shirou/gopsutil/v4/process"
)

// Usage is one point-in-time resource reading. Nil fields mean the
// sample could not be taken; that is not an error state.
type Usage struct {
	MemoryMB *int
	CPU      *float64
}

// Sampler reads memory and CPU usage for a pid at poll time.
type Sampler interface {
	Sample(ctx context.Context, pid int) Usage
}

// Proc samples via OS process accounting. A process that exited between
// discovery and sampling simply yields an empty Usage.
type Proc struct{}

func (Proc) Sample(ctx context.Context, pid int) Usage {
	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return Usage{}
	}

	var u Usage
	if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
		mb := int(math.Round(float64(mi.RSS) / (1024 * 1024)))
		u.MemoryMB = &mb
	}
	if pct, err := p.CPUPercentWithContext(ctx); err == nil {
		rounded := math.Round(pct*10) / 10
		u.CPU = &rounded
	}
	return u
}
