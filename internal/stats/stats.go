// SPDX-License-Identifier: MPL-2.0

package stats

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

const mebibyte = 1024 * 1024

type (
	// Clock is the time source of a Footer.
	Clock interface {
		Now() time.Time
		Since(t time.Time) time.Duration
	}

	// RealClock reads the system clock.
	RealClock struct{}

	// Memory is a snapshot of process memory, in MiB.
	Memory struct {
		// UsedMB is the heap memory held by live objects.
		UsedMB uint64
		// TotalMB is the memory obtained from the operating system.
		TotalMB uint64
	}

	// Footer prints the stats lines at the end of a run.
	Footer struct {
		clock  Clock
		logger *log.Logger
		memory func() Memory
	}
)

// Now returns time.Now().
func (RealClock) Now() time.Time { return time.Now() }

// Since returns time.Since(t).
func (RealClock) Since(t time.Time) time.Duration { return time.Since(t) }

// NewFooter returns a Footer timing with clock and printing to logger.
// A nil clock uses the system clock.
func NewFooter(clock Clock, logger *log.Logger) *Footer {
	if clock == nil {
		clock = RealClock{}
	}
	return &Footer{clock: clock, logger: logger, memory: ReadMemory}
}

// Print logs the elapsed time since start and the memory in use.
func (f *Footer) Print(start time.Time) {
	f.logger.Info("Total time: " + FormatTime(f.clock.Since(start)))
	f.logger.Info(f.memory().String())
}

// ReadMemory collects garbage and samples the runtime memory statistics.
func ReadMemory() Memory {
	runtime.GC()
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return Memory{
		UsedMB:  ms.HeapAlloc / mebibyte,
		TotalMB: ms.Sys / mebibyte,
	}
}

// String renders the footer line, e.g. "Final Memory: 3M/12M".
func (m Memory) String() string {
	return fmt.Sprintf("Final Memory: %dM/%dM", m.UsedMB, m.TotalMB)
}

// FormatTime renders d as seconds with milliseconds, prefixed with minutes
// and hours once they are non-zero: "0.450s", "1:01.200s", "1:00:00.000s".
// Negative durations are treated as zero.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := d.Milliseconds()
	ms := total % 1000
	seconds := (total / 1000) % 60
	minutes := (total / (60 * 1000)) % 60
	hours := total / (60 * 60 * 1000)

	switch {
	case hours > 0:
		return fmt.Sprintf("%d:%02d:%02d.%03ds", hours, minutes, seconds, ms)
	case minutes > 0:
		return fmt.Sprintf("%d:%02d.%03ds", minutes, seconds, ms)
	default:
		return fmt.Sprintf("%d.%03ds", seconds, ms)
	}
}
