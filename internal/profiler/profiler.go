// Package profiler wires Go's runtime/pprof profiles to CLI flags, for
// diagnosing slow conversions over large resource documents or batches.
package profiler

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/pflag"
)

// Profiler manages runtime profiling for a single CLI invocation.
//
// Create instances with [New], register flags with [Profiler.RegisterFlags],
// then call [Profiler.Start] before the work begins and [Profiler.Stop] once
// it's done.
type Profiler struct {
	cpuFile *os.File

	CPUProfile       string
	HeapProfile      string
	AllocsProfile    string
	GoroutineProfile string
	BlockProfile     string
	MutexProfile     string

	MemProfileRate       int
	BlockProfileRate     int
	MutexProfileFraction int
}

// New creates a new [Profiler] with all profiles disabled.
func New() *Profiler {
	return &Profiler{}
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (p *Profiler) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&p.CPUProfile, "cpu-profile", "", "write CPU profile to file")
	flags.StringVar(&p.HeapProfile, "heap-profile", "", "write heap profile to file")
	flags.StringVar(&p.AllocsProfile, "allocs-profile", "", "write allocs profile to file")
	flags.StringVar(&p.GoroutineProfile, "goroutine-profile", "", "write goroutine profile to file")
	flags.StringVar(&p.BlockProfile, "block-profile", "", "write block profile to file")
	flags.StringVar(&p.MutexProfile, "mutex-profile", "", "write mutex profile to file")

	flags.IntVar(&p.MemProfileRate, "mem-profile-rate", 524288, "memory profile rate (bytes per sample)")
	flags.IntVar(&p.BlockProfileRate, "block-profile-rate", 1, "block profile rate (nanoseconds)")
	flags.IntVar(&p.MutexProfileFraction, "mutex-profile-fraction", 1, "mutex profile fraction (1/N sampling)")
}

// Start configures runtime profiling rates and starts CPU profiling if
// enabled. Call [Profiler.Stop] when profiling is complete.
func (p *Profiler) Start() error {
	runtime.MemProfileRate = p.MemProfileRate
	runtime.SetBlockProfileRate(p.BlockProfileRate)
	runtime.SetMutexProfileFraction(p.MutexProfileFraction)

	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile) //nolint:gosec // Profile path comes from a CLI flag.
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	p.cpuFile = f

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = p.cpuFile.Close()

		p.cpuFile = nil

		return fmt.Errorf("starting CPU profile: %w", err)
	}

	return nil
}

// Stop stops CPU profiling and writes all enabled snapshot profiles.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		if err := p.cpuFile.Close(); err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}
	}

	return p.writeSnapshots()
}

func (p *Profiler) writeSnapshots() error {
	profiles := []struct {
		name string
		path string
	}{
		{"heap", p.HeapProfile},
		{"allocs", p.AllocsProfile},
		{"goroutine", p.GoroutineProfile},
		{"block", p.BlockProfile},
		{"mutex", p.MutexProfile},
	}

	for _, pr := range profiles {
		if pr.path == "" {
			continue
		}

		if err := p.writeProfile(pr.name, pr.path); err != nil {
			return fmt.Errorf("write %s profile: %w", pr.name, err)
		}
	}

	return nil
}

func (p *Profiler) writeProfile(name, path string) error {
	f, err := os.Create(path) //nolint:gosec // Profile path comes from a CLI flag.
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	prof := pprof.Lookup(name)
	if prof == nil {
		_ = f.Close()

		return fmt.Errorf("unknown profile: %s", name)
	}

	if err := prof.WriteTo(f, 0); err != nil {
		_ = f.Close()

		return fmt.Errorf("write %s profile: %w", name, err)
	}

	return f.Close()
}
