// Package campaign runs the solver over a batch of instances and collects
// per-instance results, in the style of the teacher's sequential benchmark
// harness: no concurrency of its own, one UUID-tagged run per instance.
package campaign

import (
	"time"

	"github.com/google/uuid"

	"github.com/elektrokombinacija/pibt-orient/internal/algo"
	"github.com/elektrokombinacija/pibt-orient/internal/core"
)

// Options configures a campaign run.
type Options struct {
	// Seed seeds every instance's driver. SeedPerInstance, when true,
	// derives a distinct seed per instance (Seed+index) instead of
	// reusing the same seed for all of them.
	Seed            int64
	SeedPerInstance bool
}

// Result is one instance's outcome.
type Result struct {
	RunID     uuid.UUID
	Name      string
	Solved    bool
	Timesteps int
	WallClock time.Duration
	NumAgents int
	Err       error
}

// Run solves each instance in order on the calling goroutine and returns
// one Result per instance, in input order.
func Run(instances []*core.Instance, names []string, opts Options) []Result {
	results := make([]Result, len(instances))
	for i, inst := range instances {
		seed := opts.Seed
		if opts.SeedPerInstance {
			seed += int64(i)
		}
		d := &algo.Driver{Seed: seed}

		name := ""
		if i < len(names) {
			name = names[i]
		}

		start := time.Now()
		plan, err := d.Run(inst)
		elapsed := time.Since(start)

		r := Result{
			RunID:     uuid.New(),
			Name:      name,
			WallClock: elapsed,
			NumAgents: inst.NumAgents(),
			Err:       err,
		}
		if err == nil {
			r.Solved = plan.Solved
			r.Timesteps = plan.Makespan()
		}
		results[i] = r
	}
	return results
}
