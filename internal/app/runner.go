package app

import (
	"context"
	"log"
	"time"

	"lifegame/pkg/core"
)

// StopReason explains why Run returned.
type StopReason int

const (
	StopStable StopReason = iota
	StopLimit
	StopCancelled
)

func (r StopReason) String() string {
	switch r {
	case StopStable:
		return "stable"
	case StopLimit:
		return "generation limit"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result summarizes a headless run.
type Result struct {
	Generations int
	Population  int
	Reason      StopReason
}

// Run advances sim until a generation changes nothing, the configured limit
// is reached, or ctx is done. Cancellation is observed between generations.
func Run(ctx context.Context, sim core.Sim, cfg *Config, logger *log.Logger) Result {
	var tick <-chan time.Time
	if d := cfg.Interval(); d > 0 {
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	res := Result{Population: sim.Population()}
	logger.Printf("%s %dx%d: starting with %d live cells", sim.Name(), sim.Size().W, sim.Size().H, res.Population)
	for {
		if cfg.MaxGenerations > 0 && res.Generations >= cfg.MaxGenerations {
			res.Reason = StopLimit
			break
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				res.Reason = StopCancelled
				return finish(res, sim, logger)
			case <-tick:
			}
		} else if ctx.Err() != nil {
			res.Reason = StopCancelled
			break
		}

		changed := sim.Step()
		res.Generations++
		if changed == 0 {
			res.Reason = StopStable
			break
		}
	}
	return finish(res, sim, logger)
}

func finish(res Result, sim core.Sim, logger *log.Logger) Result {
	res.Population = sim.Population()
	logger.Printf("stopped after %d generations (%s), %d live cells", res.Generations, res.Reason, res.Population)
	return res
}
