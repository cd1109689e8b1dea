// Package validate compares and measures Life evaluators through their
// capability surface only.
package validate

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"quadlife/internal/core"
	"quadlife/internal/metrics"
)

// Context carries the logger and optional metrics sink threaded through
// validation and measurement runs.
type Context struct {
	Log     zerolog.Logger
	Metrics *metrics.Metrics
}

// Validate advances a and b to the same virtual generation counts and
// requires identical signatures at every synchronized point. Instances
// report their step size through GenerationStep, so a hyper-stepping
// evaluator can be validated against a per-generation oracle: whichever
// side has the smaller counter advances until the counters meet. The run
// ends once both the wall-clock budget and the minimum-generation goal
// are satisfied. A mismatch is reported, never thrown.
func (c *Context) Validate(a, b core.Life, budget time.Duration, minGenerations int64) bool {
	if sa, sb := a.Signature(), b.Signature(); sa != sb {
		c.Log.Error().
			Str("a", a.Name()).Str("b", b.Name()).
			Str("sig_a", sa).Str("sig_b", sb).
			Msg("initial signatures differ")
		return false
	}

	bud := core.NewBudget(budget)
	var genA, genB, synced int64
	for {
		if bud.Spent() && synced >= minGenerations {
			break
		}
		if genA <= genB {
			step := a.GenerationStep()
			a = a.Next()
			genA += step
			c.Metrics.AddGenerations(step)
		} else {
			step := b.GenerationStep()
			b = b.Next()
			genB += step
			c.Metrics.AddGenerations(step)
		}
		if genA != genB {
			continue
		}
		synced = genA
		if sa, sb := a.Signature(), b.Signature(); sa != sb {
			c.Log.Error().
				Str("a", a.Name()).Str("b", b.Name()).
				Int64("generation", synced).
				Str("sig_a", sa).Str("sig_b", sb).
				Msg("signatures diverged")
			return false
		}
	}
	c.Log.Info().
		Str("a", a.Name()).Str("b", b.Name()).
		Int64("generations", synced).
		Msg("signatures agree")
	return true
}

// Result summarizes one Measure run.
type Result struct {
	Name        string
	Steps       int64
	Generations int64
	Elapsed     time.Duration
	ExtraInfo   string
}

// Measure advances the Life for the wall-clock budget and reports virtual
// generations per second, so hyper-stepping evaluators get credit for the
// generations each step covers. A step in progress is not interrupted.
func (c *Context) Measure(life core.Life, budget time.Duration) Result {
	bud := core.NewBudget(budget)
	var steps, generations int64
	for !bud.Spent() {
		step := life.GenerationStep()
		life = life.Next()
		steps++
		generations += step
		c.Metrics.AddGenerations(step)
	}
	res := Result{
		Name:        life.Name(),
		Steps:       steps,
		Generations: generations,
		Elapsed:     bud.Elapsed(),
		ExtraInfo:   life.ExtraInfo(),
	}
	perSec := float64(generations) / res.Elapsed.Seconds()
	c.Log.Info().
		Str("life", res.Name).
		Str("steps", humanize.Comma(steps)).
		Str("generations", humanize.Comma(generations)).
		Str("generations_per_sec", humanize.CommafWithDigits(perSec, 0)).
		Str("extra", res.ExtraInfo).
		Msg("measured")
	return res
}
