package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"quadlife/internal/core"
	"quadlife/internal/metrics"
	"quadlife/internal/node"
	"quadlife/internal/patterns"
	"quadlife/internal/render"
	"quadlife/internal/sims/gridlife"
	"quadlife/internal/sims/hashlife"
	"quadlife/internal/validate"
)

type rootFlags struct {
	size      int
	pattern   string
	seed      int64
	warpLevel int
	debug     bool
}

func (f *rootFlags) cfgMap() map[string]string {
	return map[string]string{
		"size":       fmt.Sprintf("%d", f.size),
		"pattern":    f.pattern,
		"seed":       fmt.Sprintf("%d", f.seed),
		"warp-level": fmt.Sprintf("%d", f.warpLevel),
	}
}

func (f *rootFlags) logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if f.debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func main() {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "quadlife",
		Short:         "HashLife-style Game of Life evaluator on interned quadtrees.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&flags.size, "size", 32, "initial grid side (quadtree modes pad it up to a power of two; grid uses it as given)")
	root.PersistentFlags().StringVar(&flags.pattern, "pattern", "glider", fmt.Sprintf("initial pattern %v", patterns.Names()))
	root.PersistentFlags().Int64Var(&flags.seed, "seed", 1, "seed for the random pattern")
	root.PersistentFlags().IntVar(&flags.warpLevel, "warp-level", 0, "minimum tree level after padding in warp mode")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	root.AddCommand(newRunCmd(flags), newValidateCmd(flags), newBenchCmd(flags))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "quadlife:", err)
		os.Exit(1)
	}
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	var mode string
	var steps int
	var watch bool
	var tps int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance a pattern and print frames or the final signature.",
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, ok := core.Lifes()[mode]
			if !ok {
				return fmt.Errorf("unknown mode %q", mode)
			}
			life, err := factory(flags.cfgMap())
			if err != nil {
				return err
			}
			console := render.NewConsole(watch)
			var generation int64
			if watch {
				fmt.Println(console.Frame(life, generation))
			}
			pacer := core.NewFixedStep(tps)
			for done := 0; done < steps; {
				if watch && !pacer.ShouldStep() {
					time.Sleep(time.Millisecond)
					continue
				}
				generation += life.GenerationStep()
				life = life.Next()
				done++
				if watch {
					fmt.Println(console.Frame(life, generation))
				}
			}
			fmt.Printf("generation=%d population=%s signature=%q\n",
				generation, humanize.Comma(life.AliveCount()), life.Signature())
			if info := life.ExtraInfo(); info != "" {
				fmt.Println(info)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "open", "evaluator: grid, torus, cropped, open, warp")
	cmd.Flags().IntVar(&steps, "steps", 100, "steps to advance")
	cmd.Flags().BoolVar(&watch, "watch", false, "print a frame per step, paced by --tps")
	cmd.Flags().IntVar(&tps, "tps", 10, "frames per second in watch mode")
	return cmd
}

func newValidateCmd(flags *rootFlags) *cobra.Command {
	var seconds float64
	var minGenerations int64
	var pairs []string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Cross-check evaluator pairs by signature.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := &validate.Context{Log: flags.logger(), Metrics: metrics.New()}
			budget := time.Duration(seconds * float64(time.Second))
			ok := true
			for i := 0; i+1 < len(pairs); i += 2 {
				a, err := makeLife(pairs[i], flags)
				if err != nil {
					return err
				}
				b, err := makeLife(pairs[i+1], flags)
				if err != nil {
					return err
				}
				if !ctx.Validate(a, b, budget, minGenerations) {
					ok = false
				}
			}
			if !ok {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&seconds, "seconds", 1, "wall-clock budget per pair")
	cmd.Flags().Int64Var(&minGenerations, "min-generations", 64, "minimum synchronized generations per pair")
	// Open-vs-warp pairs are valid only while the pattern fits the warp
	// box; they are opt-in rather than a default.
	cmd.Flags().StringSliceVar(&pairs, "pair", []string{"grid", "torus"},
		"evaluator names taken two at a time")
	return cmd
}

func newBenchCmd(flags *rootFlags) *cobra.Command {
	var seconds float64
	var candidates []string
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Round-robin Measure over the evaluators, reporting cache metrics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := flags.logger()
			budget := time.Duration(seconds * float64(time.Second))
			grid, err := patterns.Grid(flags.pattern, flags.size, flags.seed)
			if err != nil {
				return err
			}
			for _, name := range candidates {
				m := metrics.New()
				ctx := &validate.Context{Log: log, Metrics: m}
				life, cache, err := makeCandidate(name, grid, flags.warpLevel, m)
				if err != nil {
					return err
				}
				ctx.Measure(life, budget)
				printMetrics(log, name, m)
				if cache != nil {
					cache.Clear()
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&seconds, "seconds", 2, "wall-clock budget per candidate")
	cmd.Flags().StringSliceVar(&candidates, "candidates", []string{"grid", "torus", "cropped", "open", "warp"},
		"evaluators to measure")
	return cmd
}

// makeLife builds an evaluator from the registry using the shared flags.
func makeLife(name string, flags *rootFlags) (core.Life, error) {
	factory, ok := core.Lifes()[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
	return factory(flags.cfgMap())
}

// makeCandidate builds a bench candidate with an instrumented cache where
// the evaluator has one.
func makeCandidate(name string, grid [][]bool, warpLevel int, m *metrics.Metrics) (core.Life, *node.Cache, error) {
	if name == "grid" {
		life, err := gridlife.Create(grid)
		return life, nil, err
	}
	mode, err := hashlife.ParseMode(name)
	if err != nil {
		return nil, nil, err
	}
	cache := node.NewCache()
	cache.SetMetrics(m)
	life, err := hashlife.CreateWithCache(cache, grid, mode, warpLevel)
	if err != nil {
		return nil, nil, err
	}
	return life, cache, nil
}

func printMetrics(log zerolog.Logger, name string, m *metrics.Metrics) {
	families, err := m.Registry.Gather()
	if err != nil {
		log.Warn().Err(err).Msg("gathering metrics")
		return
	}
	ev := log.Info().Str("candidate", name)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				ev = ev.Str(family.GetName(), humanize.Comma(int64(metric.GetCounter().GetValue())))
			case metric.GetGauge() != nil:
				ev = ev.Str(family.GetName(), humanize.Comma(int64(metric.GetGauge().GetValue())))
			}
		}
	}
	ev.Msg("cache metrics")
}
