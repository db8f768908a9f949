package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/zeusync/fishtank/internal/aquarium"
	"github.com/zeusync/fishtank/internal/autopilot"
	"github.com/zeusync/fishtank/internal/core/events/bus"
	"github.com/zeusync/fishtank/internal/core/observability/log"
	"github.com/zeusync/fishtank/internal/injector"
	"github.com/zeusync/fishtank/pkg/concurrent"
)

type config struct {
	tuningPath string
	seed       string
	frames     int
	fps        int
	sessions   int
	workers    int
	difficulty string
	logLevel   string
	cheat      bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("fishtank", flag.ContinueOnError)
	fs.StringVar(&c.tuningPath, "config", "", "YAML tuning file overriding the defaults")
	fs.StringVar(&c.seed, "seed", "fishtank", "seed name; sessions derive their seeds from it")
	fs.IntVar(&c.frames, "frames", 3600, "frames to simulate per session")
	fs.IntVar(&c.fps, "fps", 60, "simulated frames per second")
	fs.IntVar(&c.sessions, "sessions", 1, "number of independent sessions")
	fs.IntVar(&c.workers, "workers", 0, "sessions running at once, 0 for all")
	fs.StringVar(&c.difficulty, "difficulty", "easy", "easy, medium or hard")
	fs.StringVar(&c.logLevel, "log-level", "info", "debug, info, warn, error or off")
	fs.BoolVar(&c.cheat, "cheat", false, "start every session invulnerable")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if c.frames <= 0 || c.fps <= 0 || c.sessions <= 0 {
		return config{}, errors.New("frames, fps and sessions must be positive")
	}
	return c, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.New(log.ParseLevel(cfg.logLevel))
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run failed", log.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger log.Log) error {
	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	seeds := make([]uint64, cfg.sessions)
	for i := range seeds {
		seeds[i] = opts.Seed + uint64(i)
	}
	results, err := concurrent.ParallelMap(ctx, seeds, cfg.workers, func(ctx context.Context, seed uint64) (result, error) {
		o := opts
		o.Seed = seed
		return runSession(ctx, cfg, o, logger)
	})
	for _, r := range results {
		if r.id == uuid.Nil {
			continue
		}
		logger.Info("session finished",
			log.String("session", r.id.String()),
			log.Uint64("seed", r.seed),
			log.Int("frames", r.frames),
			log.Int("deaths", r.deaths),
			log.Int("food_eaten", r.foodEaten),
			log.Int("hits_taken", r.hits),
			log.Float64("longest_life", r.longestLife),
			log.Uint64("events", r.published),
		)
	}
	return err
}

func buildOptions(cfg config) (aquarium.Options, error) {
	opts := aquarium.DefaultOptions()
	opts.Seed = aquarium.SeedFromString(cfg.seed)

	d, err := aquarium.ParseDifficulty(cfg.difficulty)
	if err != nil {
		return opts, err
	}
	opts.Difficulty = d

	if cfg.tuningPath != "" {
		f, err := os.Open(cfg.tuningPath)
		if err != nil {
			return opts, fmt.Errorf("open tuning: %w", err)
		}
		defer f.Close()
		if opts.Tuning, err = aquarium.LoadTuning(f); err != nil {
			return opts, fmt.Errorf("load %s: %w", cfg.tuningPath, err)
		}
	}
	return opts, nil
}

type result struct {
	id          uuid.UUID
	seed        uint64
	frames      int
	deaths      int
	foodEaten   int
	hits        int
	longestLife float64
	published   uint64
}

// deliveryWatch reports subscriber failures without stopping the session.
type deliveryWatch struct{ logger log.Log }

func (d deliveryWatch) OnPublish(string, bus.Event) {}

func (d deliveryWatch) OnDelivered(eventType string, handlers int, err error) {
	if err != nil {
		d.logger.Warn("event handler failed", log.String("event", eventType), log.Int("handlers", handlers), log.Error(err))
	}
}

// tally keeps totals across resets, which clear the engine's own stats.
func (r *result) tally(e bus.Event) error {
	switch e.Type() {
	case aquarium.EventFoodEaten:
		r.foodEaten++
	case aquarium.EventPlayerDamaged:
		r.hits++
	case aquarium.EventPlayerDied:
		r.deaths++
		if d, ok := e.Data().(aquarium.PlayerDied); ok {
			r.longestLife = max(r.longestLife, d.SurvivedFor)
		}
	}
	return nil
}

// runSession drives one engine with the autopilot, restarting after each
// death the way a player pressing R would.
func runSession(ctx context.Context, cfg config, opts aquarium.Options, logger log.Log) (res result, err error) {
	res = result{id: uuid.New(), seed: opts.Seed}
	sessionLog := logger.With(log.String("session", res.id.String()))

	engine, err := injector.InitializeEngine(opts)
	if err != nil {
		return res, err
	}
	sub, err := engine.Events().SubscribeAll(res.tally)
	if err != nil {
		return res, err
	}
	defer func() { _ = sub.Cancel() }()
	engine.Events().AddObserver(deliveryWatch{logger: sessionLog})
	defer func() { res.published = engine.Events().GetMetrics().Published }()

	if cfg.cheat {
		engine.ToggleCheat()
	}
	pilot := autopilot.New()
	dt := 1 / float64(cfg.fps)

	for res.frames < cfg.frames {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		snap := engine.Snapshot()
		if snap.Player.Dead {
			sessionLog.Info("restarting after death", log.Float64("survived_for", snap.Clock))
			engine.Reset()
			if cfg.cheat {
				engine.ToggleCheat()
			}
			continue
		}
		if err := engine.Tick(dt, pilot.Decide(snap)); err != nil {
			return res, err
		}
		res.frames++
		if res.frames%cfg.fps == 0 {
			sessionLog.Debug("hud", log.String("status", strings.Join(engine.Snapshot().HUD(), " | ")))
		}
	}
	return res, nil
}
