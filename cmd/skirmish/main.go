package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skirmish/skirmish/internal/core/config"
	"github.com/skirmish/skirmish/internal/core/director"
	"github.com/skirmish/skirmish/internal/core/entity"
	"github.com/skirmish/skirmish/internal/core/events/bus"
	"github.com/skirmish/skirmish/internal/core/fsm"
	"github.com/skirmish/skirmish/internal/core/observability/log"
	"github.com/skirmish/skirmish/internal/core/strategy"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml/json config file")
	flag.Parse()

	cfg := config.Default()
	var fingerprint uint64
	if *configPath != "" {
		loaded, fp, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error loading config:", err)
			os.Exit(1)
		}
		cfg = *loaded
		fingerprint = fp
	}

	logger := log.New(log.ParseLevel(cfg.Sim.LogLevel))
	if fingerprint != 0 {
		logger.Info("config loaded",
			log.String("path", *configPath),
			log.String("fingerprint", fmt.Sprintf("%016x", fingerprint)),
		)
	}
	events := bus.New()

	// Surface every transition in the log.
	for _, eventType := range []string{fsm.EventStateChanged, strategy.EventBehaviorChanged} {
		if _, err := events.Subscribe(eventType, func(ev bus.Event) {
			logger.Info(ev.Type,
				log.String("entity", ev.Source),
				log.Any("from", ev.Data["from"]),
				log.Any("to", ev.Data["to"]),
			)
		}); err != nil {
			logger.Fatal("subscribe failed", log.Err(err))
		}
	}

	d := director.New(logger)

	player := entity.NewCharacter("hero")
	machine := fsm.NewMachine(player, cfg.Character, logger, events)
	d.AddCharacter(machine)

	for i := 0; i < cfg.Sim.Enemies; i++ {
		enemy := entity.NewEnemy(fmt.Sprintf("enemy-%d", i+1), float64(i)*50.0, 0)
		d.AddEnemy(strategy.NewSelector(enemy, cfg.AI, logger, events))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return run(ctx, d, player, cfg, logger)
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		logger.Error("simulation failed", log.Err(err))
		os.Exit(1)
	}
	logger.Info("simulation finished")
}

// run drives the fixed-step loop: scripted character input, enemy targeting
// and periodic damage so the behavior ladder is visible in the log.
func run(ctx context.Context, d *director.Director, player *entity.Entity, cfg config.Config, logger log.Log) error {
	// The legacy demo's input script, keyed by step.
	script := map[int]int{
		10:  fsm.InputRight,
		20:  fsm.InputRight,
		60:  fsm.InputJump,
		120: fsm.InputAttack,
		180: fsm.InputCast,
		260: fsm.InputNone,
	}

	ticker := time.NewTicker(time.Duration(cfg.Sim.Tick * float64(time.Second)))
	defer ticker.Stop()

	for step := 0; step < cfg.Sim.Steps; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if code, ok := script[step]; ok {
			d.HandleInput(code)
		}

		pos := player.Position()
		d.SetPlayerPosition(pos.X, pos.Y)

		// Chip away at the enemies so Defend, Flee and Berserk all get
		// their turn.
		if step > 0 && step%150 == 0 {
			d.DamageEnemies(25)
			logger.Info("enemies damaged",
				log.Int("step", step),
				log.Int("alive", d.AliveEnemies()),
			)
		}

		d.Update(cfg.Sim.Tick)

		if step%60 == 0 {
			d.LogSnapshot()
		}
	}
	return nil
}
