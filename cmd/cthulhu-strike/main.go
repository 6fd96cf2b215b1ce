package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cthulhu-strike/arena"
	"github.com/lixenwraith/cthulhu-strike/audio"
	"github.com/lixenwraith/cthulhu-strike/config"
	debugsrv "github.com/lixenwraith/cthulhu-strike/debug"
	"github.com/lixenwraith/cthulhu-strike/input"
	"github.com/lixenwraith/cthulhu-strike/parameter"
	"github.com/lixenwraith/cthulhu-strike/render"
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

var (
	configFlag    = flag.String("config", "", "Path to a YAML config file (compiled-in defaults when empty)")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/cthulhu-strike.log")
	debugAddrFlag = flag.String("debug-addr", "", "Serve /status and /snapshot on this address, e.g. 127.0.0.1:6060")
	seedFlag      = flag.Uint64("seed", 0, "Spawner seed, 0 picks one from the clock")
	muteFlag      = flag.Bool("mute", false, "Start with audio muted")
	colorFlag     = flag.String("color", "auto", "Color mode: auto, mono")
	dumpFlag      = flag.Bool("dump-config", false, "Print the effective config as YAML and exit")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cthulhu-strike: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}
	if *dumpFlag {
		return dumpConfig(os.Stdout, cfg)
	}

	keys, err := input.NewKeyTable(cfg.Keys)
	if err != nil {
		return err
	}

	var opts []arena.Option
	if *seedFlag != 0 {
		opts = append(opts, arena.WithSeed(*seedFlag))
	}
	game, err := arena.New(cfg, opts...)
	if err != nil {
		return err
	}
	log.Printf("session %s started", game.SessionID())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	crash := newCrashGuard(screen)
	defer crash.guard()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio.MasterVolume)
	sound.SetMuted(*muteFlag)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
		}
	}

	renderer := render.NewRenderer(screen, render.Options{
		Mono:           *colorFlag == "mono",
		EnemyMaxHealth: cfg.Enemy.Health,
		ConeRange:      cfg.Targeting.Range,
		ConeHalfAngle:  vmath.Radians(cfg.Targeting.HalfAngleDegrees),
	})

	s := newSession(game, screen, renderer, input.NewTracker(keys, parameter.KeyHoldWindow), sound)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 64)
	crash.Go(g, func() error {
		screen.ChannelEvents(events, gctx.Done())
		return nil
	})

	if *debugAddrFlag != "" {
		srv := debugsrv.NewServer(*debugAddrFlag, game.Status(), &s.published, game.SessionID().String())
		crash.Go(g, func() error {
			return srv.Run(gctx)
		})
	}

	crash.Go(g, func() error {
		defer func() {
			cancel()
			// Unblocks the event poller
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return s.loop(gctx, events)
	})

	err = g.Wait()
	final := s.published.Load()
	log.Printf("session %s ended: frame=%d kills=%d dead=%v sounds=%d",
		game.SessionID(), final.Frame, final.Kills, final.PlayerDead, sound.Played())

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadConfig reads path, or returns the compiled-in defaults when path is empty
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// dumpConfig writes cfg as YAML, ready to be edited and passed back with -config
func dumpConfig(w io.Writer, cfg *config.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
