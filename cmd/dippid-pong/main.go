package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dippid-pong/audio"
	"github.com/lixenwraith/dippid-pong/config"
	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/game"
	"github.com/lixenwraith/dippid-pong/render"
	"github.com/lixenwraith/dippid-pong/sensor"
	"github.com/lixenwraith/dippid-pong/status"
	"github.com/lixenwraith/dippid-pong/viz"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/dippid-pong.log")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, 0 picks one from the clock")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(*debugFlag || cfg.Log.File != "", cfg.Log.File, cfg.LogLevel())
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "dippid-pong: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	slog.Info("starting", "seed", seed, "left_port", cfg.Sensor.LeftPort, "right_port", cfg.Sensor.RightPort)

	// The screen is released last, after sources and audio
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Sensor input, a port that cannot be bound leaves that slot to the NPC
	var sources []*sensor.UDPSource
	open := func(port int) sensor.Source {
		src := sensor.NewUDPSource(cfg.Sensor.Host, port)
		if err := src.Start(); err != nil {
			slog.Warn("sensor port unavailable, slot stays autonomous", "port", port, "error", err)
			return nil
		}
		sources = append(sources, src)
		return src
	}
	left := open(cfg.Sensor.LeftPort)
	right := open(cfg.Sensor.RightPort)

	sounds := audio.NewSoundManager(audio.ApplyEnv(cfg.AudioConfig()))
	if err := sounds.Initialize(); err != nil {
		slog.Warn("audio unavailable, continuing silent", "error", err)
	}
	defer sounds.Cleanup()

	reg := status.NewRegistry()
	clock := engine.NewMonotonicTimeProvider()

	match, err := game.New(cfg.GameConfig(seed), game.Deps{
		Left:   left,
		Right:  right,
		Clock:  clock,
		Sounds: sounds,
		Status: reg,
	})
	if err != nil {
		for _, s := range sources {
			s.Close()
		}
		return err
	}
	// Releasing the sources lets the process exit cleanly
	defer func() {
		if err := match.Close(); err != nil {
			slog.Warn("sensor close failed", "error", err)
		}
	}()

	var hub *viz.Hub
	if cfg.Viz.Addr != "" {
		hub = viz.NewHub(cfg.Viz.EveryNTicks, cfg.Viz.Buffer)
		server := viz.NewServer(hub, reg)
		if err := server.Start(cfg.Viz.Addr); err != nil {
			slog.Warn("spectator feed disabled", "error", err)
			hub = nil
		} else {
			defer server.Close()
		}
	}

	// Restore the terminal before reporting a crash from any engine goroutine
	engine.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDIPPID-PONG CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})
	defer func() {
		if r := recover(); r != nil {
			engine.HandleCrash(r)
		}
	}()

	renderer := render.NewTerminalRenderer(screen)

	scheduler := engine.NewScheduler(newMatchTicker(match, hub, reg, sources), clock, cfg.Tick.Interval)
	scheduler.Start()
	defer scheduler.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	engine.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})
	defer close(quit)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	frameTicker := time.NewTicker(cfg.Tick.Interval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return nil
				case ev.Rune() == 'm':
					sounds.ToggleMute()
				}
			case *tcell.EventResize:
				renderer.Resize()
				screen.Sync()
			}

		case <-frameTicker.C:
			renderer.RenderFrame(match.Snapshot(), sounds.Muted())

		case <-scheduler.Done():
			return scheduler.Err()

		case sig := <-signals:
			slog.Info("signal received", "signal", sig.String())
			return nil
		}
	}
}
