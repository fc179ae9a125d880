package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/snowtree/audio"
	"github.com/lixenwraith/snowtree/config"
	"github.com/lixenwraith/snowtree/constants"
	"github.com/lixenwraith/snowtree/scene"
	"github.com/lixenwraith/snowtree/terminal"
)

func main() {
	// Panic Recovery: put the terminal back before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNOWTREE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: seed=%d backend=%s audio=%t volume=%.2f", cfg.Seed, cfg.Backend, cfg.Audio, cfg.Volume)

	if !terminal.IsTerminal(int(os.Stdout.Fd())) {
		log.Printf("stdout is not a terminal; drawing anyway")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	surface, err := openSurface(cfg, stop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	opts := scene.Options{Seed: cfg.Seed}
	if cfg.Audio {
		chime := audio.NewChime(cfg.Volume)
		if err := chime.Start(); err != nil {
			log.Printf("audio: %v (continuing without sound)", err)
		} else {
			defer chime.Stop()
			opts.Bell = chime
		}
	}

	runErr := scene.New(surface, opts).Run(ctx)
	surface.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		return 1
	}

	fmt.Printf("\n%s\n", constants.FarewellText)
	return 0
}

// openSurface builds the configured backend; interrupt cancels the run when the
// backend swallows Ctrl-C as input
func openSurface(cfg *config.Config, interrupt func()) (terminal.Surface, error) {
	if cfg.Backend == config.BackendTcell {
		return terminal.OpenTcellSurface(interrupt)
	}
	return terminal.NewStdoutSurface(cfg.ResolveColorMode()), nil
}
