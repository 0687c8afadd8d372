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
	"time"

	"github.com/lixenwraith/gol-term/audio"
	"github.com/lixenwraith/gol-term/core"
	"github.com/lixenwraith/gol-term/life"
	"github.com/lixenwraith/gol-term/render"
	"github.com/lixenwraith/gol-term/session"
	"github.com/lixenwraith/gol-term/terminal"
)

// exitInterrupted follows the shell convention of 128+SIGINT
const exitInterrupted = 130

// shutdownGrace bounds how long an interrupted session gets to restore the terminal
const shutdownGrace = time.Second

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, basic, 256, truecolor")
	seedFlag      = flag.Int64("seed", 0, "Random seed for board generation (0 = time based)")
	soundFlag     = flag.Bool("sound", false, "Enable audio cues")
	volumeFlag    = flag.Int("volume", 50, "Audio volume 0-100")
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/gol-term.log")
)

func main() {
	os.Exit(run())
}

// run wires the program and returns the process exit status
// Kept separate from main so deferred cleanup runs before os.Exit
func run() int {
	// Panic Recovery: Ensure terminal is reset even if the program crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	colorMode, err := terminal.ParseColorMode(*colorModeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	log.Printf("color mode %v, seed %d", colorMode, *seedFlag)

	// Audio is optional, failures leave the game silent
	var sounds session.Sounds
	if *soundFlag {
		cfg := audio.DefaultConfig()
		cfg.Enabled = true
		cfg.SetVolumePercent(*volumeFlag)
		sm := audio.NewSoundManager(cfg)
		if err := sm.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := session.New(session.Options{
		In:        os.Stdin,
		Out:       os.Stdout,
		Grid:      life.DefaultConfig(),
		Palette:   render.DefaultPalette(),
		ColorMode: colorMode,
		Seed:      *seedFlag,
		Input:     terminal.StdinOpener,
		Sleeper:   session.TimerSleeper{},
		Sounds:    sounds,
	})

	done := make(chan error, 1)
	core.Go(func() {
		done <- ctrl.Run(ctx)
	})

	select {
	case err := <-done:
		return exitCode(err)
	case <-ctx.Done():
		// A session in play mode restores the terminal on its way out;
		// a goroutine blocked on a menu prompt never returns
		select {
		case <-done:
		case <-time.After(shutdownGrace):
			terminal.EmergencyReset(os.Stdout)
		}
		log.Printf("interrupted")
		return exitInterrupted
	}
}

// exitCode maps the controller result onto a process status
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		fmt.Fprintf(os.Stderr, "gol-term: %v\n", err)
		log.Printf("fatal: %v", err)
		return 1
	}
}
