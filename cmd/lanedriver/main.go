package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lanedriver/audio"
	"github.com/lixenwraith/lanedriver/config"
	"github.com/lixenwraith/lanedriver/constants"
	"github.com/lixenwraith/lanedriver/engine"
	"github.com/lixenwraith/lanedriver/game"
	"github.com/lixenwraith/lanedriver/input"
	"github.com/lixenwraith/lanedriver/render"
	"github.com/lixenwraith/lanedriver/storage"
)

const appName = "lanedriver"

var (
	configFlag = flag.String("config", "", "Path to a yaml tuning file")
	muteFlag   = flag.Bool("mute", false, "Start with sound off")
	logFlag    = flag.String("log", "", "Append diagnostics to this file (default: discard)")
)

func main() {
	flag.Parse()

	// Diagnostics go to a file or nowhere; stdout/stderr belong to the
	// terminal UI while the screen is live
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before the stack trace so it
	// lands on a sane screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nLANEDRIVER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	ctx := engine.NewGameContext(cfg, engine.NewMonotonicTimeProvider(), nil)
	ctx.Store = storage.Open(appName)

	// Audio is optional: initialization failure leaves ctx.Audio nil and
	// the game runs silent
	if cfg.SoundEnabled {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("[audio] initialization failed: %v (continuing without audio)", err)
		} else {
			sound.SetMuted(*muteFlag)
			ctx.Audio = sound
			defer sound.Cleanup()
		}
	}

	sim := game.NewSimulation(ctx)
	renderer := render.NewTerminalRenderer(screen, cfg)
	keymap := input.DefaultKeyMap()

	// Input polling blocks on the terminal, so it runs in its own
	// goroutine feeding the main loop's select
	eventChan := make(chan tcell.Event, 64)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\nEVENT POLLER CRASHED: %v\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleAction(sim, keymap.Translate(ev)) {
					return
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				renderer.Resize(w, h)
				screen.Sync()
			}

		case <-frameTicker.C:
			sim.Step()
			renderer.Frame(sim.Snapshot(), sim.World())
		}
	}
}

// handleAction applies one input action to the simulation. It returns
// false when the game should exit.
func handleAction(sim *game.Simulation, action input.Action) bool {
	switch action {
	case input.ActionShiftLeft:
		sim.RequestLaneShift(-1)
	case input.ActionShiftRight:
		sim.RequestLaneShift(+1)
	case input.ActionStart:
		if sim.State().Over {
			sim.Restart()
		} else {
			sim.Start()
		}
	case input.ActionTogglePause:
		sim.TogglePause()
	case input.ActionRestart:
		sim.Restart()
	case input.ActionToggleSound:
		sim.ToggleSound()
	case input.ActionResetTopScore:
		// Only meaningful from the ready and game-over screens
		if !sim.State().Playing {
			sim.ResetTopScore()
		}
	case input.ActionQuit:
		return false
	}
	return true
}
