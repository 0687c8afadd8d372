// @focus: #session { controller }
package session

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lixenwraith/gol-term/life"
	"github.com/lixenwraith/gol-term/render"
	"github.com/lixenwraith/gol-term/terminal"
)

// Play loop keys
const (
	KeyQuit  = 'q'
	KeyReset = 'r'
)

// farewellPause keeps the goodbye message on screen before the final clear
const farewellPause = 400 * time.Millisecond

// Sounds receives audible cues, implementations must not block
type Sounds interface {
	PlayReset()
	PlayInvalid()
	PlayFarewell()
}

type nopSounds struct{}

func (nopSounds) PlayReset()    {}
func (nopSounds) PlayInvalid()  {}
func (nopSounds) PlayFarewell() {}

// Options wires the controller to its collaborators
// Zero fields fall back to defaults: 30x30 grid, default palette, real timer, silent
type Options struct {
	In  io.Reader
	Out io.Writer

	Grid      life.Config
	Palette   render.Palette
	ColorMode terminal.ColorMode
	// Seed 0 picks a time-based seed
	Seed int64

	// Input acquires the polling device for each play session
	Input   terminal.Opener
	Sleeper Sleeper
	Sounds  Sounds
}

// Controller runs the menu, about screen and play loop on the calling goroutine
type Controller struct {
	out      io.Writer
	prompter *Prompter
	renderer *render.Renderer
	seeder   *life.Seeder
	grid     life.Config
	input    terminal.Opener
	sleeper  Sleeper
	sounds   Sounds

	state    State
	settings Settings
}

// New creates a controller in the menu state
func New(opts Options) *Controller {
	if opts.Grid.Width == 0 || opts.Grid.Height == 0 {
		opts.Grid = life.DefaultConfig()
	}
	if opts.Sleeper == nil {
		opts.Sleeper = TimerSleeper{}
	}
	if opts.Sounds == nil {
		opts.Sounds = nopSounds{}
	}
	if opts.Input == nil {
		opts.Input = terminal.StdinOpener
	}

	c := &Controller{
		out:      opts.Out,
		prompter: NewPrompter(opts.In, opts.Out),
		renderer: render.New(opts.Out, opts.Palette, opts.ColorMode),
		seeder:   life.NewSeeder(opts.Seed, opts.Grid.Density),
		grid:     opts.Grid,
		input:    opts.Input,
		sleeper:  opts.Sleeper,
		sounds:   opts.Sounds,
		state:    StateMenu,
	}
	c.prompter.OnInvalid(func(error) { c.sounds.PlayInvalid() })
	return c
}

// State returns the current state
func (c *Controller) State() State { return c.state }

// Run cycles through states until the user exits (nil), input ends (io.EOF) or ctx is done
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch c.state {
		case StateMenu:
			if err := c.menu(); err != nil {
				return err
			}

		case StateAbout:
			writeAbout(c.out)
			if err := c.prompter.WaitKey(); err != nil {
				return err
			}
			c.transition(StateMenu)

		case StatePlaying:
			err := c.Play(ctx, c.settings)
			c.transition(StateMenu)
			if err != nil {
				return err
			}

		case StateExit:
			c.farewell(ctx)
			return nil

		default:
			return fmt.Errorf("invalid state %d", c.state)
		}
	}
}

// menu reads one validated choice and, for Start, the speed level
func (c *Controller) menu() error {
	writeMenu(c.out)
	choice, err := c.prompter.ReadInRange(menuPrompt, choiceStart, choiceExit)
	if err != nil {
		return err
	}

	switch choice {
	case choiceStart:
		speed, err := c.prompter.ReadInRange(speedPrompt, MinSpeed, MaxSpeed)
		if err != nil {
			return err
		}
		// Prompt range matches the speed table
		c.settings, _ = NewSettings(speed)
		log.Printf("session: speed %d, interval %v", c.settings.Speed, c.settings.Interval)
		c.transition(StatePlaying)
	case choiceAbout:
		c.transition(StateAbout)
	case choiceExit:
		c.transition(StateExit)
	}
	return nil
}

// Play runs one game session until 'q', an I/O error or ctx cancellation
// The input device is released on every return path
func (c *Controller) Play(ctx context.Context, settings Settings) error {
	dev, err := c.input()
	if err != nil {
		return fmt.Errorf("enter play mode: %w", err)
	}
	defer func() {
		if err := dev.Close(); err != nil {
			log.Printf("session: restore input mode: %v", err)
		}
	}()

	c.renderer.SetCursorVisible(false)
	defer func() {
		c.renderer.Clear()
		c.renderer.SetCursorVisible(true)
	}()

	engine := life.NewEngine(c.grid)
	engine.Reset(c.seeder)
	generation := 0
	frames := 0
	started := time.Now()

	for {
		if err := c.renderer.Render(engine.Grid(), generation); err != nil {
			return fmt.Errorf("render generation %d: %w", generation, err)
		}
		generation++
		frames++
		engine.Advance()

		if err := c.sleeper.Sleep(ctx, settings.Interval); err != nil {
			log.Printf("session: interrupted after %d frames", frames)
			return err
		}

		key, ok := dev.Poll()
		if !ok {
			continue
		}

		switch key {
		case KeyQuit:
			log.Printf("session: quit after %d frames in %v", frames, time.Since(started).Round(time.Millisecond))
			return nil
		case KeyReset:
			engine.Reset(c.seeder)
			generation = 0
			c.renderer.Clear()
			c.sounds.PlayReset()
			log.Printf("session: reset at frame %d", frames)
		}
	}
}

// farewell prints the goodbye, lets it linger briefly, then clears the screen
func (c *Controller) farewell(ctx context.Context) {
	writeFarewell(c.out)
	c.sounds.PlayFarewell()
	c.sleeper.Sleep(ctx, farewellPause)
	c.renderer.Clear()
}

func (c *Controller) transition(next State) {
	log.Printf("session: %v -> %v", c.state, next)
	c.state = next
}
