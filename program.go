package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"git.lost.host/meutraa/notebot/internal/classifier"
	"git.lost.host/meutraa/notebot/internal/config"
	"git.lost.host/meutraa/notebot/internal/cue"
	"git.lost.host/meutraa/notebot/internal/game"
	"git.lost.host/meutraa/notebot/internal/input"
	"git.lost.host/meutraa/notebot/internal/monitor"
	"git.lost.host/meutraa/notebot/internal/render"
	"git.lost.host/meutraa/notebot/internal/sampler"
	"git.lost.host/meutraa/notebot/internal/theme"
)

type Program struct {
	Config *config.Config
	Log    *logrus.Logger

	Renderer   render.Renderer
	Sampler    sampler.Sampler
	Classifier classifier.Classifier
	Keyboard   input.Keyboard
	Tapper     input.Tapper
	Cue        cue.Cue
}

// Init fills every component that has not been set with its default
// platform implementation.
func (p *Program) Init() error {
	if p.Renderer == nil {
		plain := !term.IsTerminal(int(os.Stdout.Fd()))
		p.Renderer = render.New(os.Stdout, &theme.DefaultTheme{Plain: plain})
	}
	if p.Sampler == nil {
		p.Sampler = sampler.New()
	}
	if p.Classifier == nil {
		p.Classifier = &classifier.DefaultClassifier{
			WhiteTolerance:  p.Config.WhiteTolerance,
			YellowTolerance: p.Config.YellowTolerance,
		}
	}
	if p.Keyboard == nil {
		p.Keyboard = input.NewKeyboard()
	}
	if p.Tapper == nil {
		p.Tapper = input.RobotTapper{}
	}
	if p.Cue == nil {
		p.Cue = cue.Silent{}
		if !p.Config.NoSound {
			c, err := cue.New(p.Config.Cue, p.Log)
			if nil != err {
				p.Log.WithError(err).Warn("countdown will be silent")
			} else {
				p.Cue = c
			}
		}
	}
	return nil
}

// Choose runs one menu entry.
func (p *Program) Choose(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		p.Renderer.Line("Testing pixel colors in %v...", p.Config.TestDelay)
		if err := p.countdown(ctx, p.Config.TestDelay); nil != err {
			return err
		}
		return p.TestColors()
	case "2":
		p.Renderer.Line("Starting auto-play in %v... Make sure game is focused!", p.Config.StartDelay)
		if err := p.countdown(ctx, p.Config.StartDelay); nil != err {
			return err
		}
		return p.Monitor(ctx)
	case "3":
		p.Renderer.Line("Manual key test in %v...", p.Config.KeyTestDelay)
		if err := p.countdown(ctx, p.Config.KeyTestDelay); nil != err {
			return err
		}
		return p.KeyTest()
	}
	p.Renderer.Line("Invalid choice!")
	return p.Renderer.Flush()
}

func (p *Program) countdown(ctx context.Context, d time.Duration) error {
	if err := p.Renderer.Flush(); nil != err {
		return err
	}
	for remaining := d; remaining > 0; remaining -= time.Second {
		step := time.Second
		if remaining < step {
			step = remaining
		}
		p.Cue.Tick()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(step):
		}
	}
	if d > 0 {
		p.Cue.Go()
	}
	return nil
}

// TestColors prints what every lane currently shows.
func (p *Program) TestColors() error {
	colors, err := p.Sampler.Sample(game.Points(p.Config.Lanes))
	if nil != err {
		return err
	}
	p.Renderer.Line("Current pixel colors:")
	for _, lane := range p.Config.Lanes {
		c := colors[lane.Point]
		p.Renderer.Lane(lane, c, p.Classifier.Classify(c))
	}
	p.Renderer.Line("")
	return p.Renderer.Flush()
}

// Monitor plays until ctx is cancelled.
func (p *Program) Monitor(ctx context.Context) error {
	chord := input.NewChord(p.Keyboard, p.Tapper, p.Config.Dwell, p.Log)
	m := monitor.New(p.Config.Lanes, p.Sampler, p.Classifier, p.Keyboard, chord, p.Log)
	m.Cooldown = p.Config.Cooldown
	m.PollInterval = p.Config.PollInterval

	p.Renderer.Line("Starting rhythm game monitor...")
	p.Renderer.Line("Yellow notes = Hold until no longer yellow, Other notes = Quick press")
	p.Renderer.Line("Press Ctrl+C to stop")
	if err := p.Renderer.Flush(); nil != err {
		return err
	}

	started := time.Now()
	stats, err := m.Run(ctx)
	if nil != err {
		return err
	}

	elapsed := time.Since(started)
	p.Renderer.Line("")
	p.Renderer.Line("Monitoring stopped by user")
	p.Renderer.Line("%d polls in %v (%.0f/s)", stats.Ticks, elapsed.Round(time.Millisecond), float64(stats.Ticks)/elapsed.Seconds())
	for _, ls := range stats.Lanes {
		p.Renderer.Line("  '%s' %v  presses: %6d  holds: %6d", ls.Lane.Key, ls.Lane.Point, ls.Presses, ls.Holds)
	}
	return p.Renderer.Flush()
}

func (p *Program) KeyTest() error {
	if err := p.Tapper.Tap(p.Config.TestKey); nil != err {
		return fmt.Errorf("unable to tap %q: %w", p.Config.TestKey, err)
	}
	p.Renderer.Line("Done testing!")
	return p.Renderer.Flush()
}
