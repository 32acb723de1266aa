package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"git.lost.host/meutraa/notebot/internal/classifier"
	"git.lost.host/meutraa/notebot/internal/game"
	"git.lost.host/meutraa/notebot/internal/input"
	"git.lost.host/meutraa/notebot/internal/monitor"
)

const Version = "0.3.0"

var ErrBadLane = errors.New("lane must look like x,y:key")

type Config struct {
	Lanes        []game.Lane
	Cooldown     time.Duration
	Dwell        time.Duration
	PollInterval time.Duration

	WhiteTolerance  int
	YellowTolerance int

	TestDelay    time.Duration // before reading the lane colors
	StartDelay   time.Duration // before monitoring starts
	KeyTestDelay time.Duration // before the manual key test
	TestKey      string

	NoSound  bool
	Cue      string // optional .mp3 or .ogg played when a countdown ends
	LogLevel string
}

// Parse reads the command line. args excludes the program name.
func Parse(args []string) (*Config, error) {
	var (
		c     Config
		lanes []string
	)

	app := kingpin.New("notebot", "Plays rhythm game notes by watching the lane colors.")
	app.Version(Version)
	app.Flag("lane", "Lane to watch as x,y:key, repeat for every lane").Short('l').Default(FormatLanes(game.DefaultLanes)...).StringsVar(&lanes)
	app.Flag("cooldown", "Minimum time between quick presses on a lane").Default(monitor.DefaultCooldown.String()).Short('c').DurationVar(&c.Cooldown)
	app.Flag("dwell", "How long chord keys stay down").Default(input.DefaultDwell.String()).Short('d').DurationVar(&c.Dwell)
	app.Flag("poll-interval", "Pause between polls, 0 polls flat out").Default("0s").Short('p').DurationVar(&c.PollInterval)
	app.Flag("white-tolerance", "Distance from 255 still counted as white").Default(strconv.Itoa(classifier.DefaultWhiteTolerance)).IntVar(&c.WhiteTolerance)
	app.Flag("yellow-tolerance", "Slack for faded yellow hold notes").Default(strconv.Itoa(classifier.DefaultYellowTolerance)).IntVar(&c.YellowTolerance)
	app.Flag("test-delay", "Countdown before testing pixel colors").Default("3s").DurationVar(&c.TestDelay)
	app.Flag("start-delay", "Countdown before auto-play starts").Default("5s").DurationVar(&c.StartDelay)
	app.Flag("key-test-delay", "Countdown before the manual key test").Default("2s").DurationVar(&c.KeyTestDelay)
	app.Flag("test-key", "Key tapped by the manual key test").Default("c").StringVar(&c.TestKey)
	app.Flag("no-sound", "Silence the countdown").BoolVar(&c.NoSound)
	app.Flag("cue", "Audio file played when a countdown ends").ExistingFileVar(&c.Cue)
	app.Flag("log-level", "Log level").Default("info").EnumVar(&c.LogLevel, "debug", "info", "warn", "error")

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}

	var err error
	if c.Lanes, err = ParseLanes(lanes); err != nil {
		return nil, err
	}
	if err := validTolerance("white-tolerance", c.WhiteTolerance); err != nil {
		return nil, err
	}
	if err := validTolerance("yellow-tolerance", c.YellowTolerance); err != nil {
		return nil, err
	}
	if _, err := input.VirtualKey(c.TestKey); err != nil {
		return nil, fmt.Errorf("test-key: %w", err)
	}
	return &c, nil
}

func validTolerance(name string, v int) error {
	if v < 0 || v > 255 {
		return fmt.Errorf("%s must be within 0-255, got %d", name, v)
	}
	return nil
}

// ParseLanes parses lanes written as "x,y:key". Two lanes may not share a
// coordinate.
func ParseLanes(specs []string) ([]game.Lane, error) {
	if len(specs) == 0 {
		return nil, errors.New("at least one lane is required")
	}
	lanes := make([]game.Lane, 0, len(specs))
	seen := make(map[game.Point]bool, len(specs))
	for _, s := range specs {
		l, err := parseLane(s)
		if err != nil {
			return nil, err
		}
		if seen[l.Point] {
			return nil, fmt.Errorf("lane %q: coordinate %v used twice", s, l.Point)
		}
		seen[l.Point] = true
		lanes = append(lanes, l)
	}
	return lanes, nil
}

func parseLane(s string) (game.Lane, error) {
	coords, key, ok := strings.Cut(s, ":")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return game.Lane{}, fmt.Errorf("%w: %q", ErrBadLane, s)
	}
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return game.Lane{}, fmt.Errorf("%w: %q", ErrBadLane, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return game.Lane{}, fmt.Errorf("%w: %q: %v", ErrBadLane, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return game.Lane{}, fmt.Errorf("%w: %q: %v", ErrBadLane, s, err)
	}
	if _, err := input.VirtualKey(key); err != nil {
		return game.Lane{}, fmt.Errorf("lane %q: %w", s, err)
	}
	return game.Lane{Point: game.Point{X: x, Y: y}, Key: key}, nil
}

func FormatLanes(lanes []game.Lane) []string {
	out := make([]string, len(lanes))
	for i, l := range lanes {
		out[i] = fmt.Sprintf("%d,%d:%s", l.Point.X, l.Point.Y, l.Key)
	}
	return out
}
