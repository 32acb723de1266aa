// Package monitor polls the lanes and turns note colors into key actions.
//
// Every lane is a small state machine. An idle lane that turns yellow is
// held down until it stops being yellow. An idle lane showing any other
// non-white color gets a quick press, at most once per cooldown. All quick
// presses found in one poll are sent together as a chord.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"git.lost.host/meutraa/notebot/internal/classifier"
	"git.lost.host/meutraa/notebot/internal/game"
	"git.lost.host/meutraa/notebot/internal/input"
	"git.lost.host/meutraa/notebot/internal/sampler"
)

const DefaultCooldown = 50 * time.Millisecond

// Chorder presses a batch of keys at once.
type Chorder interface {
	Press(keys []string) error
}

type laneState struct {
	lastPress time.Time
	holding   bool
}

type Monitor struct {
	Cooldown     time.Duration
	PollInterval time.Duration // zero polls as fast as possible

	lanes      []game.Lane
	points     []game.Point
	sampler    sampler.Sampler
	classifier classifier.Classifier
	keyboard   input.Keyboard
	chord      Chorder
	log        logrus.FieldLogger

	now    func() time.Time
	states map[game.Point]*laneState
	stats  Stats
}

func New(
	lanes []game.Lane,
	s sampler.Sampler,
	c classifier.Classifier,
	kb input.Keyboard,
	chord Chorder,
	log logrus.FieldLogger,
) *Monitor {
	m := &Monitor{
		Cooldown:   DefaultCooldown,
		lanes:      lanes,
		points:     game.Points(lanes),
		sampler:    s,
		classifier: c,
		keyboard:   kb,
		chord:      chord,
		log:        log,
		now:        time.Now,
		states:     make(map[game.Point]*laneState, len(lanes)),
		stats:      newStats(lanes),
	}
	for _, l := range lanes {
		m.states[l.Point] = &laneState{}
	}
	return m
}

// Run polls until ctx is cancelled or an error occurs. Keys still held
// are released before it returns.
func (m *Monitor) Run(ctx context.Context) (Stats, error) {
	defer m.ReleaseAll()

	for {
		select {
		case <-ctx.Done():
			return m.stats, nil
		default:
		}

		if err := m.Tick(); err != nil {
			return m.stats, err
		}

		if m.PollInterval > 0 {
			select {
			case <-ctx.Done():
				return m.stats, nil
			case <-time.After(m.PollInterval):
			}
		}
	}
}

// Tick samples every lane once and acts on what it sees.
func (m *Monitor) Tick() error {
	colors, err := m.sampler.Sample(m.points)
	if err != nil {
		return fmt.Errorf("unable to sample lanes: %w", err)
	}
	now := m.now()
	m.stats.Ticks++

	var quick []string
	var pressed []int
	for i, lane := range m.lanes {
		state := m.states[lane.Point]
		color := colors[lane.Point]
		category := m.classifier.Classify(color)

		switch {
		case state.holding && category != game.Yellow:
			if err := m.keyboard.Up(lane.Key); err != nil {
				return fmt.Errorf("unable to release %q: %w", lane.Key, err)
			}
			state.holding = false
			m.laneLog(lane, color).Infof("%s note ended, releasing", category)

		case state.holding:
			// still yellow, keep holding

		case category == game.Yellow:
			if err := m.keyboard.Down(lane.Key); err != nil {
				return fmt.Errorf("unable to hold %q: %w", lane.Key, err)
			}
			state.holding = true
			m.stats.Lanes[i].Holds++
			m.laneLog(lane, color).Info("yellow note detected, holding")

		case category == game.Other:
			if now.Sub(state.lastPress) > m.Cooldown {
				quick = append(quick, lane.Key)
				pressed = append(pressed, i)
				state.lastPress = now
			}
		}
	}

	if len(quick) == 0 {
		return nil
	}
	m.log.WithField("keys", quick).Debug("quick press")
	if err := m.chord.Press(quick); err != nil {
		return fmt.Errorf("unable to press %v: %w", quick, err)
	}
	for _, i := range pressed {
		m.stats.Lanes[i].Presses++
	}
	return nil
}

func (m *Monitor) laneLog(lane game.Lane, color game.Color) logrus.FieldLogger {
	return m.log.WithFields(logrus.Fields{
		"point": lane.Point,
		"key":   lane.Key,
		"color": color,
	})
}

// ReleaseAll lets go of every held key.
func (m *Monitor) ReleaseAll() {
	for _, lane := range m.lanes {
		state := m.states[lane.Point]
		if !state.holding {
			continue
		}
		if err := m.keyboard.Up(lane.Key); err != nil {
			m.log.WithError(err).WithField("key", lane.Key).Error("unable to release key")
			continue
		}
		state.holding = false
		m.log.WithField("key", lane.Key).Info("released")
	}
}

func (m *Monitor) Stats() Stats {
	return m.stats
}
