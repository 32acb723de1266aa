package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lost.host/meutraa/notebot/internal/classifier"
	"git.lost.host/meutraa/notebot/internal/game"
)

var (
	white  = game.Color{R: 255, G: 255, B: 255}
	yellow = game.Color{R: 255, G: 220, B: 40}
	red    = game.Color{R: 236, G: 30, B: 0}

	lanes = []game.Lane{
		{Point: game.Point{X: 10, Y: 5}, Key: "s"},
		{Point: game.Point{X: 20, Y: 5}, Key: "d"},
		{Point: game.Point{X: 30, Y: 5}, Key: "f"},
	}
)

// frame is the color of every lane for one poll, in lane order.
type frame []game.Color

type fakeSampler struct {
	frames []frame
	calls  int
	err    error
	onCall func(n int)
}

func (f *fakeSampler) Sample(points []game.Point) (map[game.Point]game.Color, error) {
	f.calls++
	if f.onCall != nil {
		f.onCall(f.calls)
	}
	if f.err != nil {
		return nil, f.err
	}
	fr := f.frames[len(f.frames)-1]
	if f.calls <= len(f.frames) {
		fr = f.frames[f.calls-1]
	}
	out := make(map[game.Point]game.Color, len(points))
	for i, p := range points {
		out[p] = fr[i]
	}
	return out, nil
}

type fakeKeyboard struct {
	events []string
}

func (f *fakeKeyboard) Down(key string) error {
	f.events = append(f.events, "down "+key)
	return nil
}

func (f *fakeKeyboard) Up(key string) error {
	f.events = append(f.events, "up "+key)
	return nil
}

type fakeChord struct {
	batches [][]string
}

func (f *fakeChord) Press(keys []string) error {
	f.batches = append(f.batches, append([]string(nil), keys...))
	return nil
}

type harness struct {
	m     *Monitor
	s     *fakeSampler
	kb    *fakeKeyboard
	chord *fakeChord
	clock time.Time
}

func newHarness(frames ...frame) *harness {
	log, _ := test.NewNullLogger()
	h := &harness{
		s:     &fakeSampler{frames: frames},
		kb:    &fakeKeyboard{},
		chord: &fakeChord{},
		clock: time.Unix(1000, 0),
	}
	h.m = New(lanes, h.s, classifier.New(), h.kb, h.chord, log)
	h.m.now = func() time.Time { return h.clock }
	return h
}

func (h *harness) tick(t *testing.T, advance time.Duration) {
	t.Helper()
	h.clock = h.clock.Add(advance)
	require.NoError(t, h.m.Tick())
}

func TestQuickPressCooldown(t *testing.T) {
	h := newHarness(frame{red, white, white})

	h.tick(t, 0)
	h.tick(t, 20*time.Millisecond)
	h.tick(t, 30*time.Millisecond) // exactly the cooldown, still cooling
	assert.Equal(t, [][]string{{"s"}}, h.chord.batches)

	h.tick(t, time.Millisecond)
	assert.Equal(t, [][]string{{"s"}, {"s"}}, h.chord.batches)
	assert.Empty(t, h.kb.events)

	st := h.m.Stats()
	assert.Equal(t, uint64(4), st.Ticks)
	assert.Equal(t, uint64(2), st.Lanes[0].Presses)
}

func TestChordBatch(t *testing.T) {
	h := newHarness(
		frame{red, white, red},
		frame{red, red, red},
	)

	h.tick(t, 0)
	h.tick(t, 10*time.Millisecond)
	// s and f are cooling on the second poll, only d is new
	assert.Equal(t, [][]string{{"s", "f"}, {"d"}}, h.chord.batches)
}

func TestWhiteDoesNothing(t *testing.T) {
	h := newHarness(frame{white, white, white})
	for i := 0; i < 5; i++ {
		h.tick(t, time.Millisecond)
	}
	assert.Empty(t, h.chord.batches)
	assert.Empty(t, h.kb.events)
}

func TestHoldUntilWhite(t *testing.T) {
	h := newHarness(
		frame{yellow, white, white},
		frame{yellow, white, white},
		frame{white, white, white},
		frame{white, white, white},
		frame{yellow, white, white},
	)

	h.tick(t, time.Millisecond)
	h.tick(t, time.Millisecond)
	assert.Equal(t, []string{"down s"}, h.kb.events)

	h.tick(t, time.Millisecond)
	h.tick(t, time.Millisecond)
	assert.Equal(t, []string{"down s", "up s"}, h.kb.events)

	h.tick(t, time.Millisecond)
	assert.Equal(t, []string{"down s", "up s", "down s"}, h.kb.events)
	assert.Empty(t, h.chord.batches)
	assert.Equal(t, uint64(2), h.m.Stats().Lanes[0].Holds)
}

func TestHoldEndsOnOtherColor(t *testing.T) {
	h := newHarness(
		frame{white, yellow, white},
		frame{white, red, white},
		frame{white, red, white},
	)

	h.tick(t, time.Millisecond)
	h.tick(t, time.Millisecond)
	// the release tick does not also quick press
	assert.Equal(t, []string{"down d", "up d"}, h.kb.events)
	assert.Empty(t, h.chord.batches)

	h.tick(t, time.Millisecond)
	assert.Equal(t, [][]string{{"d"}}, h.chord.batches)
}

func TestYellowIgnoresCooldown(t *testing.T) {
	h := newHarness(
		frame{red, white, white},
		frame{yellow, white, white},
	)

	h.tick(t, 0)
	h.tick(t, time.Millisecond)
	assert.Equal(t, [][]string{{"s"}}, h.chord.batches)
	assert.Equal(t, []string{"down s"}, h.kb.events)
}

func TestRunReleasesOnCancel(t *testing.T) {
	h := newHarness(frame{yellow, red, yellow})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h.s.onCall = func(n int) {
		if n == 3 {
			cancel()
		}
	}

	st, err := h.m.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), st.Ticks)
	assert.Equal(t, []string{"down s", "down f", "up s", "up f"}, h.kb.events)

	// nothing left to release
	h.m.ReleaseAll()
	assert.Len(t, h.kb.events, 4)
}

func TestRunSampleError(t *testing.T) {
	h := newHarness(frame{yellow, white, white})
	boom := errors.New("no display")
	h.s.onCall = func(n int) {
		if n == 2 {
			h.s.err = boom
		}
	}

	_, err := h.m.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"down s", "up s"}, h.kb.events)
}

func TestRunPollInterval(t *testing.T) {
	h := newHarness(frame{white, white, white})
	h.m.PollInterval = time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := h.m.Run(ctx)
	require.NoError(t, err)
	assert.Greater(t, h.s.calls, 0)
	assert.Less(t, h.s.calls, 100)
}
