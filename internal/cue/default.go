package cue

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.3

	tickFreq = 880.0
	tickLen  = 60 * time.Millisecond
	goFreq   = 1320.0
	goLen    = 250 * time.Millisecond
)

// DefaultCue beeps once per second and plays a higher tone, or the
// configured file, at zero.
type DefaultCue struct {
	file string
	log  logrus.FieldLogger
}

func New(file string, log logrus.FieldLogger) (*DefaultCue, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("unable to open speaker: %w", err)
	}
	return &DefaultCue{file: file, log: log}, nil
}

func (c *DefaultCue) Tick() {
	speaker.Play(Tone(sampleRate, tickFreq, tickLen))
}

func (c *DefaultCue) Go() {
	s := Tone(sampleRate, goFreq, goLen)
	if c.file != "" {
		fs, closer, err := open(c.file)
		if err != nil {
			c.log.WithError(err).Warn("unable to play cue, using tone")
		} else {
			defer closer.Close()
			s = fs
		}
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() { close(done) })))
	<-done
}

func open(file string) (beep.Streamer, beep.StreamSeekCloser, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, nil, errors.New("cue must be an .mp3 or .ogg file")
	}
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	if format.SampleRate == sampleRate {
		return streamer, streamer, nil
	}
	return beep.Resample(4, format.SampleRate, sampleRate, streamer), streamer, nil
}

// Tone is a sine wave of freq Hz lasting d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	step := 2 * math.Pi * freq / float64(sr)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			v := volume * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return i, true
	})
}
