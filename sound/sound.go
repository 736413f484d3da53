// Package sound plays short synthesized tones for game events.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone is a single sine note.
type tone struct {
	freq     float64
	duration time.Duration
}

var (
	eatTones   = []tone{{freq: 660, duration: 40 * time.Millisecond}, {freq: 880, duration: 60 * time.Millisecond}}
	crashTones = []tone{{freq: 220, duration: 120 * time.Millisecond}, {freq: 110, duration: 220 * time.Millisecond}}
)

// Speaker plays cues on the default audio device.
type Speaker struct {
	eat   *beep.Buffer
	crash *beep.Buffer
}

// NewSpeaker opens the audio device and renders the cue buffers up front.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	eat, err := render(eatTones)
	if err != nil {
		return nil, err
	}
	crash, err := render(crashTones)
	if err != nil {
		return nil, err
	}
	return &Speaker{eat: eat, crash: crash}, nil
}

func render(tones []tone) (*beep.Buffer, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, fmt.Errorf("sine tone %.0fHz: %w", t.freq, err)
		}
		buf.Append(beep.Take(sampleRate.N(t.duration), sine))
	}
	return buf, nil
}

func (s *Speaker) Eat() {
	speaker.Play(s.eat.Streamer(0, s.eat.Len()))
}

func (s *Speaker) Crash() {
	speaker.Play(s.crash.Streamer(0, s.crash.Len()))
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}

// Silent satisfies the same interface without making a sound.
type Silent struct{}

func (Silent) Eat()   {}
func (Silent) Crash() {}
func (Silent) Close() {}
