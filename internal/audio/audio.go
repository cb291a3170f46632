// Package audio renders an emitter waveform through the sound card. The
// emitter's time axis is compressed by a scale factor so carriers outside
// the audible band (the GHz photonic emitter, the mHz aether wave) land
// somewhere a speaker can reproduce; the Sonic Array plays unscaled.
package audio

import (
	"time"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/oscillab/internal/harmonic"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

type Player struct {
	stream *portaudio.Stream

	wave harmonic.Waveform
	t    float64
	dt   float64
	gain float64
}

// NewPlayer prepares playback of one waveform. timeScale maps one second
// of wall clock to timeScale simulation time units.
func NewPlayer(w harmonic.Waveform, timeScale, gain float64) *Player {
	if timeScale <= 0 {
		timeScale = 1
	}
	return &Player{
		wave: w,
		dt:   timeScale / SampleRate,
		gain: gain,
	}
}

func (p *Player) process(out [][]float32) {
	grid := make(harmonic.TimeGrid, len(out[0]))
	for i := range grid {
		grid[i] = p.t + float64(i)*p.dt
	}

	series := p.wave.Evaluate(grid)

	for i, v := range series {
		s := v * p.gain
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}
		out[0][i] = float32(s)
		out[1][i] = float32(s)
	}

	p.t += float64(len(out[0])) * p.dt
}

// Play streams the waveform for the given wall-clock duration, blocking
// until done.
func (p *Player) Play(seconds float64) error {
	if err := p.wave.Validate(); err != nil {
		return err
	}

	if err := portaudio.Initialize(); err != nil {
		return err
	}
	defer portaudio.Terminate()

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, p.process)
	if err != nil {
		return err
	}
	p.stream = stream

	if err := stream.Start(); err != nil {
		stream.Close()
		return err
	}

	time.Sleep(time.Duration(seconds * float64(time.Second)))

	if err := stream.Stop(); err != nil {
		stream.Close()
		return err
	}
	return stream.Close()
}
