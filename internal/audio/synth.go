package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

const footstepDuration = 140 * time.Millisecond

// sampleStreamer plays a fixed sample slice once.
type sampleStreamer struct {
	samples [][2]float64
	pos     int
}

func (s *sampleStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n = copy(samples, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sampleStreamer) Err() error {
	return nil
}

// SynthesizeFootstep renders one footstep: a low thump under a burst of
// low-passed noise, both with a fast exponential decay. rng varies pitch,
// tone and stereo balance so a set of clips sounds like different steps.
func SynthesizeFootstep(rng *rand.Rand, sampleRate beep.SampleRate) [][2]float64 {
	n := sampleRate.N(footstepDuration)
	out := make([][2]float64, n)

	thumpHz := 70 + rng.Float64()*50
	cutoff := 0.08 + rng.Float64()*0.1 // one-pole low-pass coefficient
	decay := 30 + rng.Float64()*15
	pan := (rng.Float64() - 0.5) * 0.3

	var lp float64
	for i := range out {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-decay * t)
		lp += cutoff * ((rng.Float64()*2 - 1) - lp)
		v := 0.7 * env * (0.6*math.Sin(2*math.Pi*thumpHz*t) + 0.5*lp)
		out[i] = [2]float64{v * (1 - pan), v * (1 + pan)}
	}
	return out
}

// WriteFootstepWAV synthesizes one footstep and writes it as 16-bit stereo WAV.
func WriteFootstepWAV(path string, rng *rand.Rand, sampleRate beep.SampleRate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	s := &sampleStreamer{samples: SynthesizeFootstep(rng, sampleRate)}
	if err := wav.Encode(f, s, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
