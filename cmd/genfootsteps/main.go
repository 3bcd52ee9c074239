// Command genfootsteps writes a set of synthesized footstep WAV files for
// the demo arena.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"firstperson/internal/audio"

	"github.com/alecthomas/kong"
	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Out   string `help:"Output directory." default:"assets/audio" type:"path"`
	Count int    `help:"Number of clips to write." default:"4"`
	Seed  uint64 `help:"Noise seed; the same seed writes the same clips." default:"1"`
	Rate  int    `help:"Sample rate in Hz." default:"44100"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	kong.Parse(&CLI,
		kong.Name("genfootsteps"),
		kong.Description("write synthesized footstep clips"),
		kong.UsageOnError())

	if err := generate(CLI.Out, CLI.Count, CLI.Seed, beep.SampleRate(CLI.Rate)); err != nil {
		log.Fatal().Err(err).Msg("genfootsteps failed")
	}
}

func generate(dir string, count int, seed uint64, rate beep.SampleRate) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	for i := 1; i <= count; i++ {
		path := filepath.Join(dir, fmt.Sprintf("footstep_%02d.wav", i))
		if err := audio.WriteFootstepWAV(path, rng, rate); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("wrote clip")
	}
	return nil
}
