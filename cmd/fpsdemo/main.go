package main

import (
	"fmt"
	"os"
	"time"

	"firstperson/internal/config"
	"firstperson/internal/game"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug bool `help:"Enable debug logging (one line per footstep)."`

	Run struct {
		Config string `help:"Configuration file." type:"existingfile" short:"c"`
		Seed   uint64 `help:"Seed for footstep selection; 0 picks one from the clock."`
		Audio  string `help:"Override the audio backend (raylib, beep, none)."`
	} `cmd:"" default:"withargs" help:"Walk around the test arena."`

	Config struct{} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func setupLogging(cfg config.LoggingConfig, debug bool) {
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}
}

func runCommand() error {
	cfg := config.Default()
	if CLI.Run.Config != "" {
		loaded, err := config.Load(CLI.Run.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if CLI.Run.Audio != "" {
		cfg.Audio.Backend = CLI.Run.Audio
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	setupLogging(cfg.Logging, CLI.Debug)

	seed := CLI.Run.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Str("config", CLI.Run.Config).Uint64("seed", seed).Msg("starting")

	return game.New(cfg, game.Options{Seed: seed}).Run()
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	ctx := kong.Parse(&CLI,
		kong.Name("fpsdemo"),
		kong.Description("a first-person walking demo"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	switch ctx.Command() {
	case "run":
		if err := runCommand(); err != nil {
			log.Fatal().Err(err).Msg("fpsdemo failed")
		}
	case "config":
		if err := config.Default().Write(os.Stdout); err != nil {
			writeError(err)
		}
	}
}
