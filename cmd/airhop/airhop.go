package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/airhop/airhop/pkg/api"
	"github.com/airhop/airhop/pkg/lookup"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("AIRHOP_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("AIRHOP_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "airhop",
		Description: "Finds direct and one-stop flight interconnections between two airports",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			lookup.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
