package api

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/airhop/airhop/pkg/cachedschedules"
	"github.com/airhop/airhop/pkg/interconnect"
	"github.com/airhop/airhop/pkg/redis_client"
	"github.com/airhop/airhop/pkg/ryanair"
	"github.com/airhop/airhop/pkg/util"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the interconnections web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					client := ryanair.NewClient()

					var scheduleSource interconnect.ScheduleSource = client

					env := util.GetEnvironmentVariables()
					if env["AIRHOP_REDIS_ADDRESS"] != "" {
						if err := redis_client.Connect(); err != nil {
							return err
						}

						scheduleSource = cachedschedules.NewSource(client, redis_client.Client)
					} else {
						log.Info().Msg("AIRHOP_REDIS_ADDRESS not set - running without the shared schedule cache")
					}

					finder, err := interconnect.NewFinder(client, scheduleSource)
					if err != nil {
						return err
					}

					return SetupServer(c.String("listen"), finder)
				},
			},
		},
	}
}
