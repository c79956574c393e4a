// Package lookup contains one-off CLI queries against the live collaborator
// APIs, mostly useful for poking at the engine without running the server.
package lookup

import (
	"context"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/airhop/airhop/pkg/fidf"
	"github.com/airhop/airhop/pkg/interconnect"
	"github.com/airhop/airhop/pkg/ryanair"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "lookup",
		Usage: "One-off queries against the live APIs",
		Subcommands: []*cli.Command{
			{
				Name:  "interconnections",
				Usage: "find itineraries between two airports",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "departure",
						Usage:    "departure airport code",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "arrival",
						Usage:    "arrival airport code",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "departure-datetime",
						Usage:    "earliest departure (2006-01-02T15:04)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "arrival-datetime",
						Usage:    "latest arrival (2006-01-02T15:04)",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					departureDateTime, err := fidf.ParseLocalDateTime(c.String("departure-datetime"))
					if err != nil {
						return err
					}
					arrivalDateTime, err := fidf.ParseLocalDateTime(c.String("arrival-datetime"))
					if err != nil {
						return err
					}

					client := ryanair.NewClient()

					finder, err := interconnect.NewFinder(client, client)
					if err != nil {
						return err
					}

					itineraries, err := finder.FindItineraries(context.Background(), c.String("departure"), c.String("arrival"), departureDateTime, arrivalDateTime)
					if err != nil {
						return err
					}

					pretty.Println(itineraries)

					log.Info().Int("count", len(itineraries)).Msg("Found itineraries")

					return nil
				},
			},
		},
	}
}
