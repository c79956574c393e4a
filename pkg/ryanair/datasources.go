package ryanair

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/airhop/airhop/pkg/util"
)

const defaultRoutesEndpoint = "https://services-api.ryanair.com/views/locate/3"
const defaultSchedulesEndpoint = "https://services-api.ryanair.com/timtbl/3/schedules"

type DataSource struct {
	Identifier string `yaml:"Identifier"`
	Provider   string `yaml:"Provider"`

	RoutesEndpoint    string `yaml:"RoutesEndpoint"`
	SchedulesEndpoint string `yaml:"SchedulesEndpoint"`
}

// GetRegisteredDataSource resolves the API endpoints to talk to. The built
// in Ryanair definition can be overridden field by field with YAML files
// under data/datasources/ and finally by environment variables.
func GetRegisteredDataSource() DataSource {
	datasource := DataSource{
		Identifier: "ryanair",
		Provider:   "Ryanair",

		RoutesEndpoint:    defaultRoutesEndpoint,
		SchedulesEndpoint: defaultSchedulesEndpoint,
	}

	err := filepath.Walk("data/datasources/",
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !fileInfo.IsDir() {
				extension := filepath.Ext(path)

				if extension != ".yaml" {
					return nil
				}

				log.Debug().Str("path", path).Msg("Loading datasource file")

				datasourceYaml, err := os.ReadFile(path)
				if err != nil {
					return err
				}

				decoder := yaml.NewDecoder(bytes.NewReader(datasourceYaml))

				for {
					var override DataSource
					if decoder.Decode(&override) != nil {
						break
					}

					if err := copier.CopyWithOption(&datasource, override, copier.Option{IgnoreEmpty: true}); err != nil {
						log.Error().Err(err).Str("path", path).Msg("Failed to apply datasource override")
					}
				}
			}

			return nil
		})
	if err != nil {
		log.Debug().Err(err).Msg("No datasource overrides loaded")
	}

	env := util.GetEnvironmentVariables()

	if env["AIRHOP_ROUTES_API"] != "" {
		datasource.RoutesEndpoint = env["AIRHOP_ROUTES_API"]
	}
	if env["AIRHOP_SCHEDULES_API"] != "" {
		datasource.SchedulesEndpoint = env["AIRHOP_SCHEDULES_API"]
	}

	return datasource
}
