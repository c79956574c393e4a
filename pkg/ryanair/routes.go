package ryanair

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/airhop/airhop/pkg/fidf"
)

// Routes downloads the full route network snapshot. There is no pagination.
func (c *Client) Routes(ctx context.Context) ([]fidf.Route, error) {
	requestURL := fmt.Sprintf("%s/routes", c.DataSource.RoutesEndpoint)

	var routes []fidf.Route
	if err := c.fetchJSON(ctx, requestURL, &routes); err != nil {
		log.Error().Err(err).Str("datasource", c.DataSource.Identifier).Msg("Failed to fetch routes")
		return nil, err
	}

	return routes, nil
}
