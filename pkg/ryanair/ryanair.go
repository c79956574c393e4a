// Package ryanair contains the HTTP clients for the two collaborator APIs -
// the route network listing and the per month schedule lookup.
package ryanair

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var ErrNotFound = errors.New("resource not found")

const maxFetchRetries = 3

type Client struct {
	DataSource DataSource

	httpClient *http.Client
	newBackOff func() backoff.BackOff
}

func NewClient() *Client {
	return &Client{
		DataSource: GetRegisteredDataSource(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

// fetchJSON downloads and decodes one API resource, retrying transient
// failures (network errors and 5xx responses) with exponential backoff. A
// 404 surfaces as ErrNotFound without retrying.
func (c *Client) fetchJSON(ctx context.Context, requestURL string, into any) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header["user-agent"] = []string{"airhop"}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return backoff.Permanent(ErrNotFound)
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("request to %s failed with status %d", requestURL, resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("request to %s failed with status %d", requestURL, resp.StatusCode))
		}

		jsonBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if err := json.Unmarshal(jsonBytes, into); err != nil {
			return backoff.Permanent(err)
		}

		return nil
	}

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), maxFetchRetries), ctx))
}
