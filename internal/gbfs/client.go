// Package gbfs fetches GBFS bike-share feeds over HTTP
package gbfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pedalpoint/pedalpoint/internal/stations"
)

const (
	stationInfoPath   = "station_information.json"
	stationStatusPath = "station_status.json"
	freeBikePath      = "free_bike_status.json"
)

// feedEnvelope is the common GBFS document wrapper
type feedEnvelope struct {
	LastUpdated int64 `json:"last_updated"`
	Data        struct {
		Stations []map[string]any `json:"stations"`
		Bikes    []map[string]any `json:"bikes"`
	} `json:"data"`
}

// Client fetches GBFS documents from one system's feed root
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the feed root, e.g.
// https://gbfs.baywheels.com/gbfs/en
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchAll retrieves station information, station status, and (when
// includeBikes is set) the free-bike feed. The fetches run
// concurrently; every call fetches fresh, nothing is cached between
// calls. A missing free-bike document is not an error since many
// operators publish no free-floating fleet.
func (c *Client) FetchAll(ctx context.Context, includeBikes bool) (stations.Input, error) {
	var in stations.Input

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env, err := c.fetch(ctx, stationInfoPath)
		if err != nil {
			return err
		}
		in.StationInfo = env.Data.Stations
		return nil
	})
	g.Go(func() error {
		env, err := c.fetch(ctx, stationStatusPath)
		if err != nil {
			return err
		}
		in.StationStatus = env.Data.Stations
		return nil
	})
	if includeBikes {
		g.Go(func() error {
			env, err := c.fetch(ctx, freeBikePath)
			if err != nil {
				if isNotFound(err) {
					return nil
				}
				return err
			}
			in.Bikes = env.Data.Bikes
			if in.Bikes == nil {
				in.Bikes = []map[string]any{}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stations.Input{}, err
	}
	return in, nil
}

type statusError struct {
	path string
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.path, e.code)
}

func isNotFound(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == http.StatusNotFound
}

func (c *Client) fetch(ctx context.Context, path string) (*feedEnvelope, error) {
	url := c.baseURL + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{path: path, code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var env feedEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &env, nil
}
