package handlers

import (
	"context"

	"github.com/pedalpoint/pedalpoint/internal/stations"
)

// FeedSource abstracts the GBFS fetch collaborator for testability.
type FeedSource interface {
	FetchAll(ctx context.Context, includeBikes bool) (stations.Input, error)
}
