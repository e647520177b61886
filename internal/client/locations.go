package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vitalis/turso/pkg/turso"
)

// LocationsClient implements turso.LocationsClient.
type LocationsClient struct {
	client *Client
}

// NewLocationsClient creates a new locations client.
func NewLocationsClient(client *Client) *LocationsClient {
	return &LocationsClient{client: client}
}

// List implements turso.LocationsClient.List. The wire shape is a map of
// code to display name; it is flattened into a slice sorted by code.
func (c *LocationsClient) List(ctx context.Context) ([]turso.Location, error) {
	resp, err := c.client.httpClient.Get(ctx, globalPath("locations"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}

	var byCode map[string]string

	err = json.Unmarshal(turso.UnwrapEnvelope(resp.Body, "locations"), &byCode)
	if err != nil {
		return nil, fmt.Errorf("parsing locations response: %w", err)
	}

	locations := make([]turso.Location, 0, len(byCode))
	for code, name := range byCode {
		locations = append(locations, turso.Location{Code: code, Name: name})
	}

	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Code < locations[j].Code
	})

	return locations, nil
}
