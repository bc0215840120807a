package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Geocoder wraps the Maps client for forward geocoding of the free-form
// addresses on hospitals, storage sites and farms.
type Geocoder struct {
	client *maps.Client
}

func New(apiKey string) (*Geocoder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("maps api key not set")
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Geocoder{client: client}, nil
}

// Resolved is the usable subset of a geocoding result.
type Resolved struct {
	FormattedAddress string
	Lat              float64
	Long             float64
}

// Address forward-geocodes the given address and returns the first result.
// No results is an error; callers decide whether coordinates are required.
func (g *Geocoder) Address(ctx context.Context, address string) (*Resolved, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no geocode results for %q", address)
	}

	loc := results[0].Geometry.Location
	return &Resolved{
		FormattedAddress: results[0].FormattedAddress,
		Lat:              loc.Lat,
		Long:             loc.Lng,
	}, nil
}
