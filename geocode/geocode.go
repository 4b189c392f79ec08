// Package geocode resolves report coordinates to a human-readable address via
// the Google Maps API. The client is constructed once in main and passed in,
// so callers without MAPS_CREDENTIALS simply run without addresses.
package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// NewClient builds a Google Maps client, or returns nil when no API key is
// configured.
func NewClient(apiKey string) (*maps.Client, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	return client, nil
}

// ReverseGeocode returns the formatted address of the first geocoding result
// for a coordinate.
func ReverseGeocode(ctx context.Context, client *maps.Client, lat, lng float64) (string, error) {
	req := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	}

	results, err := client.ReverseGeocode(ctx, req)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no geocoding results for (%f, %f)", lat, lng)
	}

	return results[0].FormattedAddress, nil
}
