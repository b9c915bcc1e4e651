package geo

import (
	"context"
	"errors"

	"github.com/kelvins/geocoder"
)

var errNotConfigured = errors.New("geocoder api key not configured")

// Reverse resolves coordinates to a display name via the Google geocoding
// API. Without an API key every lookup fails and callers fall back to a
// placeholder name.
type Reverse struct {
	configured bool
}

func NewReverse(apiKey string) *Reverse {
	if apiKey != "" {
		geocoder.ApiKey = apiKey
	}
	return &Reverse{configured: apiKey != ""}
}

// ResolveName implements climate.NameResolver. The underlying library does
// not accept a context; the ctx parameter keeps the interface uniform.
func (r *Reverse) ResolveName(_ context.Context, lat, lon float64) (string, error) {
	if !r.configured {
		return "", errNotConfigured
	}

	addresses, err := geocoder.GeocodingReverse(geocoder.Location{
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		return "", err
	}
	if len(addresses) == 0 {
		return "", errors.New("no address found")
	}

	return addresses[0].FormatAddress(), nil
}
