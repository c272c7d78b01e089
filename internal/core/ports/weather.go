package ports

import "context"

type WeatherProvider interface {
	// CurrentConditions returns a short human-readable description of the
	// weather at the given coordinates, e.g. "light rain".
	CurrentConditions(ctx context.Context, lat, lon float64) (string, error)
}
