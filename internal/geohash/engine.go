package geohash

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
)

// IndexSource resolves a calendar date to a Dow Jones value.
type IndexSource interface {
	Fetch(ctx context.Context, date civil.Date) (string, error)
}

// Engine computes geohashes and globalhashes.
type Engine struct {
	source IndexSource
	logger *slog.Logger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine backed by the given index source.
func New(source IndexSource, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Options control a single computation. The zero value asks for today's
// hash with a freshly fetched index value and automatic 30W detection.
type Options struct {
	Date  civil.Date // hash date; zero value means today
	Index string     // index value; empty means fetch one
	Zone  Zone       // 30W override; ZoneAuto derives from longitude
}

// Geohash computes the hash coordinate for the graticule containing
// (lat, lon). The 30W zone shifts which day's index value is fetched; the
// digest itself always embeds the unshifted date, and the integer part of
// the result always equals the truncated input position.
func (e *Engine) Geohash(ctx context.Context, lat, lon float64, opts Options) (Coordinate, error) {
	date := opts.Date
	if date == (civil.Date{}) {
		date = civil.DateOf(e.now())
	}

	zone := ResolveZone(lon, opts.Zone)

	index := opts.Index
	if index == "" {
		value, err := e.source.Fetch(ctx, FetchDate(date, zone))
		if err != nil {
			return Coordinate{}, err
		}
		index = value
	}

	digest := Digest(date, index)
	e.logger.Debug("computed digest",
		"date", date.String(),
		"zone", zone.String(),
		"digest", digest,
	)

	return Decode(GraticuleOf(lat, lon), digest)
}

// Globalhash computes the whole-globe variant: the graticule (0,0) hash
// under forced eastern compliance, rescaled so latitude covers [-90, 90)
// and longitude covers [-180, 180).
func (e *Engine) Globalhash(ctx context.Context, opts Options) (Coordinate, error) {
	opts.Zone = ZoneEast
	c, err := e.Geohash(ctx, 0, 0, opts)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{
		Lat: c.Lat*180 - 90,
		Lon: c.Lon*360 - 180,
	}, nil
}
