package geo

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-map/schema"
)

var log = logrus.WithField("prefix", "geo")

type resolved struct {
	coordinates schema.Coordinates
	ok          bool
}

// Filler completes case records without coordinates through a resolver.
// Results, including misses, are kept for the lifetime of the filler.
type Filler struct {
	resolver CoordinateResolver

	mu    sync.Mutex
	cache map[Region]resolved
}

func NewFiller(resolver CoordinateResolver) *Filler {
	return &Filler{
		resolver: resolver,
		cache:    make(map[Region]resolved),
	}
}

// Fill returns every point, completed with coordinates where the resolver finds them.
// Unresolved points keep no coordinates so they still count towards the totals.
func (f *Filler) Fill(ctx context.Context, points []schema.CasePoint) []schema.CasePoint {
	result := make([]schema.CasePoint, 0, len(points))
	filled, unresolved := 0, 0

	for _, p := range points {
		if p.Coordinates.Valid() {
			result = append(result, p)
			continue
		}

		c, ok := f.lookup(ctx, RegionOf(p))
		if !ok {
			p.Coordinates = schema.NoCoordinates()
			result = append(result, p)
			unresolved++
			continue
		}

		p.Coordinates = c
		result = append(result, p)
		filled++
	}

	if filled > 0 || unresolved > 0 {
		log.WithFields(logrus.Fields{"filled": filled, "unresolved": unresolved}).Info("fill missing coordinates")
	}
	return result
}

func (f *Filler) lookup(ctx context.Context, r Region) (schema.Coordinates, bool) {
	f.mu.Lock()
	entry, hit := f.cache[r]
	f.mu.Unlock()
	if hit {
		return entry.coordinates, entry.ok
	}

	c, err := f.resolver.Coordinates(ctx, r)
	if nil != err {
		log.WithFields(logrus.Fields{"address": r.Address(), "error": err}).Debug("resolve coordinates")
		// a cancelled request is retried on the next load
		if ctx.Err() != nil {
			return schema.NoCoordinates(), false
		}
	}

	entry = resolved{coordinates: c, ok: err == nil}
	f.mu.Lock()
	f.cache[r] = entry
	f.mu.Unlock()

	return entry.coordinates, entry.ok
}
