package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/covid-map/schema"
)

const resolveTimeout = 5 * time.Second

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
)

// Region names the administrative area of a case record
type Region struct {
	Country  string
	Province string
	County   string
}

func RegionOf(p schema.CasePoint) Region {
	return Region{Country: p.Country, Province: p.Province, County: p.County}
}

// Address joins the non-empty parts from the smallest to the largest area
func (r Region) Address() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{r.County, r.Province, r.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// CoordinateResolver - interface for resolving the position of a region
type CoordinateResolver interface {
	Coordinates(context.Context, Region) (schema.Coordinates, error)
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

type GeocodingCoordinateResolver struct {
	client *maps.Client
}

func NewGeocodingCoordinateResolver(client *maps.Client) *GeocodingCoordinateResolver {
	return &GeocodingCoordinateResolver{
		client: client,
	}
}

func (g *GeocodingCoordinateResolver) Coordinates(ctx context.Context, r Region) (schema.Coordinates, error) {
	address := r.Address()
	if address == "" {
		return schema.NoCoordinates(), ErrNoGeoInfoFound
	}

	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Language: "en",
	})
	if nil != err {
		return schema.NoCoordinates(), err
	}

	if len(geos) == 0 {
		return schema.NoCoordinates(), ErrNoGeoInfoFound
	}

	c := schema.Coordinates{
		Latitude:  geos[0].Geometry.Location.Lat,
		Longitude: geos[0].Geometry.Location.Lng,
	}
	if !c.Valid() {
		return schema.NoCoordinates(), ErrNoGeoInfoFound
	}
	return c, nil
}

// MongodbCoordinateResolver looks for an earlier county record of the same region with a location
type MongodbCoordinateResolver struct {
	client   *mongo.Client
	database string
}

func NewMongodbCoordinateResolver(client *mongo.Client, database string) *MongodbCoordinateResolver {
	return &MongodbCoordinateResolver{
		client:   client,
		database: database,
	}
}

func (g *MongodbCoordinateResolver) Coordinates(ctx context.Context, r Region) (schema.Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	var record schema.CountyCase
	if err := g.client.Database(g.database).Collection(schema.CountyCaseCollection).FindOne(ctx, bson.M{
		"country":                r.Country,
		"state":                  r.Province,
		"county":                 r.County,
		"location.coordinates.1": bson.M{"$exists": true},
	}, options.FindOne().SetSort(bson.M{"report_ts": -1}).SetProjection(bson.M{
		"location": 1,
	})).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return schema.NoCoordinates(), ErrNoGeoInfoFound
		}
		return schema.NoCoordinates(), err
	}

	c := record.CasePoint().Coordinates
	if !c.Valid() {
		return schema.NoCoordinates(), ErrNoGeoInfoFound
	}
	return c, nil
}

type MultipleCoordinateResolver struct {
	resolvers []CoordinateResolver
}

func NewMultipleCoordinateResolver(resolvers ...CoordinateResolver) *MultipleCoordinateResolver {
	return &MultipleCoordinateResolver{
		resolvers: resolvers,
	}
}

func (m *MultipleCoordinateResolver) Coordinates(ctx context.Context, r Region) (schema.Coordinates, error) {
	var errors []error
	for _, resolver := range m.resolvers {
		result, err := resolver.Coordinates(ctx, r)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return schema.NoCoordinates(), NewMultipleResolverErrors(errors)
}
