package jhu_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-map/external/jhu"
)

const countiesFixture = `[
  {
    "country": "US",
    "province": "Washington",
    "county": "King",
    "updatedAt": "2020-10-01 04:23:47",
    "stats": {"confirmed": 100, "deaths": 10, "recovered": null},
    "coordinates": {"latitude": "47.49137892", "longitude": "-121.8346131"}
  },
  {
    "country": "US",
    "province": "Oregon",
    "county": "Multnomah",
    "updatedAt": "2020-10-01 04:23:47",
    "stats": {"confirmed": 30, "deaths": 1, "recovered": null},
    "coordinates": {"latitude": 45.54700801, "longitude": -122.4172059}
  },
  {
    "country": "US",
    "province": "Utah",
    "county": "Unassigned",
    "updatedAt": "2020-10-01 04:23:47",
    "stats": {"confirmed": 5, "deaths": 0, "recovered": null},
    "coordinates": {"latitude": "", "longitude": ""}
  },
  {
    "country": "US",
    "province": "Guam",
    "county": "Guam",
    "updatedAt": "2020-10-01 04:23:47",
    "stats": {"confirmed": null, "deaths": null, "recovered": null},
    "coordinates": {"latitude": "13.4443", "longitude": "144.7937"}
  }
]`

func TestCountyCases(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(countiesFixture))
	}))
	defer ts.Close()

	points, err := jhu.New(ts.URL, time.Second).CountyCases(context.Background())
	assert.NoError(t, err, "wrong CountyCases")
	assert.Len(t, points, 3, "record without stats should be dropped")

	assert.Equal(t, "King", points[0].County)
	assert.Equal(t, "Washington", points[0].Province)
	assert.Equal(t, int64(100), points[0].Stats.Confirmed)
	assert.Equal(t, int64(10), points[0].Stats.Deaths)
	assert.InDelta(t, 47.49137892, points[0].Coordinates.Latitude, 1e-9)
	assert.InDelta(t, -121.8346131, points[0].Coordinates.Longitude, 1e-9)

	assert.True(t, points[1].Coordinates.Valid(), "numeric coordinates")
	assert.InDelta(t, 45.54700801, points[1].Coordinates.Latitude, 1e-9)

	assert.Equal(t, "Unassigned", points[2].County)
	assert.False(t, points[2].Coordinates.Valid(), "empty coordinates should be kept invalid")
}

func TestCountyCasesHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	points, err := jhu.New(ts.URL, time.Second).CountyCases(context.Background())
	assert.Nil(t, points)
	assert.True(t, errors.Is(err, jhu.ErrFetchFailed), "wrong error: %v", err)
}

func TestCountyCasesDecodeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message": "not an array"}`))
	}))
	defer ts.Close()

	_, err := jhu.New(ts.URL, time.Second).CountyCases(context.Background())
	assert.True(t, errors.Is(err, jhu.ErrDecodeFailed), "wrong error: %v", err)
}

func TestCountyCasesCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := jhu.New(ts.URL, time.Second).CountyCases(ctx)
	assert.True(t, errors.Is(err, jhu.ErrFetchFailed), "wrong error: %v", err)
}

func TestCountyCasesEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	points, err := jhu.New(ts.URL, 0).CountyCases(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}
