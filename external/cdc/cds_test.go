package cdc_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/covid-map/external/cdc"
)

const cdsFixture = `[
  {
    "name": "King County, Washington, United States",
    "county": "King County",
    "state": "Washington",
    "country": "United States",
    "level": "county",
    "coordinates": [-121.83, 47.49],
    "cases": 100,
    "deaths": 10
  },
  {
    "name": "Washington, United States",
    "state": "Washington",
    "country": "United States",
    "level": "state",
    "coordinates": [-120.5, 47.4],
    "cases": 150,
    "deaths": 15
  },
  {
    "name": "Seattle, King County, Washington, United States",
    "city": "Seattle",
    "county": "King County",
    "state": "Washington",
    "country": "United States",
    "level": "city",
    "coordinates": [-122.33, 47.6],
    "cases": 40
  },
  {
    "name": "Toronto, Ontario, Canada",
    "county": "Toronto",
    "state": "Ontario",
    "country": "Canada",
    "level": "",
    "cases": 70,
    "deaths": 7
  },
  {
    "name": "Pierce County, Washington, United States",
    "county": "Pierce County",
    "state": "Washington",
    "country": "United States",
    "level": "county",
    "coordinates": [-122.14, 47.04]
  }
]`

type CDSTestSuite struct {
	suite.Suite
	server *httptest.Server
	status int
	body   string
}

func (s *CDSTestSuite) SetupSuite() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.body))
	}))
}

func (s *CDSTestSuite) TearDownSuite() {
	s.server.Close()
}

func (s *CDSTestSuite) SetupTest() {
	s.status = http.StatusOK
	s.body = cdsFixture
}

func (s *CDSTestSuite) TestCountyCases() {
	points, err := cdc.NewCDS("", s.server.URL, time.Second).CountyCases(context.Background())
	s.NoError(err)
	s.Len(points, 2)

	s.Equal("King County", points[0].County)
	s.Equal("Washington", points[0].Province)
	s.Equal("United States", points[0].Country)
	s.Equal(47.49, points[0].Coordinates.Latitude)
	s.Equal(-121.83, points[0].Coordinates.Longitude)
	s.Equal(int64(100), points[0].Stats.Confirmed)
	s.Equal(int64(10), points[0].Stats.Deaths)

	s.Equal("Toronto", points[1].County)
	s.False(points[1].Coordinates.Valid(), "record without coordinates is kept without position")
}

func (s *CDSTestSuite) TestCountyCasesCountryFilter() {
	points, err := cdc.NewCDS("Canada", s.server.URL, time.Second).CountyCases(context.Background())
	s.NoError(err)
	s.Len(points, 1)
	s.Equal("Canada", points[0].Country)
}

func (s *CDSTestSuite) TestCountyCasesHTTPError() {
	s.status = http.StatusInternalServerError
	s.body = ""

	_, err := cdc.NewCDS("", s.server.URL, time.Second).CountyCases(context.Background())
	s.True(errors.Is(err, cdc.ErrFetchFailed), "wrong error: %v", err)
}

func (s *CDSTestSuite) TestCountyCasesDecodeError() {
	s.body = `<html>maintenance</html>`

	_, err := cdc.NewCDS("", s.server.URL, time.Second).CountyCases(context.Background())
	s.True(errors.Is(err, cdc.ErrDecodeFailed), "wrong error: %v", err)
}

func TestCDSTestSuite(t *testing.T) {
	suite.Run(t, new(CDSTestSuite))
}
