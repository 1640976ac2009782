package jhu

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-map/schema"
)

const (
	defaultURL     = "https://disease.sh/v3/covid-19/jhucsse/counties"
	defaultTimeout = 15 * time.Second
)

var log = logrus.WithField("prefix", "jhu")

var (
	ErrFetchFailed  = fmt.Errorf("fetch jhu county cases fail")
	ErrDecodeFailed = fmt.Errorf("decode jhu county cases fail")
)

// JHU - county level cases published by JHU CSSE
type JHU interface {
	CountyCases(ctx context.Context) ([]schema.CasePoint, error)
}

type jhu struct {
	url    string
	client *http.Client
}

type countyStats struct {
	Confirmed *int64 `json:"confirmed"`
	Deaths    *int64 `json:"deaths"`
}

type countyCoordinates struct {
	Latitude  coordinate `json:"latitude"`
	Longitude coordinate `json:"longitude"`
}

type countyRecord struct {
	Country     string            `json:"country"`
	Province    string            `json:"province"`
	County      string            `json:"county"`
	UpdatedAt   string            `json:"updatedAt"`
	Stats       countyStats       `json:"stats"`
	Coordinates countyCoordinates `json:"coordinates"`
}

// coordinate accepts both "47.49" and 47.49; anything unparsable leaves it unset
type coordinate struct {
	value float64
	set   bool
}

func (c *coordinate) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if raw == "" || raw == "null" {
		*c = coordinate{}
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if nil != err {
		*c = coordinate{}
		return nil
	}
	*c = coordinate{value: v, set: true}
	return nil
}

func (r countyRecord) casePoint() schema.CasePoint {
	p := schema.CasePoint{
		Country:     r.Country,
		Province:    r.Province,
		County:      r.County,
		Coordinates: schema.NoCoordinates(),
		Stats: schema.Stats{
			Confirmed: *r.Stats.Confirmed,
			Deaths:    *r.Stats.Deaths,
		},
	}

	if r.Coordinates.Latitude.set && r.Coordinates.Longitude.set {
		p.Coordinates = schema.Coordinates{
			Latitude:  r.Coordinates.Latitude.value,
			Longitude: r.Coordinates.Longitude.value,
		}
	}
	return p
}

// CountyCases - fetch every county record in one request
func (j jhu) CountyCases(ctx context.Context) ([]schema.CasePoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.url, nil)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}

	resp, err := j.client.Do(req)
	if nil != err {
		log.WithFields(logrus.Fields{"url": j.url, "error": err}).Error("get county cases")
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: http status %d", ErrFetchFailed, resp.StatusCode)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}

	var records []countyRecord
	if err := json.Unmarshal(data, &records); nil != err {
		log.WithField("error", err).Error("decode county cases")
		return nil, fmt.Errorf("%w: %s", ErrDecodeFailed, err)
	}

	points := make([]schema.CasePoint, 0, len(records))
	dropped := 0
	for _, r := range records {
		if r.Stats.Confirmed == nil || r.Stats.Deaths == nil {
			dropped++
			log.WithFields(logrus.Fields{
				"country":  r.Country,
				"province": r.Province,
				"county":   r.County,
			}).Debug("county without stats")
			continue
		}
		points = append(points, r.casePoint())
	}

	if dropped > 0 {
		log.WithField("records", dropped).Warn("drop county records without stats")
	}

	return points, nil
}

// New - create a JHU client; an empty url uses the public disease.sh endpoint
func New(url string, timeout time.Duration) JHU {
	u := defaultURL
	if url != "" {
		u = url
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &jhu{
		url:    u,
		client: &http.Client{Timeout: timeout},
	}
}
