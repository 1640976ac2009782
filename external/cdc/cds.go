package cdc

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-map/schema"
)

const (
	defaultURL     = "https://coronadatascraper.com/data.json"
	defaultTimeout = 30 * time.Second

	LevelCounty = "county"
)

var log = logrus.WithField("prefix", "cds")

var (
	ErrFetchFailed  = fmt.Errorf("fetch cds data fail")
	ErrDecodeFailed = fmt.Errorf("decode cds data fail")
)

// CDS - coronadatascraper daily dataset
type CDS interface {
	CountyCases(ctx context.Context) ([]schema.CasePoint, error)
}

type cds struct {
	country string
	url     string
	client  *http.Client
}

// CountyCases - fetch the dataset and keep the county level records
func (c cds) CountyCases(ctx context.Context) ([]schema.CasePoint, error) {
	data, err := c.dataFromURL(ctx)
	if nil != err {
		return nil, err
	}

	sourceData := make([]interface{}, 0)
	if err := json.Unmarshal(data, &sourceData); nil != err {
		log.WithField("error", err).Error("decode cds data")
		return nil, fmt.Errorf("%w: %s", ErrDecodeFailed, err)
	}

	records := make([]schema.CountyCase, 0)
	for _, value := range sourceData {
		object, ok := value.(map[string]interface{})
		if !ok {
			continue
		}

		record, ok := c.countyRecord(object)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	points := make([]schema.CasePoint, len(records))
	for i, r := range records {
		points[i] = r.CasePoint()
	}

	log.WithFields(logrus.Fields{"total": len(sourceData), "county": len(points)}).Debug("cds county records")
	return points, nil
}

func (c cds) countyRecord(object map[string]interface{}) (schema.CountyCase, bool) {
	record := schema.CountyCase{}

	name, ok := object["name"].(string)
	if !ok || len(name) == 0 {
		return record, false
	}
	if c.country != "" && !strings.Contains(name, c.country) {
		return record, false
	}
	record.Name = name

	record.County, _ = object["county"].(string)
	record.State, _ = object["state"].(string)
	record.Country, _ = object["country"].(string)
	record.Level, _ = object["level"].(string)

	city, _ := object["city"].(string)
	if "" == record.Level && "" != record.County && "" == city {
		record.Level = LevelCounty
		log.WithFields(logrus.Fields{"name": record.Name, "level": record.Level}).Warn("empty level set")
	}
	if record.Level != LevelCounty {
		return record, false
	}

	record.Location = schema.GeoJSON{Type: "Point", Coordinates: []float64{}}
	if coorRaw, ok := object["coordinates"].([]interface{}); ok && len(coorRaw) >= 2 {
		coor := make([]float64, 0, len(coorRaw))
		for _, v := range coorRaw {
			f, ok := v.(float64)
			if !ok {
				coor = nil
				break
			}
			coor = append(coor, f)
		}
		if coor != nil {
			record.Location.Coordinates = coor
		}
	}

	record.Cases, ok = object["cases"].(float64)
	if !ok {
		log.WithField("name", record.Name).Warn("cast cases fail")
		return record, false
	}
	record.Deaths, _ = object["deaths"].(float64)

	return record, true
}

func (c cds) dataFromURL(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}

	resp, err := c.client.Do(req)
	if nil != err {
		log.WithFields(logrus.Fields{"url": c.url, "error": err}).Error("get cds daily json")
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: http status %d", ErrFetchFailed, resp.StatusCode)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithField("error", err).Error("read cds daily json response")
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	return data, nil
}

// NewCDS - new cds county source; an empty country keeps every country
func NewCDS(country, url string, timeout time.Duration) CDS {
	u := defaultURL
	if url != "" {
		u = url
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &cds{
		country: country,
		url:     u,
		client:  &http.Client{Timeout: timeout},
	}
}
