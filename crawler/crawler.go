package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-map/casemap"
	"github.com/bitmark-inc/covid-map/schema"
	"github.com/bitmark-inc/covid-map/store"
)

const keepNumberOfDaysInDB = 20

type Cron interface {
	Run(ctx context.Context) error
}

type countyCrawler struct {
	writer store.CountyCaseWriter
	name   string
	source casemap.CaseSource
	now    func() time.Time
}

// Run stores today's snapshot of the source and drops the snapshots older than the keep window
func (c countyCrawler) Run(ctx context.Context) error {
	points, err := c.source.CountyCases(ctx)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "source": c.name, "error": err}).Error("county cases from source")
		return err
	}

	year, month, day := c.now().UTC().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	records := make([]schema.CountyCase, len(points))
	for i, p := range points {
		records[i] = schema.NewCountyCase(p, c.name, today.Unix())
	}

	if err := c.writer.ReplaceCountyCases(ctx, records); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "source": c.name, "error": err}).Error("replace county cases")
		return err
	}
	log.WithFields(log.Fields{"prefix": logPrefix, "source": c.name, "data count": len(records)}).Info("county cases stored")

	expired := today.AddDate(0, 0, -keepNumberOfDaysInDB).Unix()
	if err := c.writer.DeleteCountyCasesBefore(ctx, expired); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "source": c.name, "error": err}).Warn("delete expired county cases")
	}
	return nil
}

// newCountyCrawler - new cron job for the daily county snapshot
func newCountyCrawler(name string, writer store.CountyCaseWriter, source casemap.CaseSource) Cron {
	return &countyCrawler{
		writer: writer,
		name:   name,
		source: source,
		now:    time.Now,
	}
}
