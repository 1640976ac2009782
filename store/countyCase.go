package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/covid-map/schema"
)

const DuplicateKeyCode = 11000

var (
	ErrCountyCaseFetch  = fmt.Errorf("fetch county cases fail")
	ErrCountyCaseDecode = fmt.Errorf("decode county case fail")
	ErrCountyCaseWrite  = fmt.Errorf("write county cases fail")
)

// CountyCaseReader - read the county cases the case crawler wrote for the store's source
type CountyCaseReader interface {
	LatestReportTime(ctx context.Context) (int64, error)
	CountyCases(ctx context.Context) ([]schema.CasePoint, error)
}

// LatestReportTime returns the report time of the newest snapshot, 0 when the collection is empty
func (m mongoDB) LatestReportTime(ctx context.Context) (int64, error) {
	c := m.client.Database(m.database).Collection(schema.CountyCaseCollection)

	opts := options.FindOne().SetSort(bson.M{"report_ts": -1}).SetProjection(bson.M{"report_ts": 1})
	var latest schema.CountyCase
	filter := bson.M{"source": m.source, "level": schema.CountyLevel}
	if err := c.FindOne(ctx, filter, opts).Decode(&latest); nil != err {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "error": err}).Error("find latest county report")
		return 0, fmt.Errorf("%w: %s", ErrCountyCaseFetch, err)
	}

	return latest.ReportTime, nil
}

// CountyCases returns the county records of the newest snapshot ordered by name
func (m mongoDB) CountyCases(ctx context.Context) ([]schema.CasePoint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	latest, err := m.LatestReportTime(ctx)
	if nil != err {
		return nil, err
	}

	c := m.client.Database(m.database).Collection(schema.CountyCaseCollection)
	filter := bson.M{"source": m.source, "level": schema.CountyLevel, "report_ts": latest}
	opts := options.Find().SetSort(bson.M{"name": 1})

	cur, err := c.Find(ctx, filter, opts)
	if nil != err {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "error": err}).Error("find county cases")
		return nil, fmt.Errorf("%w: %s", ErrCountyCaseFetch, err)
	}
	defer cur.Close(ctx)

	points := make([]schema.CasePoint, 0)
	for cur.Next(ctx) {
		var record schema.CountyCase
		if err := cur.Decode(&record); nil != err {
			log.WithFields(log.Fields{"prefix": mongoLogPrefix, "error": err}).Error("decode county case")
			return nil, fmt.Errorf("%w: %s", ErrCountyCaseDecode, err)
		}
		points = append(points, record.CasePoint())
	}

	if err := cur.Err(); nil != err {
		return nil, fmt.Errorf("%w: %s", ErrCountyCaseFetch, err)
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "source": m.source, "report_ts": latest, "records": len(points)}).Debug("county cases")
	return points, nil
}

// CountyCaseWriter - store county case snapshots
type CountyCaseWriter interface {
	ReplaceCountyCases(ctx context.Context, records []schema.CountyCase) error
	DeleteCountyCasesBefore(ctx context.Context, reportTime int64) error
}

// ReplaceCountyCases upserts the records by source, name and report time
func (m mongoDB) ReplaceCountyCases(ctx context.Context, records []schema.CountyCase) error {
	if len(records) <= 0 {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix}).Debug("no record to update")
		return nil
	}

	c := m.client.Database(m.database).Collection(schema.CountyCaseCollection)
	models := make([]mongo.WriteModel, len(records))
	for i, r := range records {
		models[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.M{"source": r.Source, "name": r.Name, "report_ts": r.ReportTime}).
			SetReplacement(r).
			SetUpsert(true)
	}

	res, err := c.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		if errs, hasErr := err.(mongo.BulkWriteException); hasErr {
			if 1 == len(errs.WriteErrors) && DuplicateKeyCode == errs.WriteErrors[0].Code {
				log.WithField("prefix", mongoLogPrefix).Warnf("county case update with error: %s", err)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrCountyCaseWrite, err)
	}

	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"upserted": res.UpsertedCount,
		"modified": res.ModifiedCount,
	}).Debug("replace county cases")
	return nil
}

// DeleteCountyCasesBefore removes the store source's snapshots reported at or before the time
func (m mongoDB) DeleteCountyCasesBefore(ctx context.Context, reportTime int64) error {
	filter := bson.M{"source": m.source, "report_ts": bson.D{{Key: "$lte", Value: reportTime}}}
	res, err := m.client.Database(m.database).Collection(schema.CountyCaseCollection).DeleteMany(ctx, filter)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Warnf("county case delete unused record with error: %s", err)
		return fmt.Errorf("%w: %s", ErrCountyCaseWrite, err)
	}
	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "records": res.DeletedCount}).Debug("delete county cases")
	return nil
}
