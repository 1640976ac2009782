package metrics

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates the root metrics scope reported to the log every interval.
// A zero interval disables reporting.
func New(prefix string, interval time.Duration, tags map[string]string) (tally.Scope, io.Closer) {
	if interval <= 0 {
		return tally.NoopScope, nopCloser{}
	}

	return tally.NewRootScope(tally.ScopeOptions{
		Prefix:   prefix,
		Tags:     tags,
		Reporter: NewLogReporter(logrus.WithField("prefix", "metrics")),
	}, interval)
}

type logReporter struct {
	log *logrus.Entry
}

// NewLogReporter reports every metric as one debug log line
func NewLogReporter(entry *logrus.Entry) tally.StatsReporter {
	return &logReporter{log: entry}
}

func (r *logReporter) fields(name string, tags map[string]string) logrus.Fields {
	fields := logrus.Fields{"metric": name}
	for k, v := range tags {
		fields["tag."+k] = v
	}
	return fields
}

func (r *logReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.log.WithFields(r.fields(name, tags)).WithField("value", value).Debug("counter")
}

func (r *logReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.log.WithFields(r.fields(name, tags)).WithField("value", value).Debug("gauge")
}

func (r *logReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.log.WithFields(r.fields(name, tags)).WithField("value", interval.String()).Debug("timer")
}

func (r *logReporter) ReportHistogramValueSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound,
	bucketUpperBound float64,
	samples int64,
) {
	r.log.WithFields(r.fields(name, tags)).WithFields(logrus.Fields{
		"lower":   bucketLowerBound,
		"upper":   bucketUpperBound,
		"samples": samples,
	}).Debug("histogram")
}

func (r *logReporter) ReportHistogramDurationSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound,
	bucketUpperBound time.Duration,
	samples int64,
) {
	r.log.WithFields(r.fields(name, tags)).WithFields(logrus.Fields{
		"lower":   bucketLowerBound.String(),
		"upper":   bucketUpperBound.String(),
		"samples": samples,
	}).Debug("histogram")
}

func (r *logReporter) Capabilities() tally.Capabilities {
	return r
}

func (r *logReporter) Reporting() bool {
	return true
}

func (r *logReporter) Tagging() bool {
	return true
}

func (r *logReporter) Flush() {}
