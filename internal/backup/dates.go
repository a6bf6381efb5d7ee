package backup

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/sirupsen/logrus"
)

// tryDate parses whatever timestamp text the API handed back. Numeric dates
// read month first, then day first when that cannot be a valid month. Text
// without a zone is taken as UTC. Failures are logged at debug level and
// yield nil.
func tryDate(log logrus.FieldLogger, field string, v any) *time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		log.WithFields(logrus.Fields{"field": field, "value": v}).Debug("could not parse a date: no timestamp text")
		return nil
	}

	t, err := dateparse.ParseIn(s, time.UTC, dateparse.RetryAmbiguousDateWithSwap(true))
	if err != nil {
		log.WithFields(logrus.Fields{"field": field, "value": s}).Debugf("could not parse a date: %v", err)
		return nil
	}

	return &t
}
