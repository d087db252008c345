// Package period resolves the analysis date range. ERP exports usually
// carry the range in the filename ("... 01.01.25_19.08.25 base.xlsx"); when
// it cannot be recovered, downstream computations assume 30 days.
package period

import (
	"regexp"
	"strings"
	"time"
)

// DefaultDays is assumed when no date range is known.
const DefaultDays = 30

var dateToken = regexp.MustCompile(`\b\d{2}\.\d{2}\.\d{2,4}\b`)

var separatorReplacer = strings.NewReplacer("_", " ", "-", " ", "/", " ")

func parseToken(token string) (time.Time, bool) {
	for _, layout := range []string{"02.01.06", "02.01.2006"} {
		if d, err := time.Parse(layout, token); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// FromFilename scans a filename for DD.MM.YY or DD.MM.YYYY tokens after
// replacing common separators with spaces. When at least two tokens parse,
// the first and last are returned as (start, end), swapped if inverted;
// otherwise both are nil. It never fails.
func FromFilename(filename string) (*time.Time, *time.Time) {
	clean := separatorReplacer.Replace(filename)
	var dates []time.Time
	for _, token := range dateToken.FindAllString(clean, -1) {
		if d, ok := parseToken(token); ok {
			dates = append(dates, d)
		}
	}
	if len(dates) < 2 {
		return nil, nil
	}
	start, end := dates[0], dates[len(dates)-1]
	if start.After(end) {
		start, end = end, start
	}
	return &start, &end
}

// Days returns the inclusive duration of the range in days, floored at 1,
// or DefaultDays when either bound is unknown.
func Days(start, end *time.Time) int {
	if start == nil || end == nil {
		return DefaultDays
	}
	days := int(end.Sub(*start)/(24*time.Hour)) + 1
	if days < 1 {
		days = 1
	}
	return days
}
