package timeline

import (
	"fmt"
	"time"

	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/utils"
)

var (
	ErrEmptyTimeline = fmt.Errorf("no dated input for timeline")
)

// Build returns every calendar day from the earliest to the latest of the
// given dates, inclusive. Zero dates are ignored.
func Build(caseDates, actionDates []time.Time) (schema.DailyTimeline, error) {
	var earliest, latest time.Time
	found := false
	for _, dates := range [][]time.Time{caseDates, actionDates} {
		for _, d := range dates {
			if d.IsZero() {
				continue
			}
			d = utils.Day(d)
			if !found || d.Before(earliest) {
				earliest = d
			}
			if !found || d.After(latest) {
				latest = d
			}
			found = true
		}
	}
	if !found {
		return nil, ErrEmptyTimeline
	}

	n := utils.DaysBetween(earliest, latest) + 1
	t := make(schema.DailyTimeline, n)
	for i := 0; i < n; i++ {
		t[i] = earliest.AddDate(0, 0, i)
	}
	return t, nil
}

// ActionDates collects the start and end dates of the given actions.
func ActionDates(actions []schema.ActionRecord) []time.Time {
	dates := make([]time.Time, 0, 2*len(actions))
	for _, a := range actions {
		dates = append(dates, a.StartDate, a.EndDate)
	}
	return dates
}
