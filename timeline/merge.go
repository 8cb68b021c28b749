package timeline

import (
	"time"

	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/utils"
)

// PolicyFor returns the fill policy a series mode requires. Zero filling a
// cumulative series would break its monotonicity.
func PolicyFor(mode schema.SeriesMode) schema.FillPolicy {
	if mode == schema.Cumulative {
		return schema.FillCarryForward
	}
	return schema.FillZero
}

// Merge left-joins series onto the timeline. Days missing from the series
// are filled according to fill; the result always has one point per
// timeline day.
func Merge(t schema.DailyTimeline, series schema.RegionSeries, fill schema.FillPolicy) schema.MergedSeries {
	byDay := make(map[time.Time]schema.Counts, len(series.Points))
	for _, p := range series.Points {
		d := utils.Day(p.Date)
		byDay[d] = byDay[d].Add(p.Counts)
	}

	merged := make(schema.MergedSeries, len(t))
	var last schema.Counts
	for i, d := range t {
		c, ok := byDay[utils.Day(d)]
		switch {
		case ok:
			last = c
		case fill == schema.FillCarryForward:
			c = last
		default:
			c = schema.Counts{}
		}
		merged[i] = schema.MergedPoint{
			Date:     d,
			Infected: float64(c.Infected),
			Deaths:   float64(c.Deaths),
		}
	}
	return merged
}
