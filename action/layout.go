package action

import (
	"sort"

	"github.com/wirvsvirus/measures-dashboard/consts"
	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/series"
)

// ScaleBasis returns the value the marker rows are spread over: the
// largest infected count of the series, or the number of actions when the
// region has no case records.
func ScaleBasis(s schema.RegionSeries, actionCount int) float64 {
	if s.Empty() {
		return float64(actionCount)
	}
	return float64(series.MaxInfected(s))
}

// Layout places one marker per action. Actions are ordered by start date,
// ties keep their input order, and each gets its own row.
func Layout(actions []schema.ActionRecord, scaleBasis float64) []schema.ActionMarkerGeometry {
	if len(actions) == 0 {
		return []schema.ActionMarkerGeometry{}
	}

	sorted := make([]schema.ActionRecord, len(actions))
	copy(sorted, actions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	step := scaleBasis / float64(len(sorted))
	markers := make([]schema.ActionMarkerGeometry, len(sorted))
	for row, a := range sorted {
		onset := a.StartDate.Add(consts.EffectLag)

		m := schema.ActionMarkerGeometry{
			RowIndex:   row,
			YOffset:    float64(row) * step,
			Pending:    schema.Interval{From: a.StartDate, To: onset},
			Active:     schema.Interval{From: onset, To: a.EndDate},
			Style:      style(a),
			Location:   a.Location,
			Label:      a.Label,
			Details:    a.Details,
			Categories: a.Categories,
			Start:      a.StartDate,
			End:        a.EndDate,
		}

		if a.EndDate.IsZero() {
			m.Active.To = onset
		} else {
			m.Tail = &schema.Interval{From: a.EndDate, To: a.EndDate.Add(consts.EffectLag)}
		}

		markers[row] = m
	}
	return markers
}

// style derives the styling hint of a marker from its first category.
func style(a schema.ActionRecord) string {
	if len(a.Categories) == 0 {
		return ""
	}
	return a.Categories[0]
}
