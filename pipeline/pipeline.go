package pipeline

import (
	"fmt"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/wirvsvirus/measures-dashboard/action"
	"github.com/wirvsvirus/measures-dashboard/geo"
	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/series"
	"github.com/wirvsvirus/measures-dashboard/timeline"
	"github.com/wirvsvirus/measures-dashboard/utils"
)

const (
	logPrefix = "pipeline"
)

var (
	ErrNoRegion = fmt.Errorf("no region selected")
)

// Selection is what the user picked in the dashboard.
type Selection struct {
	Region     string
	Categories []string
	Cumulative bool
	LogScale   bool
	Normalized bool
}

func (s Selection) mode() schema.SeriesMode {
	if s.Cumulative {
		return schema.Cumulative
	}
	return schema.Incremental
}

// Options carries the inputs of a run that do not come from the snapshot.
// Population is only needed for normalized selections; a nil Localizer
// falls back to German texts.
type Options struct {
	Population map[string]int64
	Localizer  *i18n.Localizer
}

// Result is everything the chart of one selection needs.
type Result struct {
	Region     string                        `json:"region"`
	Mode       schema.SeriesMode             `json:"mode"`
	LogScale   bool                          `json:"log_scale"`
	Normalized bool                          `json:"normalized"`
	Timeline   schema.DailyTimeline          `json:"timeline"`
	Series     schema.MergedSeries           `json:"series"`
	Markers    []schema.ActionMarkerGeometry `json:"markers"`
}

// Run computes the merged case series and the action markers of a
// selection. The snapshot is only read.
func Run(snapshot *schema.Snapshot, sel Selection, opts Options) (*Result, error) {
	if sel.Region == "" {
		return nil, ErrNoRegion
	}

	categories := action.ExpandCategories(sel.Categories, snapshot.Categories())
	actions := action.Filter(snapshot.Actions, sel.Region, categories)
	aggregated := series.Aggregate(snapshot.Cases, sel.Region, sel.mode())

	t, err := timeline.Build(aggregated.Dates(), timeline.ActionDates(actions))
	if err != nil {
		return nil, err
	}

	merged := timeline.Merge(t, aggregated, timeline.PolicyFor(aggregated.Mode))
	basis := action.ScaleBasis(aggregated, len(actions))
	if sel.Normalized {
		merged, err = series.Normalize(merged, sel.Region, opts.Population)
		if err != nil {
			return nil, err
		}
		if !aggregated.Empty() {
			basis = merged.MaxInfected()
		}
	}

	markers := action.Layout(actions, basis)
	l := opts.Localizer
	if l == nil {
		l = utils.NewLocalizer()
	}
	if err := action.Annotate(l, markers); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"region":  sel.Region,
		"mode":    aggregated.Mode,
		"days":    len(t),
		"actions": len(markers),
	}).Debug("timeline computed")

	return &Result{
		Region:     sel.Region,
		Mode:       aggregated.Mode,
		LogScale:   sel.LogScale,
		Normalized: sel.Normalized,
		Timeline:   t,
		Series:     merged,
		Markers:    markers,
	}, nil
}

// MapResult is the animated map layer of one geographic level.
type MapResult struct {
	Level schema.GeographicLevel `json:"level"`
	Dates []time.Time            `json:"dates"`
	Rows  []schema.BubbleRow     `json:"rows"`
	Stats series.BubbleStats     `json:"stats"`
}

// Map builds the bubble rows of every region of the given level.
func Map(snapshot *schema.Snapshot, level schema.GeographicLevel, resolver geo.CentroidResolver) *MapResult {
	rows, stats := series.Bubbles(snapshot.Cases, level, resolver)

	dates := []time.Time{}
	for _, r := range rows {
		if len(dates) == 0 || !dates[len(dates)-1].Equal(r.Date) {
			dates = append(dates, r.Date)
		}
	}

	return &MapResult{
		Level: level,
		Dates: dates,
		Rows:  rows,
		Stats: stats,
	}
}
