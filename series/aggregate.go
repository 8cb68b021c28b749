package series

import (
	"sort"
	"time"

	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/utils"
)

const (
	logPrefix = "series"
)

// Aggregate sums the case records of a region per report day. A record
// belongs to the region when its state or county name equals it. In
// cumulative mode the daily sums are turned into running totals.
func Aggregate(records []schema.CaseRecord, region string, mode schema.SeriesMode) schema.RegionSeries {
	byDay := make(map[time.Time]schema.Counts)
	for _, r := range records {
		if r.Region != region && r.Subregion != region {
			continue
		}
		d := utils.Day(r.ReportDate)
		byDay[d] = byDay[d].Add(schema.Counts{Infected: r.NewInfected, Deaths: r.NewDeaths})
	}

	points := sortedPoints(byDay)
	if mode == schema.Cumulative {
		points = runningSum(points)
	}

	return schema.RegionSeries{
		Region: region,
		Mode:   mode,
		Points: points,
	}
}

func sortedPoints(byDay map[time.Time]schema.Counts) []schema.SeriesPoint {
	points := make([]schema.SeriesPoint, 0, len(byDay))
	for d, c := range byDay {
		points = append(points, schema.SeriesPoint{Date: d, Counts: c})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// runningSum expects points in ascending date order.
func runningSum(points []schema.SeriesPoint) []schema.SeriesPoint {
	result := make([]schema.SeriesPoint, len(points))
	var total schema.Counts
	for i, p := range points {
		total = total.Add(p.Counts)
		result[i] = schema.SeriesPoint{Date: p.Date, Counts: total}
	}
	return result
}

// MaxInfected returns the largest infected value of the series.
func MaxInfected(s schema.RegionSeries) int64 {
	var max int64
	for _, p := range s.Points {
		if p.Infected > max {
			max = p.Infected
		}
	}
	return max
}
