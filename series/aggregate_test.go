package series

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wirvsvirus/measures-dashboard/schema"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testRecords = []schema.CaseRecord{
	{Region: "Bayern", Subregion: "SK München", CountyID: "09162", ReportDate: date(2020, 3, 3), NewInfected: 3, NewDeaths: 1},
	{Region: "Bayern", Subregion: "LK Freising", CountyID: "09178", ReportDate: date(2020, 3, 1), NewInfected: 2},
	{Region: "Bayern", Subregion: "SK München", CountyID: "09162", ReportDate: date(2020, 3, 1), NewInfected: 3},
	{Region: "Berlin", Subregion: "SK Berlin Mitte", CountyID: "11001", ReportDate: date(2020, 3, 1), NewInfected: 7},
	{Region: "Bayern", Subregion: "SK München", CountyID: "09162", ReportDate: date(2020, 3, 1).Add(10 * time.Hour), NewInfected: 1},
}

func TestAggregateSumsSameDay(t *testing.T) {
	s := Aggregate(testRecords, "Bayern", schema.Incremental)

	assert.Equal(t, "Bayern", s.Region)
	assert.Equal(t, schema.Incremental, s.Mode)
	assert.Equal(t, []schema.SeriesPoint{
		{Date: date(2020, 3, 1), Counts: schema.Counts{Infected: 6}},
		{Date: date(2020, 3, 3), Counts: schema.Counts{Infected: 3, Deaths: 1}},
	}, s.Points)
}

func TestAggregateBySubregion(t *testing.T) {
	s := Aggregate(testRecords, "SK München", schema.Incremental)
	assert.Equal(t, []schema.SeriesPoint{
		{Date: date(2020, 3, 1), Counts: schema.Counts{Infected: 4}},
		{Date: date(2020, 3, 3), Counts: schema.Counts{Infected: 3, Deaths: 1}},
	}, s.Points)
}

func TestAggregateCumulative(t *testing.T) {
	s := Aggregate(testRecords, "Bayern", schema.Cumulative)
	assert.Equal(t, []schema.SeriesPoint{
		{Date: date(2020, 3, 1), Counts: schema.Counts{Infected: 6}},
		{Date: date(2020, 3, 3), Counts: schema.Counts{Infected: 9, Deaths: 1}},
	}, s.Points)
}

func TestAggregateUnknownRegion(t *testing.T) {
	s := Aggregate(testRecords, "Atlantis", schema.Cumulative)
	assert.True(t, s.Empty())
	assert.NotNil(t, s.Points)
}

func TestAggregateDoesNotModifyInput(t *testing.T) {
	before := make([]schema.CaseRecord, len(testRecords))
	copy(before, testRecords)

	Aggregate(testRecords, "Bayern", schema.Cumulative)
	assert.Equal(t, before, testRecords)
}

func TestCumulativeMonotonicity(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	regions := []string{"Bayern", "Berlin", "Hessen"}

	var records []schema.CaseRecord
	for i := 0; i < 500; i++ {
		records = append(records, schema.CaseRecord{
			Region:      regions[r.Intn(len(regions))],
			ReportDate:  date(2020, 3, 1).AddDate(0, 0, r.Intn(60)),
			NewInfected: int64(r.Intn(100)),
			NewDeaths:   int64(r.Intn(5)),
		})
	}

	for _, region := range regions {
		s := Aggregate(records, region, schema.Cumulative)
		for i := 1; i < len(s.Points); i++ {
			assert.True(t, s.Points[i].Date.After(s.Points[i-1].Date))
			assert.True(t, s.Points[i].Infected >= s.Points[i-1].Infected)
			assert.True(t, s.Points[i].Deaths >= s.Points[i-1].Deaths)
		}

		incremental := Aggregate(records, region, schema.Incremental)
		var total int64
		for _, p := range incremental.Points {
			total += p.Infected
		}
		assert.Equal(t, total, s.Points[len(s.Points)-1].Infected)
	}
}

func TestMaxInfected(t *testing.T) {
	assert.Equal(t, int64(6), MaxInfected(Aggregate(testRecords, "Bayern", schema.Incremental)))
	assert.Equal(t, int64(0), MaxInfected(schema.RegionSeries{}))
}
