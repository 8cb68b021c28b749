package schema

import "time"

const (
	CaseCollection = "cases"
)

// CaseRecord is one reported row of the case dataset: new infections and
// deaths of a county on a report day.
type CaseRecord struct {
	Region      string    `json:"region" bson:"region"`
	Subregion   string    `json:"subregion,omitempty" bson:"subregion"`
	CountyID    string    `json:"county_id,omitempty" bson:"county_id"`
	ReportDate  time.Time `json:"report_date" bson:"report_date"`
	NewInfected int64     `json:"new_infected" bson:"new_infected"`
	NewDeaths   int64     `json:"new_deaths" bson:"new_deaths"`
	Dataset     string    `json:"-" bson:"dataset"`
}

type Counts struct {
	Infected int64 `json:"infected" bson:"infected"`
	Deaths   int64 `json:"deaths" bson:"deaths"`
}

// Add returns the element-wise sum of both counts.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Infected: c.Infected + o.Infected,
		Deaths:   c.Deaths + o.Deaths,
	}
}

type SeriesPoint struct {
	Date time.Time `json:"date"`
	Counts
}

type SeriesMode string

const (
	Incremental SeriesMode = "incremental"
	Cumulative  SeriesMode = "cumulative"
)

// RegionSeries holds one point per report day, ascending by date.
type RegionSeries struct {
	Region string        `json:"region"`
	Mode   SeriesMode    `json:"mode"`
	Points []SeriesPoint `json:"points"`
}

// Dates returns the report days of the series.
func (s RegionSeries) Dates() []time.Time {
	dates := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		dates[i] = p.Date
	}
	return dates
}

// Empty reports whether no case record contributed to the series.
func (s RegionSeries) Empty() bool {
	return len(s.Points) == 0
}
