package schema

import "time"

const (
	ActionCollection = "actions"
)

type GeographicLevel string

const (
	LevelUnknown  GeographicLevel = ""
	LevelState    GeographicLevel = "state"
	LevelCounty   GeographicLevel = "county"
	LevelNational GeographicLevel = "national"
)

// ActionRecord is a policy measure taken for a location. A zero StartDate
// or EndDate means the date is unknown.
type ActionRecord struct {
	Location   string          `json:"location" bson:"location"`
	StartDate  time.Time       `json:"start_date" bson:"start_date"`
	EndDate    time.Time       `json:"end_date" bson:"end_date"`
	Level      GeographicLevel `json:"geographic_level" bson:"geographic_level"`
	Label      string          `json:"action" bson:"action"`
	Details    string          `json:"details,omitempty" bson:"details"`
	Categories []string        `json:"categories" bson:"categories"`
	ReportTime time.Time       `json:"report_ts,omitempty" bson:"report_ts"`
	Dataset    string          `json:"-" bson:"dataset"`
}

// HasCategory reports whether the given tag is one of the record's categories.
func (a ActionRecord) HasCategory(tag string) bool {
	for _, c := range a.Categories {
		if c == tag {
			return true
		}
	}
	return false
}

type Interval struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ActionMarkerGeometry is the placement of one action marker on the chart.
type ActionMarkerGeometry struct {
	RowIndex    int       `json:"row"`
	YOffset     float64   `json:"y"`
	Pending     Interval  `json:"pending"`
	Active      Interval  `json:"active"`
	Tail        *Interval `json:"tail,omitempty"`
	Style       string    `json:"style"`
	Location    string    `json:"location"`
	Label       string    `json:"action"`
	Details     string    `json:"details,omitempty"`
	Categories  []string  `json:"categories"`
	Start       time.Time `json:"start_date"`
	End         time.Time `json:"end_date"`
	HoverText   string    `json:"hover_text,omitempty"`
	SegmentText []string  `json:"segment_text,omitempty"`
}
