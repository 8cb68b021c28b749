package schema

import "time"

// DailyTimeline is a gap-free ascending sequence of calendar days.
type DailyTimeline []time.Time

func (t DailyTimeline) First() time.Time {
	if len(t) == 0 {
		return time.Time{}
	}
	return t[0]
}

func (t DailyTimeline) Last() time.Time {
	if len(t) == 0 {
		return time.Time{}
	}
	return t[len(t)-1]
}

type FillPolicy string

const (
	FillZero         FillPolicy = "zero"
	FillCarryForward FillPolicy = "carry_forward"
)

type MergedPoint struct {
	Date     time.Time `json:"date"`
	Infected float64   `json:"infected"`
	Deaths   float64   `json:"deaths"`
}

type MergedSeries []MergedPoint

// MaxInfected returns the largest infected value, zero for an empty series.
func (m MergedSeries) MaxInfected() float64 {
	max := float64(0)
	for _, p := range m {
		if p.Infected > max {
			max = p.Infected
		}
	}
	return max
}
