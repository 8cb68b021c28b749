package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotRegionsUnionsCasesAndActions(t *testing.T) {
	s := &Snapshot{
		Cases: []CaseRecord{
			{Region: "Bayern", ReportDate: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Region: "Berlin"},
			{Region: "Bayern"},
		},
		Actions: []ActionRecord{
			{Location: "Hessen"},
			{Location: "Berlin"},
		},
	}

	assert.Equal(t, []string{"Bayern", "Berlin", "Hessen"}, s.Regions())
}

func TestSnapshotCategories(t *testing.T) {
	s := &Snapshot{
		Actions: []ActionRecord{
			{Categories: []string{"Versammlungen", "Schulen"}},
			{Categories: []string{"Schulen"}},
			{},
		},
	}

	assert.Equal(t, []string{"Schulen", "Versammlungen"}, s.Categories())
}

func TestMergedSeriesMaxInfected(t *testing.T) {
	assert.Equal(t, float64(0), MergedSeries{}.MaxInfected())
	assert.Equal(t, float64(7), MergedSeries{{Infected: 3}, {Infected: 7}, {Infected: 1}}.MaxInfected())
}

func TestActionRecordHasCategory(t *testing.T) {
	a := ActionRecord{Categories: []string{"Versammlungen", "Schulen"}}
	assert.True(t, a.HasCategory("Schulen"))
	assert.False(t, a.HasCategory("Grenzen"))
	assert.False(t, ActionRecord{}.HasCategory("Schulen"))
}
