package loader

import (
	"io"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/wirvsvirus/measures-dashboard/consts"
	"github.com/wirvsvirus/measures-dashboard/schema"
)

var (
	caseRegionColumns    = []string{"region", "country", "state", "bundesland"}
	caseSubregionColumns = []string{"subregion", "county", "landkreis"}
	caseCountyIDColumns  = []string{"county_id", "idlandkreis", "cca_2", "ags"}
	caseDateColumns      = []string{"report_date", "timestamp", "meldedatum", "date"}
	caseInfectedColumns  = []string{"new_infected", "infected", "anzahlfall", "cases"}
	caseDeathsColumns    = []string{"new_deaths", "deaths", "anzahltodesfall"}
)

// ReadCases parses a case CSV. Rows without a readable report date or
// region are skipped and counted.
func ReadCases(r io.Reader) ([]schema.CaseRecord, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}

	regionCol, err := t.column(true, caseRegionColumns...)
	if err != nil {
		return nil, err
	}
	dateCol, err := t.column(true, caseDateColumns...)
	if err != nil {
		return nil, err
	}
	infectedCol, err := t.column(true, caseInfectedColumns...)
	if err != nil {
		return nil, err
	}
	subregionCol, _ := t.column(false, caseSubregionColumns...)
	countyIDCol, _ := t.column(false, caseCountyIDColumns...)
	deathsCol, _ := t.column(false, caseDeathsColumns...)

	records := make([]schema.CaseRecord, 0, len(t.rows))
	skipped := 0
	for _, row := range t.rows {
		date, ok := ParseDate(field(row, dateCol))
		region := consts.CanonicalRegion(field(row, regionCol))
		if !ok || region == "" {
			skipped++
			continue
		}

		records = append(records, schema.CaseRecord{
			Region:      region,
			Subregion:   consts.CanonicalRegion(field(row, subregionCol)),
			CountyID:    field(row, countyIDCol),
			ReportDate:  date,
			NewInfected: parseCount(field(row, infectedCol)),
			NewDeaths:   parseCount(field(row, deathsCol)),
		})
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"records": len(records),
		"skipped": skipped,
	}).Debug("read case records")

	return records, nil
}

// parseCount reads an integer count that may have been written as a float.
// Empty, unreadable and negative values count as zero.
func parseCount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 {
		return 0
	}
	return int64(math.Round(f))
}
