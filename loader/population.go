package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/wirvsvirus/measures-dashboard/consts"
)

var (
	populationRegionColumns = []string{"region", "bundesland", "state", "location", "name"}
	populationValueColumns  = []string{"population", "einwohner", "ewz"}
)

// ReadPopulation parses a region to population table.
func ReadPopulation(r io.Reader) (map[string]int64, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	regionCol, err := t.column(true, populationRegionColumns...)
	if err != nil {
		return nil, err
	}
	valueCol, err := t.column(true, populationValueColumns...)
	if err != nil {
		return nil, err
	}

	population := make(map[string]int64, len(t.rows))
	for _, row := range t.rows {
		region := consts.CanonicalRegion(field(row, regionCol))
		if region == "" {
			continue
		}
		n := parseCount(field(row, valueCol))
		if n <= 0 {
			return nil, fmt.Errorf("%w: invalid population for %s", ErrDataUnavailable, region)
		}
		population[region] = n
	}
	return population, nil
}

// LoadPopulationFile reads a population table from disk.
func LoadPopulationFile(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err)
	}
	defer f.Close()

	return ReadPopulation(f)
}
