package series

import (
	"errors"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wirvsvirus/measures-dashboard/geo"
	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/utils"
)

// BubbleStats reports the records left out of the map layer because their
// key has no known coordinate.
type BubbleStats struct {
	Rows        int      `json:"rows"`
	Excluded    int      `json:"excluded"`
	UnknownKeys []string `json:"unknown_keys,omitempty"`
}

type bubbleKey struct {
	key  string
	date time.Time
}

// Bubbles builds the cumulative per-key rows of the animated map. County
// level keys records by county id, state level by region name. Records
// whose key cannot be resolved are excluded and counted; they are never
// attributed to another key.
func Bubbles(records []schema.CaseRecord, level schema.GeographicLevel, resolver geo.CentroidResolver) ([]schema.BubbleRow, BubbleStats) {
	stats := BubbleStats{}
	unknown := map[string]bool{}
	coords := map[string]schema.Coordinate{}
	names := map[string]string{}
	sums := map[bubbleKey]schema.Counts{}

	for _, r := range records {
		key, name := r.Region, r.Region
		if level == schema.LevelCounty {
			key, name = r.CountyID, r.Subregion
		}

		if _, ok := coords[key]; !ok {
			if unknown[key] {
				stats.Excluded++
				continue
			}
			c, err := resolver.CentroidOf(key)
			if err != nil {
				if !errors.Is(err, geo.ErrUnknownGeography) {
					log.WithFields(log.Fields{"prefix": logPrefix, "key": key, "error": err}).Error("resolve centroid")
				}
				unknown[key] = true
				stats.Excluded++
				continue
			}
			coords[key] = c
			names[key] = name
		}

		k := bubbleKey{key: key, date: utils.Day(r.ReportDate)}
		sums[k] = sums[k].Add(schema.Counts{Infected: r.NewInfected, Deaths: r.NewDeaths})
	}

	keys := make([]bubbleKey, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].date.Equal(keys[j].date) {
			return keys[i].date.Before(keys[j].date)
		}
		return keys[i].key < keys[j].key
	})

	totals := map[string]schema.Counts{}
	rows := make([]schema.BubbleRow, 0, len(keys))
	for _, k := range keys {
		totals[k.key] = totals[k.key].Add(sums[k])
		c := coords[k.key]
		rows = append(rows, schema.BubbleRow{
			Key:                k.key,
			Name:               names[k.key],
			Latitude:           c.Latitude,
			Longitude:          c.Longitude,
			CumulativeInfected: totals[k.key].Infected,
			CumulativeDeaths:   totals[k.key].Deaths,
			Date:               k.date,
		})
	}

	for k := range unknown {
		stats.UnknownKeys = append(stats.UnknownKeys, k)
	}
	sort.Strings(stats.UnknownKeys)
	stats.Rows = len(rows)

	if stats.Excluded > 0 {
		log.WithFields(log.Fields{
			"prefix":    logPrefix,
			"geo_level": level,
			"excluded":  stats.Excluded,
			"keys":      len(stats.UnknownKeys),
		}).Warn("records without coordinate excluded from map")
	}

	return rows, stats
}
