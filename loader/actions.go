package loader

import (
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wirvsvirus/measures-dashboard/consts"
	"github.com/wirvsvirus/measures-dashboard/schema"
)

var (
	actionLocationColumns = []string{"location", "ort"}
	actionStartColumns    = []string{"startdate_action", "start_date", "startdate"}
	actionEndColumns      = []string{"enddate_action", "end_date", "enddate"}
	actionLevelColumns    = []string{"geographic_level", "level", "ebene"}
	actionLabelColumns    = []string{"action", "action_label", "massnahme", "maßnahme"}
	actionDetailsColumns  = []string{"details_action", "details"}
	actionTagColumns      = []string{"zielgruppe", "category_tags", "category", "categories"}
	actionReportColumns   = []string{"timestamp", "report_timestamp"}
)

// ReadActions parses an action CSV. Unknown end dates are filled by
// FillUnknownEndDates, then records missing a mandatory field are dropped.
func ReadActions(r io.Reader) ([]schema.ActionRecord, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}

	cols := make([]int, 0, 8)
	for _, names := range [][]string{
		actionLocationColumns,
		actionStartColumns,
		actionEndColumns,
		actionLevelColumns,
		actionLabelColumns,
	} {
		i, err := t.column(true, names...)
		if err != nil {
			return nil, err
		}
		cols = append(cols, i)
	}
	detailsCol, _ := t.column(false, actionDetailsColumns...)
	tagCol, _ := t.column(false, actionTagColumns...)
	reportCol, _ := t.column(false, actionReportColumns...)

	actions := make([]schema.ActionRecord, 0, len(t.rows))
	for _, row := range t.rows {
		start, _ := ParseDate(field(row, cols[1]))
		end, _ := ParseDate(field(row, cols[2]))
		reported, _ := ParseTimestamp(field(row, reportCol))

		actions = append(actions, schema.ActionRecord{
			Location:   consts.CanonicalRegion(field(row, cols[0])),
			StartDate:  start,
			EndDate:    end,
			Level:      ParseLevel(field(row, cols[3])),
			Label:      field(row, cols[4]),
			Details:    field(row, detailsCol),
			Categories: SplitTags(field(row, tagCol)),
			ReportTime: reported,
		})
	}

	filled := FillUnknownEndDates(actions)
	actions, dropped := DropIncompleteActions(actions)
	clampEndDates(actions)

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"records": len(actions),
		"filled":  filled,
		"dropped": dropped,
	}).Debug("read action records")

	return actions, nil
}

// FillUnknownEndDates replaces every unknown end date with the latest known
// end date across all records. It returns the number of records changed.
// When no record has a known end date, nothing is changed.
func FillUnknownEndDates(actions []schema.ActionRecord) int {
	var latest time.Time
	for _, a := range actions {
		if a.EndDate.After(latest) {
			latest = a.EndDate
		}
	}
	if latest.IsZero() {
		return 0
	}

	filled := 0
	for i := range actions {
		if actions[i].EndDate.IsZero() {
			actions[i].EndDate = latest
			filled++
		}
	}
	return filled
}

// DropIncompleteActions removes records that cannot be placed as a marker:
// those without start date, end date, level, location or label.
func DropIncompleteActions(actions []schema.ActionRecord) ([]schema.ActionRecord, int) {
	kept := make([]schema.ActionRecord, 0, len(actions))
	for _, a := range actions {
		if a.StartDate.IsZero() || a.EndDate.IsZero() ||
			a.Level == schema.LevelUnknown || a.Location == "" || a.Label == "" {
			log.WithFields(log.Fields{
				"prefix":   logPrefix,
				"location": a.Location,
				"action":   a.Label,
			}).Debug("drop action with missing mandatory field")
			continue
		}
		kept = append(kept, a)
	}
	return kept, len(actions) - len(kept)
}

func clampEndDates(actions []schema.ActionRecord) {
	for i := range actions {
		if actions[i].EndDate.Before(actions[i].StartDate) {
			log.WithFields(log.Fields{
				"prefix":   logPrefix,
				"location": actions[i].Location,
				"action":   actions[i].Label,
			}).Warn("end date before start date, clamped to start")
			actions[i].EndDate = actions[i].StartDate
		}
	}
}

// SplitTags turns a comma-joined tag string into a list of distinct,
// trimmed tags in their original order.
func SplitTags(raw string) []string {
	tags := []string{}
	seen := map[string]bool{}
	for _, t := range strings.Split(raw, ",") {
		t = normalizeText(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

// ParseLevel maps the geographic level column onto the level enum.
func ParseLevel(s string) schema.GeographicLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "state", "bundesland", "land", "landesebene":
		return schema.LevelState
	case "county", "landkreis", "kreis", "kreisfreie stadt", "stadt", "kommune":
		return schema.LevelCounty
	case "national", "bund", "bundesebene", "deutschland", "country":
		return schema.LevelNational
	default:
		return schema.LevelUnknown
	}
}
