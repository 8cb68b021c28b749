package schema

import (
	"sort"
	"time"
)

const (
	DatasetCollection = "datasets"
)

// Dataset describes one import of case and action records.
type Dataset struct {
	Version    string    `bson:"version"`
	ImportedAt time.Time `bson:"imported_at"`
	Cases      int       `bson:"cases"`
	Actions    int       `bson:"actions"`
}

// Snapshot is an immutable view of the loaded records. Consumers must not
// modify the slices it holds.
type Snapshot struct {
	Version  string
	Cases    []CaseRecord
	Actions  []ActionRecord
	LoadedAt time.Time
}

// Regions returns every region that appears in the case or action records.
func (s *Snapshot) Regions() []string {
	seen := map[string]struct{}{}
	for _, c := range s.Cases {
		if c.Region != "" {
			seen[c.Region] = struct{}{}
		}
	}
	for _, a := range s.Actions {
		if a.Location != "" {
			seen[a.Location] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Categories returns every category tag used by the action records.
func (s *Snapshot) Categories() []string {
	seen := map[string]struct{}{}
	for _, a := range s.Actions {
		for _, c := range a.Categories {
			seen[c] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
