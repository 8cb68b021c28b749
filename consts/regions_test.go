package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wirvsvirus/measures-dashboard/consts"
)

func TestCanonicalRegion(t *testing.T) {
	mapping := map[string]string{
		"Baden-Würtemberg":       "Baden-Württemberg",
		"Mecklenburg Vorpommern": "Mecklenburg-Vorpommern",
		"NRW":                    "Nordrhein-Westfalen",
		" NRW ":                  "Nordrhein-Westfalen",
		"Thueringen":             "Thüringen",
		"Bayern":                 "Bayern",
		"Landkreis Unbekannt":    "Landkreis Unbekannt",
	}

	for key, value := range mapping {
		assert.Equal(t, value, consts.CanonicalRegion(key), "wrong canonical name for %q", key)
	}
}

func TestAliasesResolveToStates(t *testing.T) {
	states := map[string]bool{}
	for _, s := range consts.States {
		states[s] = true
	}

	for alias, canonical := range consts.RegionAliases {
		assert.True(t, states[canonical], "alias %q points to unknown state %q", alias, canonical)
	}
}
