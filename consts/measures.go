package consts

import "time"

const (
	// EffectLagDays is the number of days before a measure is expected to
	// show in the reported case counts.
	EffectLagDays = 15
	EffectLag     = EffectLagDays * 24 * time.Hour

	// PerCapitaBase is the population unit used by normalized series.
	PerCapitaBase = 100000

	// HoverWrapWidth is the minimum line length of wrapped hover text.
	HoverWrapWidth = 80

	// AllCategories selects every known category tag.
	AllCategories = "all"
)
