package consts

import (
	"strings"
)

// RegionAliases maps known misspellings, abbreviations and transliterations
// of German federal states to their canonical name.
var RegionAliases map[string]string

// States lists the canonical names of the 16 federal states.
var States = []string{
	"Baden-Württemberg",
	"Bayern",
	"Berlin",
	"Brandenburg",
	"Bremen",
	"Hamburg",
	"Hessen",
	"Mecklenburg-Vorpommern",
	"Niedersachsen",
	"Nordrhein-Westfalen",
	"Rheinland-Pfalz",
	"Saarland",
	"Sachsen",
	"Sachsen-Anhalt",
	"Schleswig-Holstein",
	"Thüringen",
}

func init() {
	RegionAliases = make(map[string]string)

	RegionAliases["Baden-Würtemberg"] = "Baden-Württemberg"
	RegionAliases["Baden-Wuerttemberg"] = "Baden-Württemberg"
	RegionAliases["Baden Württemberg"] = "Baden-Württemberg"
	RegionAliases["BW"] = "Baden-Württemberg"
	RegionAliases["Bavaria"] = "Bayern"
	RegionAliases["BY"] = "Bayern"
	RegionAliases["BE"] = "Berlin"
	RegionAliases["BB"] = "Brandenburg"
	RegionAliases["HB"] = "Bremen"
	RegionAliases["HH"] = "Hamburg"
	RegionAliases["Hesse"] = "Hessen"
	RegionAliases["HE"] = "Hessen"
	RegionAliases["Mecklenburg Vorpommern"] = "Mecklenburg-Vorpommern"
	RegionAliases["Mecklenburg-Western Pomerania"] = "Mecklenburg-Vorpommern"
	RegionAliases["MV"] = "Mecklenburg-Vorpommern"
	RegionAliases["Lower Saxony"] = "Niedersachsen"
	RegionAliases["NI"] = "Niedersachsen"
	RegionAliases["NRW"] = "Nordrhein-Westfalen"
	RegionAliases["Nordrhein Westfalen"] = "Nordrhein-Westfalen"
	RegionAliases["North Rhine-Westphalia"] = "Nordrhein-Westfalen"
	RegionAliases["NW"] = "Nordrhein-Westfalen"
	RegionAliases["Rheinland Pfalz"] = "Rheinland-Pfalz"
	RegionAliases["Rhineland-Palatinate"] = "Rheinland-Pfalz"
	RegionAliases["RP"] = "Rheinland-Pfalz"
	RegionAliases["SL"] = "Saarland"
	RegionAliases["Saxony"] = "Sachsen"
	RegionAliases["SN"] = "Sachsen"
	RegionAliases["Sachsen Anhalt"] = "Sachsen-Anhalt"
	RegionAliases["Saxony-Anhalt"] = "Sachsen-Anhalt"
	RegionAliases["ST"] = "Sachsen-Anhalt"
	RegionAliases["Schleswig Holstein"] = "Schleswig-Holstein"
	RegionAliases["SH"] = "Schleswig-Holstein"
	RegionAliases["Thueringen"] = "Thüringen"
	RegionAliases["Thuringia"] = "Thüringen"
	RegionAliases["TH"] = "Thüringen"
}

// CanonicalRegion returns the canonical spelling of a region name. Names
// without an alias are returned trimmed but otherwise unchanged.
func CanonicalRegion(name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := RegionAliases[name]; ok {
		return canonical
	}
	return name
}
