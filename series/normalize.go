package series

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wirvsvirus/measures-dashboard/consts"
	"github.com/wirvsvirus/measures-dashboard/schema"
)

const (
	perCapitaPlaces = 2
)

var (
	ErrUnknownPopulation = fmt.Errorf("unknown population")
)

// Normalize returns a copy of merged with counts per 100,000 inhabitants of
// the region, rounded half to even at two decimal places.
func Normalize(merged schema.MergedSeries, region string, population map[string]int64) (schema.MergedSeries, error) {
	inhabitants, ok := population[region]
	if !ok || inhabitants <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPopulation, region)
	}
	divisor := decimal.New(inhabitants, 0).Div(decimal.New(consts.PerCapitaBase, 0))

	result := make(schema.MergedSeries, len(merged))
	for i, p := range merged {
		result[i] = schema.MergedPoint{
			Date:     p.Date,
			Infected: perCapita(p.Infected, divisor),
			Deaths:   perCapita(p.Deaths, divisor),
		}
	}
	return result, nil
}

func perCapita(value float64, divisor decimal.Decimal) float64 {
	f, _ := decimal.NewFromFloat(value).Div(divisor).RoundBank(perCapitaPlaces).Float64()
	return f
}
