package service

import (
	"github.com/shopspring/decimal"

	"policy-valuation/domain"
)

var hundred = decimal.NewFromInt(100)

// summarize builds the per-year view with gain/loss and fee percentages of
// the cumulative premiums, rounded to 2 decimals.
func summarize(result domain.ValuationResult) []domain.YearSummary {
	rows := make([]domain.YearSummary, len(result.SurrenderValues))

	for i := range rows {
		paid := decimal.NewFromFloat(result.CumulativePremiums[i])
		value := decimal.NewFromInt(result.SurrenderValues[i])
		fee := decimal.NewFromInt(result.Fees[i])

		rows[i] = domain.YearSummary{
			Year:              i + 1,
			CumulativePremium: result.CumulativePremiums[i],
			EstimatedValue:    result.SurrenderValues[i],
			GainLossPct:       percentOf(value.Sub(paid), paid),
			Fee:               result.Fees[i],
			FeePct:            percentOf(fee, paid),
		}
	}
	return rows
}

func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(2).InexactFloat64()
}
