package service

import (
	"fmt"
	"math"

	"policy-valuation/domain"
)

// Estimate computes cumulative premiums, surrender values and fees for
// input from the two anchor premium tables. It has no side effects.
func Estimate(
	low, high domain.ReferenceTable,
	input domain.ValuationInput,
) (domain.ValuationResult, error) {

	if err := validateInput(input); err != nil {
		return domain.ValuationResult{}, err
	}
	if err := checkTables(low, high, input.Years); err != nil {
		return domain.ValuationResult{}, err
	}

	years := input.Years

	// each anchor table at the requested rate
	lowValues := interpolateRows(low.Rates, low.Rows, input.InterestRate, years)
	highValues := interpolateRows(high.Rates, high.Rows, input.InterestRate, years)

	// one linear model in premium through both anchors, unbounded
	ratio := (input.Premium - low.Premium) / (high.Premium - low.Premium)

	surrender := make([]int64, years)
	for i := range surrender {
		blended := lowValues[i] + ratio*(highValues[i]-lowValues[i])
		surrender[i] = toCurrency(blended * TableValueUnit)
	}

	annualPremium := input.Premium * MonthsPerYear

	cumulative := make([]float64, years)
	for i := range cumulative {
		cumulative[i] = annualPremium * float64(i+1)
	}

	fees := deriveFees(surrender, annualPremium, input.InterestRate)

	result := domain.ValuationResult{
		CumulativePremiums: cumulative,
		SurrenderValues:    surrender,
		Fees:               fees,
	}
	result.Years = summarize(result)

	return result, nil
}

// deriveFees folds over the surrender values carrying the previous year's
// value. A year's fee is what the compounded previous value plus the annual
// premium should have reached minus the actual value, floored at zero.
func deriveFees(values []int64, annualPremium, interestRate float64) []int64 {
	fees := make([]int64, len(values))
	growth := 1 + interestRate/100

	var previous float64
	for n, value := range values {
		expected := annualPremium
		if n > 0 {
			expected = previous*growth + annualPremium
		}
		fees[n] = toCurrency(expected - float64(value))
		previous = float64(value)
	}
	return fees
}

// toCurrency rounds half to even and floors at zero.
func toCurrency(v float64) int64 {
	r := math.RoundToEven(v)
	if r <= 0 {
		return 0
	}
	return int64(r)
}

func validateInput(input domain.ValuationInput) error {
	p := input.Premium
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return fmt.Errorf("%w: %v must be a positive number", ErrInvalidPremium, p)
	}
	if p > MaxPremium {
		return fmt.Errorf("%w: %.2f exceeds the maximum of %d", ErrInvalidPremium, p, MaxPremium)
	}

	r := input.InterestRate
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("%w: %v is not a finite number", ErrInvalidInterestRate, r)
	}
	if math.Abs(r) > MaxInterestRate {
		return fmt.Errorf("%w: %.2f%% exceeds ±%.0f%%", ErrInvalidInterestRate, r, MaxInterestRate)
	}

	if input.Years < MinYears || input.Years > MaxYears {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrYearsOutOfRange, input.Years, MinYears, MaxYears)
	}
	return nil
}

func checkTables(low, high domain.ReferenceTable, years int) error {
	if high.Premium == low.Premium {
		return fmt.Errorf("%w: anchor premiums are equal", ErrComputation)
	}
	for _, t := range []domain.ReferenceTable{low, high} {
		if len(t.Rates) < 2 {
			return fmt.Errorf("%w: premium %.0f table needs at least 2 rates", ErrComputation, t.Premium)
		}
		if len(t.Rows) < years {
			return fmt.Errorf("%w: %d years requested, premium %.0f table has %d rows",
				ErrYearsOutOfRange, years, t.Premium, len(t.Rows))
		}
		for i := 0; i < years; i++ {
			if len(t.Rows[i]) != len(t.Rates) {
				return fmt.Errorf("%w: premium %.0f year %d has %d values for %d rates",
					ErrComputation, t.Premium, i+1, len(t.Rows[i]), len(t.Rates))
			}
		}
	}
	return nil
}
