package domain

type ValuationInput struct {
	Premium      float64 `json:"premium"`       // monthly premium
	InterestRate float64 `json:"interest_rate"` // annual, in percent
	Years        int     `json:"years"`
}

type YearSummary struct {
	Year              int     `json:"year"`
	CumulativePremium float64 `json:"cumulative_premium"`
	EstimatedValue    int64   `json:"estimated_value"`
	GainLossPct       float64 `json:"gain_loss_pct"`
	Fee               int64   `json:"fee"`
	FeePct            float64 `json:"fee_pct"`
}

// ValuationResult holds one entry per contract year in every sequence.
type ValuationResult struct {
	CumulativePremiums []float64     `json:"cumulative_premiums"`
	SurrenderValues    []int64       `json:"surrender_values"`
	Fees               []int64       `json:"fees"`
	Years              []YearSummary `json:"years,omitempty"`
}
