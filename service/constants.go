package service

const (
	MonthsPerYear  = 12
	TableValueUnit = 1000.0 // reference tables are expressed per 1000 units

	MinYears        = 1
	MaxYears        = 35        // rows in the reference tables
	MaxPremium      = 1_000_000 // monthly
	MaxInterestRate = 100.0     // absolute value, percent per year
)
