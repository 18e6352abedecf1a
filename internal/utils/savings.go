package utils

// Running-cost assumptions for the savings calculator. Fuel and power
// prices are fixed snapshots, not live rates.
const (
	PetrolPricePerLitre = 105.0 // ₹/L
	PetrolKmPerLitre    = 45.0  // km/L for a comparable petrol scooter
	ElectricityPerUnit  = 8.0   // ₹/kWh
	ElectricKmPerUnit   = 15.0  // km/kWh
	daysPerMonth        = 30
	daysPerYear         = 365
)

// Savings holds the petrol-vs-electric running cost comparison for a given
// daily commute distance.
type Savings struct {
	DailyKm             float64 `json:"daily_km"`
	PetrolCostMonthly   float64 `json:"petrol_cost_monthly"`
	ElectricCostMonthly float64 `json:"electric_cost_monthly"`
	MonthlySavings      float64 `json:"monthly_savings"`
	AnnualSavings       float64 `json:"annual_savings"`
}

// CalculateSavings compares petrol and electricity running costs over the
// given daily distance. Distances at or below zero yield zero savings.
func CalculateSavings(dailyKm float64) Savings {
	if dailyKm < 0 {
		dailyKm = 0
	}

	petrolPerDay := dailyKm / PetrolKmPerLitre * PetrolPricePerLitre
	electricPerDay := dailyKm / ElectricKmPerUnit * ElectricityPerUnit
	perDay := petrolPerDay - electricPerDay

	return Savings{
		DailyKm:             dailyKm,
		PetrolCostMonthly:   petrolPerDay * daysPerMonth,
		ElectricCostMonthly: electricPerDay * daysPerMonth,
		MonthlySavings:      perDay * daysPerMonth,
		AnnualSavings:       perDay * daysPerYear,
	}
}
