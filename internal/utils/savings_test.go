package utils

import "testing"

func TestCalculateSavingsPositiveAtTypicalCommute(t *testing.T) {
	s := CalculateSavings(30)

	if s.MonthlySavings <= 0 {
		t.Fatalf("monthly savings should be positive at 30 km/day, got %v", s.MonthlySavings)
	}
	if s.AnnualSavings <= 0 {
		t.Fatalf("annual savings should be positive at 30 km/day, got %v", s.AnnualSavings)
	}
	if s.AnnualSavings <= s.MonthlySavings {
		t.Fatalf("annual savings %v should exceed monthly savings %v", s.AnnualSavings, s.MonthlySavings)
	}
}

func TestCalculateSavingsElectricAlwaysCheaper(t *testing.T) {
	for _, km := range []float64{1, 5, 15, 30, 80, 200} {
		s := CalculateSavings(km)
		if s.ElectricCostMonthly >= s.PetrolCostMonthly {
			t.Errorf("electric cost %v should be below petrol cost %v at %v km/day",
				s.ElectricCostMonthly, s.PetrolCostMonthly, km)
		}
	}
}

func TestCalculateSavingsClampsNegativeDistance(t *testing.T) {
	s := CalculateSavings(-10)
	if s.DailyKm != 0 || s.MonthlySavings != 0 || s.AnnualSavings != 0 {
		t.Fatalf("negative distance should clamp to zero, got %+v", s)
	}
}
