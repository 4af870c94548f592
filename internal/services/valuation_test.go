package services

import (
	"testing"

	"github.com/mietwerk/hauskasse/internal/models"
	"github.com/shopspring/decimal"
)

func TestEvaluatePropertySingleUnit(t *testing.T) {
	units := []models.Unit{{
		ID:          1,
		MonthlyRent: decimal.NewFromInt(1000),
		IsActive:    true,
	}}

	evaluation := EvaluateProperty(units, ValuationParams{
		GrossRentMultiplier:   12,
		OperatingExpenseRatio: 25,
		ValueAdjustment:       0,
	})

	if !evaluation.Possible {
		t.Fatal("expected evaluation to be possible")
	}
	if evaluation.TotalYearlyRent != 12000 {
		t.Fatalf("expected yearly rent 12000, got %.2f", evaluation.TotalYearlyRent)
	}
	if evaluation.EstimatedValue != 144000 {
		t.Fatalf("expected estimated value 144000, got %.2f", evaluation.EstimatedValue)
	}
	if evaluation.NetOperatingIncome != 9000 {
		t.Fatalf("expected NOI 9000, got %.2f", evaluation.NetOperatingIncome)
	}
	if evaluation.ImpliedCapRate != 6.25 {
		t.Fatalf("expected cap rate 6.25, got %.2f", evaluation.ImpliedCapRate)
	}
	if evaluation.ValueRangeLow != 129600 || evaluation.ValueRangeHigh != 158400 {
		t.Fatalf("expected range [129600, 158400], got [%.2f, %.2f]",
			evaluation.ValueRangeLow, evaluation.ValueRangeHigh)
	}
}

func TestEvaluatePropertyAppliesValueAdjustment(t *testing.T) {
	units := []models.Unit{{
		MonthlyRent:      decimal.NewFromInt(1000),
		MonthlyUtilities: decimal.NewNullDecimal(decimal.NewFromInt(100)),
		IsActive:         true,
	}}

	evaluation := EvaluateProperty(units, ValuationParams{
		GrossRentMultiplier:   20,
		OperatingExpenseRatio: 30,
		ValueAdjustment:       10,
	})

	if evaluation.TotalYearlyRent != 13200 {
		t.Fatalf("expected yearly rent 13200, got %.2f", evaluation.TotalYearlyRent)
	}
	if evaluation.EstimatedValue != 264000 {
		t.Fatalf("expected estimated value 264000, got %.2f", evaluation.EstimatedValue)
	}
	if evaluation.AdjustedValue != 290400 {
		t.Fatalf("expected adjusted value 290400, got %.2f", evaluation.AdjustedValue)
	}
	if evaluation.ImpliedCapRate != 3.5 {
		t.Fatalf("expected cap rate 3.5, got %.2f", evaluation.ImpliedCapRate)
	}
}

func TestEvaluatePropertySkipsInactiveUnits(t *testing.T) {
	units := []models.Unit{
		{MonthlyRent: decimal.NewFromInt(1000), IsActive: true},
		{MonthlyRent: decimal.NewFromInt(5000), IsActive: false},
	}

	evaluation := EvaluateProperty(units, ValuationParams{GrossRentMultiplier: 10})
	if evaluation.TotalMonthlyRent != 1000 {
		t.Fatalf("expected inactive units skipped, got monthly rent %.2f", evaluation.TotalMonthlyRent)
	}
}

func TestEvaluatePropertyWithoutRent(t *testing.T) {
	evaluation := EvaluateProperty(nil, ValuationParams{GrossRentMultiplier: 20})
	if evaluation.Possible {
		t.Fatal("expected evaluation to be impossible without units")
	}

	inactiveOnly := []models.Unit{{MonthlyRent: decimal.NewFromInt(1000), IsActive: false}}
	evaluation = EvaluateProperty(inactiveOnly, ValuationParams{GrossRentMultiplier: 20})
	if evaluation.Possible {
		t.Fatal("expected evaluation to be impossible with only inactive units")
	}
}

func TestCompareInvestment(t *testing.T) {
	comparison := CompareInvestment(100000, 12000, 3000, 2, 7, 10)

	if !comparison.Possible {
		t.Fatal("expected comparison to be possible")
	}
	if comparison.PropertyFinalValue != 121899.44 {
		t.Fatalf("expected compounded value 121899.44, got %.2f", comparison.PropertyFinalValue)
	}
	if comparison.PropertyTotalIncome != 90000 {
		t.Fatalf("expected total income 90000, got %.2f", comparison.PropertyTotalIncome)
	}
	if comparison.PropertyCombinedValue != 211899.44 {
		t.Fatalf("expected combined value 211899.44, got %.2f", comparison.PropertyCombinedValue)
	}
	if comparison.PropertyAnnualizedReturn != 7.8 {
		t.Fatalf("expected annualized return 7.8, got %.2f", comparison.PropertyAnnualizedReturn)
	}
	if comparison.EtfFinalValue != 196715.14 {
		t.Fatalf("expected ETF value 196715.14, got %.2f", comparison.EtfFinalValue)
	}
}

func TestCompareInvestmentRejectsDegenerateInput(t *testing.T) {
	if CompareInvestment(0, 12000, 3000, 2, 7, 10).Possible {
		t.Fatal("expected comparison impossible without capital")
	}
	if CompareInvestment(100000, 12000, 3000, 2, 7, 0).Possible {
		t.Fatal("expected comparison impossible without a horizon")
	}
}
