package services

import (
	"math"

	"github.com/mietwerk/hauskasse/internal/models"
)

// ValuationParams are the user-adjustable assumptions for the gross-rent-
// multiplier method. The ratio and adjustment are percentages.
type ValuationParams struct {
	GrossRentMultiplier   float64 `json:"grossRentMultiplier"`
	OperatingExpenseRatio float64 `json:"operatingExpenseRatio"`
	ValueAdjustment       float64 `json:"valueAdjustment"`
}

type PropertyEvaluation struct {
	Possible           bool    `json:"evaluationPossible"`
	TotalMonthlyRent   float64 `json:"totalMonthlyRent"`
	TotalYearlyRent    float64 `json:"totalYearlyRent"`
	NetOperatingIncome float64 `json:"netOperatingIncome"`
	EstimatedValue     float64 `json:"estimatedValue"`
	AdjustedValue      float64 `json:"adjustedValue"`
	ImpliedCapRate     float64 `json:"impliedCapRate"`
	ValueRangeLow      float64 `json:"valueRangeLow"`
	ValueRangeHigh     float64 `json:"valueRangeHigh"`
}

// EvaluateProperty estimates a property value from the yearly rent of its
// active units. The cap rate is derived from the multiplier, never an input.
// Without any rent there is nothing to capitalize and the result reports
// that no evaluation is possible instead of dividing by zero.
func EvaluateProperty(units []models.Unit, params ValuationParams) PropertyEvaluation {
	totalMonthly := 0.0
	for _, unit := range units {
		if !unit.IsActive {
			continue
		}
		totalMonthly += unit.MonthlyRent.Add(unit.StandardUtilities()).InexactFloat64()
	}

	totalYearly := totalMonthly * 12
	if totalYearly <= 0 {
		return PropertyEvaluation{Possible: false}
	}

	netOperatingIncome := totalYearly * (1 - params.OperatingExpenseRatio/100)
	estimatedValue := totalYearly * params.GrossRentMultiplier
	adjustedValue := estimatedValue * (1 + params.ValueAdjustment/100)

	impliedCapRate := 0.0
	if estimatedValue > 0 {
		impliedCapRate = netOperatingIncome / estimatedValue * 100
	}

	return PropertyEvaluation{
		Possible:           true,
		TotalMonthlyRent:   roundCents(totalMonthly),
		TotalYearlyRent:    roundCents(totalYearly),
		NetOperatingIncome: roundCents(netOperatingIncome),
		EstimatedValue:     roundCents(estimatedValue),
		AdjustedValue:      roundCents(adjustedValue),
		ImpliedCapRate:     roundCents(impliedCapRate),
		ValueRangeLow:      roundCents(adjustedValue * 0.9),
		ValueRangeHigh:     roundCents(adjustedValue * 1.1),
	}
}

type InvestmentComparison struct {
	Possible                 bool    `json:"comparisonPossible"`
	Years                    int     `json:"years"`
	PropertyFinalValue       float64 `json:"propertyFinalValue"`
	PropertyTotalIncome      float64 `json:"propertyTotalIncome"`
	PropertyCombinedValue    float64 `json:"propertyCombinedValue"`
	PropertyAnnualizedReturn float64 `json:"propertyAnnualizedReturn"`
	EtfFinalValue            float64 `json:"etfFinalValue"`
	EtfAnnualizedReturn      float64 `json:"etfAnnualizedReturn"`
}

// CompareInvestment contrasts holding the property for the given number of
// years against putting the same capital into an ETF. The property scenario
// compounds the value yearly and accumulates undistributed net rental
// income on the side; the ETF branch is lump-sum growth only, deliberately
// without the rental income. Rates are percentages.
func CompareInvestment(propertyValue float64, annualRent float64, annualExpenses float64, appreciationRate float64, etfRate float64, years int) InvestmentComparison {
	if propertyValue <= 0 || years <= 0 {
		return InvestmentComparison{Possible: false, Years: years}
	}

	compounded := propertyValue
	for year := 0; year < years; year++ {
		compounded *= 1 + appreciationRate/100
	}
	totalIncome := float64(years) * (annualRent - annualExpenses)
	combined := compounded + totalIncome

	annualizedReturn := math.Pow(combined/propertyValue, 1/float64(years)) - 1

	etfFinal := propertyValue * math.Pow(1+etfRate/100, float64(years))

	return InvestmentComparison{
		Possible:                 true,
		Years:                    years,
		PropertyFinalValue:       roundCents(compounded),
		PropertyTotalIncome:      roundCents(totalIncome),
		PropertyCombinedValue:    roundCents(combined),
		PropertyAnnualizedReturn: roundCents(annualizedReturn * 100),
		EtfFinalValue:            roundCents(etfFinal),
		EtfAnnualizedReturn:      etfRate,
	}
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
