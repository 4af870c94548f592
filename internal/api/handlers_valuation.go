package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mietwerk/hauskasse/internal/services"
)

func (handler *Handler) GetPropertySettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	if err := handler.requireOwnedProperty(user.ID, propertyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	settings, err := handler.repos.Settings.FindOrCreateByProperty(propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdatePropertySettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	if err := handler.requireOwnedProperty(user.ID, propertyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	var payload settingsPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	settings, err := handler.repos.Settings.FindOrCreateByProperty(propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	if payload.GrossRentMultiplier != nil {
		if *payload.GrossRentMultiplier <= 0 {
			return apiFieldError(c, "gross_rent_multiplier")
		}
		settings.GrossRentMultiplier = *payload.GrossRentMultiplier
	}
	if payload.OperatingExpenseRatio != nil {
		if *payload.OperatingExpenseRatio < 0 || *payload.OperatingExpenseRatio >= 100 {
			return apiFieldError(c, "operating_expense_ratio")
		}
		settings.OperatingExpenseRatio = *payload.OperatingExpenseRatio
	}
	if payload.ValueAdjustment != nil {
		settings.ValueAdjustment = *payload.ValueAdjustment
	}
	if payload.AppreciationRate != nil {
		settings.AppreciationRate = *payload.AppreciationRate
	}
	if payload.EtfRate != nil {
		settings.EtfRate = *payload.EtfRate
	}
	if payload.ComparisonYears != nil {
		if *payload.ComparisonYears <= 0 {
			return apiFieldError(c, "comparison_years")
		}
		settings.ComparisonYears = *payload.ComparisonYears
	}

	if err := handler.repos.Settings.Save(&settings); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(settings)
}

func (handler *Handler) PropertyValuation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	if err := handler.requireOwnedProperty(user.ID, propertyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	settings, err := handler.repos.Settings.FindOrCreateByProperty(propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	params := services.ValuationParams{
		GrossRentMultiplier:   settings.GrossRentMultiplier,
		OperatingExpenseRatio: settings.OperatingExpenseRatio,
		ValueAdjustment:       settings.ValueAdjustment,
	}
	if err := applyValuationOverrides(c, &params); err != nil {
		return apiFieldError(c, err.Error())
	}

	units, err := handler.repos.Units.ListActiveByProperty(propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	evaluation := services.EvaluateProperty(units, params)
	return c.JSON(fiber.Map{
		"evaluation": evaluation,
		"params":     params,
	})
}

func (handler *Handler) InvestmentComparison(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	if err := handler.requireOwnedProperty(user.ID, propertyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	settings, err := handler.repos.Settings.FindOrCreateByProperty(propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	units, err := handler.repos.Units.ListActiveByProperty(propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	params := services.ValuationParams{
		GrossRentMultiplier:   settings.GrossRentMultiplier,
		OperatingExpenseRatio: settings.OperatingExpenseRatio,
		ValueAdjustment:       settings.ValueAdjustment,
	}
	evaluation := services.EvaluateProperty(units, params)
	if !evaluation.Possible {
		return c.JSON(fiber.Map{
			"evaluation": evaluation,
			"comparison": services.InvestmentComparison{},
		})
	}

	annualExpenses := evaluation.TotalYearlyRent * settings.OperatingExpenseRatio / 100
	comparison := services.CompareInvestment(
		evaluation.AdjustedValue,
		evaluation.TotalYearlyRent,
		annualExpenses,
		settings.AppreciationRate,
		settings.EtfRate,
		settings.ComparisonYears,
	)
	return c.JSON(fiber.Map{
		"evaluation": evaluation,
		"comparison": comparison,
	})
}

// applyValuationOverrides lets callers preview a valuation with alternative
// assumptions via query parameters without persisting them. The returned
// error names the offending field.
func applyValuationOverrides(c *fiber.Ctx, params *services.ValuationParams) error {
	overrides := []struct {
		query  string
		field  string
		target *float64
	}{
		{"grossRentMultiplier", "gross_rent_multiplier", &params.GrossRentMultiplier},
		{"operatingExpenseRatio", "operating_expense_ratio", &params.OperatingExpenseRatio},
		{"valueAdjustment", "value_adjustment", &params.ValueAdjustment},
	}

	for _, override := range overrides {
		raw := strings.TrimSpace(c.Query(override.query))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fieldNameError(override.field)
		}
		*override.target = value
	}
	return nil
}

type fieldNameError string

func (err fieldNameError) Error() string { return string(err) }
