package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Use(handler.LanguageMiddleware)

	app.Get("/healthz", handler.Health)

	auth := app.Group("/api/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	settings := app.Group("/api/settings", handler.AuthRequired)
	settings.Put("/password", handler.ChangePassword)

	properties := app.Group("/api/properties", handler.AuthRequired)
	properties.Get("", handler.ListProperties)
	properties.Post("", handler.CreateProperty)
	properties.Get("/:id", handler.GetProperty)
	properties.Put("/:id", handler.UpdateProperty)
	properties.Delete("/:id", handler.DeleteProperty)
	properties.Get("/:id/units", handler.ListUnits)
	properties.Post("/:id/units", handler.CreateUnit)
	properties.Get("/:id/persons", handler.ListPropertyPersons)
	properties.Post("/:id/persons", handler.AssignPropertyPerson)
	properties.Delete("/:id/persons/:personId", handler.RemovePropertyPerson)
	properties.Get("/:id/settings", handler.GetPropertySettings)
	properties.Put("/:id/settings", handler.UpdatePropertySettings)
	properties.Get("/:id/valuation", handler.PropertyValuation)
	properties.Get("/:id/investment-comparison", handler.InvestmentComparison)

	units := app.Group("/api/units", handler.AuthRequired)
	units.Get("/:id", handler.GetUnit)
	units.Put("/:id", handler.UpdateUnit)
	units.Delete("/:id", handler.DeleteUnit)
	units.Get("/:id/yearly-overview", handler.YearlyOverview)
	units.Post("/:id/yearly-overview", handler.UpsertMonthEntry)
	units.Put("/:id/standard-rent", handler.UpdateStandardRent)
	units.Get("/:id/persons", handler.ListUnitPersons)
	units.Post("/:id/persons", handler.AssignUnitPerson)
	units.Delete("/:id/persons/:personId", handler.RemoveUnitPerson)

	persons := app.Group("/api/persons", handler.AuthRequired)
	persons.Get("", handler.ListPersons)
	persons.Post("", handler.CreatePerson)
	persons.Get("/:id", handler.GetPerson)
	persons.Put("/:id", handler.UpdatePerson)
	persons.Delete("/:id", handler.DeletePerson)

	app.Use(handler.NotFound)
}
