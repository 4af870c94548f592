package api

import (
	"errors"
	"time"

	"github.com/mietwerk/hauskasse/internal/db"
	"github.com/mietwerk/hauskasse/internal/i18n"
	"github.com/mietwerk/hauskasse/internal/services"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	repos        *db.Repositories
	ledger       *services.LedgerService
	standardRent *services.StandardRentService
	assignments  *services.AssignmentService
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	loginLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.Local
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	repos := db.NewRepositories(database)
	return &Handler{
		repos:        repos,
		ledger:       services.NewLedgerService(repos.Units, repos.Rentals),
		standardRent: services.NewStandardRentService(repos.Units, repos.Rentals),
		assignments:  services.NewAssignmentService(repos.Assignments),
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		loginLimiter: newAttemptLimiter(),
	}, nil
}

type credentialsInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	RememberMe      bool   `json:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type propertyPayload struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type unitPayload struct {
	Name             string           `json:"name"`
	UnitType         string           `json:"unit_type"`
	MonthlyRent      decimal.Decimal  `json:"monthly_rent"`
	MonthlyUtilities *decimal.Decimal `json:"monthly_utilities"`
	Size             string           `json:"size"`
	IsActive         *bool            `json:"is_active"`
}

type personPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
	IsActive  *bool  `json:"is_active"`
}

type monthEntryPayload struct {
	Month           int              `json:"month"`
	Year            int              `json:"year"`
	IsPaid          *bool            `json:"isPaid"`
	Notes           *string          `json:"notes"`
	RentAmount      *decimal.Decimal `json:"rentAmount"`
	UtilitiesAmount *decimal.Decimal `json:"utilitiesAmount"`
}

type standardRentPayload struct {
	MonthlyRent        decimal.Decimal  `json:"monthlyRent"`
	MonthlyUtilities   *decimal.Decimal `json:"monthlyUtilities"`
	EffectiveFromMonth int              `json:"effectiveFromMonth"`
	EffectiveFromYear  int              `json:"effectiveFromYear"`
	ForceUpdate        bool             `json:"forceUpdate"`
}

type assignmentPayload struct {
	PersonID uint   `json:"person_id"`
	Role     string `json:"role"`
}

type settingsPayload struct {
	GrossRentMultiplier   *float64 `json:"gross_rent_multiplier"`
	OperatingExpenseRatio *float64 `json:"operating_expense_ratio"`
	ValueAdjustment       *float64 `json:"value_adjustment"`
	AppreciationRate      *float64 `json:"appreciation_rate"`
	EtfRate               *float64 `json:"etf_rate"`
	ComparisonYears       *int     `json:"comparison_years"`
}
