package services

import (
	"github.com/mietwerk/hauskasse/internal/models"
)

type fakeUnitRepository struct {
	unit        models.Unit
	found       bool
	savedUnit   *models.Unit
	savedRows   []models.Rental
	ownerUserID uint
}

func (repo *fakeUnitRepository) FindOwned(userID uint, unitID uint) (models.Unit, bool, error) {
	if !repo.found || unitID != repo.unit.ID || userID != repo.ownerUserID {
		return models.Unit{}, false, nil
	}
	return repo.unit, true, nil
}

func (repo *fakeUnitRepository) SaveStandardsWithRentals(unit *models.Unit, rentals []models.Rental) error {
	saved := *unit
	repo.savedUnit = &saved
	repo.unit = saved
	repo.savedRows = append([]models.Rental(nil), rentals...)
	return nil
}

type rentalKey struct {
	unitID uint
	month  int
	year   int
}

type fakeRentalRepository struct {
	rows   map[rentalKey]models.Rental
	nextID uint
}

func newFakeRentalRepository() *fakeRentalRepository {
	return &fakeRentalRepository{rows: make(map[rentalKey]models.Rental), nextID: 1}
}

func (repo *fakeRentalRepository) ListByUnitAndYear(unitID uint, year int) ([]models.Rental, error) {
	rentals := make([]models.Rental, 0)
	for key, row := range repo.rows {
		if key.unitID == unitID && key.year == year {
			rentals = append(rentals, row)
		}
	}
	return rentals, nil
}

func (repo *fakeRentalRepository) ListFrom(unitID uint, fromMonth int, fromYear int) ([]models.Rental, error) {
	rentals := make([]models.Rental, 0)
	for key, row := range repo.rows {
		if key.unitID != unitID {
			continue
		}
		if key.year > fromYear || (key.year == fromYear && key.month >= fromMonth) {
			rentals = append(rentals, row)
		}
	}
	return rentals, nil
}

func (repo *fakeRentalRepository) FindByUnitMonthYear(unitID uint, month int, year int) (models.Rental, bool, error) {
	row, ok := repo.rows[rentalKey{unitID: unitID, month: month, year: year}]
	return row, ok, nil
}

func (repo *fakeRentalRepository) Create(rental *models.Rental) error {
	rental.ID = repo.nextID
	repo.nextID++
	repo.rows[rentalKey{unitID: rental.UnitID, month: rental.Month, year: rental.Year}] = *rental
	return nil
}

func (repo *fakeRentalRepository) Save(rental *models.Rental) error {
	repo.rows[rentalKey{unitID: rental.UnitID, month: rental.Month, year: rental.Year}] = *rental
	return nil
}

func (repo *fakeRentalRepository) count() int {
	return len(repo.rows)
}
