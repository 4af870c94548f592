package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Properties  *PropertyRepository
	Units       *UnitRepository
	Rentals     *RentalRepository
	Persons     *PersonRepository
	Assignments *AssignmentRepository
	Settings    *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Properties:  NewPropertyRepository(database),
		Units:       NewUnitRepository(database),
		Rentals:     NewRentalRepository(database),
		Persons:     NewPersonRepository(database),
		Assignments: NewAssignmentRepository(database),
		Settings:    NewSettingsRepository(database),
	}
}
