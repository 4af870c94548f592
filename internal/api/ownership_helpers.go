package api

import "github.com/mietwerk/hauskasse/internal/services"

// The require* helpers fold ownership checks into services.ErrNotFound so
// foreign rows are indistinguishable from missing ones.

func (handler *Handler) requireOwnedProperty(userID uint, propertyID uint) error {
	_, found, err := handler.repos.Properties.FindOwned(userID, propertyID)
	if err != nil {
		return err
	}
	if !found {
		return services.ErrNotFound
	}
	return nil
}

func (handler *Handler) requireOwnedUnit(userID uint, unitID uint) error {
	_, found, err := handler.repos.Units.FindOwned(userID, unitID)
	if err != nil {
		return err
	}
	if !found {
		return services.ErrNotFound
	}
	return nil
}

func (handler *Handler) requireOwnedPerson(userID uint, personID uint) error {
	_, found, err := handler.repos.Persons.FindOwned(userID, personID)
	if err != nil {
		return err
	}
	if !found {
		return services.ErrNotFound
	}
	return nil
}
