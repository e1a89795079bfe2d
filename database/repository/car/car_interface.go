package carRepo

import (
	"time"

	"rentride/models"
)

// CarRepository defines data access for the vehicle catalog.
type CarRepository interface {
	GetByID(id string) (*models.Car, error)
	List(onlyAvailable bool) ([]models.Car, error)
	Create(car *models.Car) error
	Update(car *models.Car) error
	SetHeldUntil(id string, until time.Time) error
	ClearHeldUntil(id string) error
}
