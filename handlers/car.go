package handlers

import (
	"net/http"

	carRepo "rentride/database/repository/car"
	"rentride/utils"

	"github.com/gin-gonic/gin"
)

// CarHandler serves the vehicle catalog.
type CarHandler struct {
	Repo carRepo.CarRepository
}

func NewCarHandler(repo carRepo.CarRepository) *CarHandler {
	return &CarHandler{Repo: repo}
}

// ListCarsHandler returns the catalog; ?available=true filters to rentable cars.
func (h *CarHandler) ListCarsHandler(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"

	cars, err := h.Repo.List(onlyAvailable)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list cars", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cars": cars})
}

// GetCarHandler returns a single catalog entry.
func (h *CarHandler) GetCarHandler(c *gin.Context) {
	carID := c.Param("carId")

	car, err := h.Repo.GetByID(carID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch car", err.Error())
		return
	}
	if car == nil {
		utils.JSONError(c, http.StatusNotFound, "Car not found", "")
		return
	}
	c.JSON(http.StatusOK, car)
}
