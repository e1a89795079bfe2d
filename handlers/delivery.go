package handlers

import (
	"net/http"
	"strconv"

	carRepo "rentride/database/repository/car"
	"rentride/models"
	"rentride/services/routing"
	"rentride/utils"

	"github.com/gin-gonic/gin"
)

// DeliveryHandler exposes the routing collaborator's delivery estimate.
type DeliveryHandler struct {
	Cars    carRepo.CarRepository
	Routing routing.DeliveryEstimator
}

func NewDeliveryHandler(cars carRepo.CarRepository, routing routing.DeliveryEstimator) *DeliveryHandler {
	return &DeliveryHandler{Cars: cars, Routing: routing}
}

// EstimateHandler quotes the delivery fee from the car's garage to a drop-off
// point. GET /api/booking/delivery-estimate?carId=...&lat=...&lng=...
func (h *DeliveryHandler) EstimateHandler(c *gin.Context) {
	carID := c.Query("carId")
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if carID == "" || latStr == "" || lngStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameters",
			"carId, lat and lng are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid latitude", err.Error())
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid longitude", err.Error())
		return
	}

	car, err := h.Cars.GetByID(carID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch car", err.Error())
		return
	}
	if car == nil {
		utils.JSONError(c, http.StatusNotFound, "Car not found", "")
		return
	}

	estimate, err := h.Routing.EstimateDeliveryFee(c.Request.Context(), car.GarageLocation, models.GeoPoint{
		Latitude:  lat,
		Longitude: lng,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Delivery estimate unavailable", "Please try again later.")
		return
	}
	c.JSON(http.StatusOK, estimate)
}
