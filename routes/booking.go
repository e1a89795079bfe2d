package routes

import (
	"rentride/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	booking := r.Group("/api/booking")
	booking.Use(middleware.JWTAuthRenterMiddleware())
	{
		booking.POST("/quote", hb.Booking.QuoteHandler)
		booking.POST("/confirm", hb.Booking.ConfirmHandler)
		booking.GET("/mine", hb.Booking.MyBookingsHandler)
		booking.GET("/delivery-estimate", hb.Delivery.EstimateHandler)
	}
}
