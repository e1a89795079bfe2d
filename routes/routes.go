package routes

import (
	"rentride/handlers"
	"rentride/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Car      *handlers.CarHandler
	Booking  *handlers.BookingHandler
	Hold     *handlers.HoldHandler
	Delivery *handlers.DeliveryHandler
	Alerts   *handlers.AlertHandler
	Auth     *handlers.AuthHandler
}

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/health", handlers.HealthHandler)

	renters := r.Group("/api/renters")
	{
		renters.POST("/register", hb.Auth.RegisterHandler)
		renters.POST("/auth", hb.Auth.AuthenticateHandler)
	}

	cars := r.Group("/api/cars")
	{
		cars.GET("", hb.Car.ListCarsHandler)
		cars.GET("/:carId", hb.Car.GetCarHandler)

		held := cars.Group("")
		held.Use(middleware.JWTAuthRenterMiddleware())
		{
			held.POST("/hold-date/:carId", hb.Hold.HoldCarHandler)
			held.DELETE("/hold-date/:carId", hb.Hold.ReleaseCarHandler)
		}
	}

	RegisterBookingRoutes(r, hb)

	alerts := r.Group("/api/alerts")
	alerts.Use(middleware.JWTAuthRenterMiddleware())
	{
		alerts.GET("", hb.Alerts.FeedHandler)
	}
}
