package routes

import (
	"github.com/gin-gonic/gin"

	"boisdebene/internal/interfaces/http/handlers"
)

type ReservationRouteConfig struct {
	ReservationHandler *handlers.ReservationHandler
}

func SetupReservationRoutes(engine *gin.Engine, config *ReservationRouteConfig) {
	api := engine.Group("/api")
	{
		api.POST("/reservations", config.ReservationHandler.Submit)
	}
}
