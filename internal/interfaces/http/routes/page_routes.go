package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boisdebene/internal/interfaces/http/handlers"
)

type PageRouteConfig struct {
	PageHandler *handlers.PageHandler
}

func SetupPageRoutes(engine *gin.Engine, config *PageRouteConfig) {
	engine.GET("/", config.PageHandler.Home)
	engine.GET("/about", config.PageHandler.About)
	engine.GET("/menu", config.PageHandler.Menu)
	engine.GET("/events", config.PageHandler.Events)
	engine.GET("/gallery", config.PageHandler.Gallery)
	engine.GET("/contact", config.PageHandler.Contact)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
