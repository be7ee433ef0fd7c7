package http

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"

	appReservation "boisdebene/internal/application/reservation"
	"boisdebene/internal/content"
	"boisdebene/internal/infrastructure/config"
	"boisdebene/internal/infrastructure/email"
	"boisdebene/internal/interfaces/http/handlers"
	"boisdebene/internal/interfaces/http/middleware"
	"boisdebene/internal/interfaces/http/routes"
	"boisdebene/internal/shared/logger"
	"boisdebene/internal/shared/services/markdown"
	"boisdebene/web"
)

// Router wires the HTTP surface: middleware, page rendering and the
// reservation endpoint.
type Router struct {
	engine             *gin.Engine
	pageHandler        *handlers.PageHandler
	reservationHandler *handlers.ReservationHandler
}

func NewRouter(cfg *config.Config, siteContent *content.Content, mailer email.Mailer, log logger.Interface) (*Router, error) {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Locale())

	tmpl, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)

	reservationService := appReservation.NewService(mailer, cfg.Email, cfg.Site, log.Named("reservation"))

	return &Router{
		engine:             engine,
		pageHandler:        handlers.NewPageHandler(siteContent, markdown.NewRenderer(), log.Named("pages")),
		reservationHandler: handlers.NewReservationHandler(reservationService, log.Named("reservation")),
	}, nil
}

func (r *Router) SetupRoutes() {
	routes.SetupPageRoutes(r.engine, &routes.PageRouteConfig{
		PageHandler: r.pageHandler,
	})
	routes.SetupReservationRoutes(r.engine, &routes.ReservationRouteConfig{
		ReservationHandler: r.reservationHandler,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
