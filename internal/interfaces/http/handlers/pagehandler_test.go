package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boisdebene/internal/content"
	"boisdebene/internal/interfaces/http/middleware"
	"boisdebene/internal/shared/logger"
	"boisdebene/internal/shared/services/markdown"
	"boisdebene/web"
)

func setupPageRouter(t *testing.T) *gin.Engine {
	t.Helper()

	siteContent, err := content.Load()
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.Locale())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(web.TemplatesFS, "templates/*.html")))

	handler := NewPageHandler(siteContent, markdown.NewRenderer(), logger.NewLogger())
	engine.GET("/", handler.Home)
	engine.GET("/about", handler.About)
	engine.GET("/menu", handler.Menu)
	engine.GET("/events", handler.Events)
	engine.GET("/gallery", handler.Gallery)
	engine.GET("/contact", handler.Contact)

	return engine
}

func render(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestHomeRendersFrenchByDefault(t *testing.T) {
	engine := setupPageRouter(t)

	rec := render(engine, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Accueil")
	assert.Contains(t, rec.Body.String(), `lang="fr"`)
}

func TestHomeRendersEnglishWithLangParam(t *testing.T) {
	engine := setupPageRouter(t)

	rec := render(engine, "/?lang=en")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Home")
	assert.Contains(t, rec.Body.String(), `lang="en"`)
}

func TestMenuRendersCategoriesAndPrices(t *testing.T) {
	engine := setupPageRouter(t)

	rec := render(engine, "/menu")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Entrées")
	assert.Contains(t, rec.Body.String(), "FCFA")

	rec = render(engine, "/menu?lang=en")
	assert.Contains(t, rec.Body.String(), "Starters")
}

func TestEventsRendersMarkdownDescriptions(t *testing.T) {
	engine := setupPageRouter(t)

	rec := render(engine, "/events")
	assert.Equal(t, http.StatusOK, rec.Code)
	// Bold markdown in the event copy comes out as markup, not asterisks.
	assert.Contains(t, rec.Body.String(), "<strong>")
	assert.NotContains(t, rec.Body.String(), "**")
}

func TestEventsRendersLongFormDates(t *testing.T) {
	engine := setupPageRouter(t)

	// 2025-12-31 is a Wednesday.
	rec := render(engine, "/events")
	assert.Contains(t, rec.Body.String(), "mercredi 31 décembre 2025")

	rec = render(engine, "/events?lang=en")
	assert.Contains(t, rec.Body.String(), "Wednesday, December 31, 2025")
}

func TestGalleryRendersImages(t *testing.T) {
	engine := setupPageRouter(t)

	rec := render(engine, "/gallery")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<img")
}

func TestContactRendersReservationForm(t *testing.T) {
	engine := setupPageRouter(t)

	rec := render(engine, "/contact")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="reservation-form"`)
	assert.Contains(t, rec.Body.String(), "/api/reservations")
}
