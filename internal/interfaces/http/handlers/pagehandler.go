package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"boisdebene/internal/content"
	"boisdebene/internal/i18n"
	"boisdebene/internal/interfaces/http/middleware"
	"boisdebene/internal/shared/logger"
	"boisdebene/internal/shared/services/markdown"
)

// PageHandler renders the informational pages from the bundled content.
type PageHandler struct {
	content  *content.Content
	markdown markdown.Renderer
	logger   logger.Interface
}

func NewPageHandler(c *content.Content, md markdown.Renderer, log logger.Interface) *PageHandler {
	return &PageHandler{
		content:  c,
		markdown: md,
		logger:   log,
	}
}

// pageView is the data every page template receives. The resolver is
// threaded per request; templates resolve text through T and R instead of
// any shared language state.
type pageView struct {
	resolver *i18n.Resolver
	content  *content.Content

	Lang    string
	Path    string
	Menu    []content.MenuCategory
	Events  []eventView
	Gallery []content.GalleryImage
}

type eventView struct {
	Title       string
	Description template.HTML
	Date        string
	Time        string
}

// T resolves a translation key.
func (v pageView) T(key string) string {
	return v.content.T(v.resolver, key)
}

// R resolves an arbitrary bilingual record.
func (v pageView) R(key string, text i18n.Text) string {
	return v.resolver.Resolve(key, text)
}

func (h *PageHandler) view(c *gin.Context) pageView {
	resolver := middleware.ResolverFrom(c)
	return pageView{
		resolver: resolver,
		content:  h.content,
		Lang:     string(resolver.Locale()),
		Path:     c.Request.URL.Path,
	}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", h.view(c))
}

func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.view(c))
}

func (h *PageHandler) Menu(c *gin.Context) {
	v := h.view(c)
	v.Menu = h.content.Menu
	c.HTML(http.StatusOK, "menu.html", v)
}

func (h *PageHandler) Events(c *gin.Context) {
	v := h.view(c)
	resolver := middleware.ResolverFrom(c)

	for _, event := range h.content.Events {
		description, err := h.markdown.ToHTMLSanitized(
			resolver.Resolve("event.description", event.Description))
		if err != nil {
			h.logger.Warnw("failed to render event description",
				"event", event.Title.FR,
				"error", err)
			description = ""
		}

		date := event.Date
		if parsed, err := time.Parse("2006-01-02", event.Date); err == nil {
			date = i18n.FormatLongDate(resolver.Locale(), parsed)
		}

		v.Events = append(v.Events, eventView{
			Title:       resolver.Resolve("event.title", event.Title),
			Description: description,
			Date:        date,
			Time:        event.Time,
		})
	}

	c.HTML(http.StatusOK, "events.html", v)
}

func (h *PageHandler) Gallery(c *gin.Context) {
	v := h.view(c)
	v.Gallery = h.content.Gallery
	c.HTML(http.StatusOK, "gallery.html", v)
}

func (h *PageHandler) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", h.view(c))
}
