// Package content loads the bundled site content: UI translations, menu,
// events and gallery data. Content is read once from the embedded JSON
// files and is immutable afterwards.
package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"boisdebene/internal/i18n"
)

//go:embed data/*.json
var dataFS embed.FS

// MenuItem is one dish or drink on the menu.
type MenuItem struct {
	Name        i18n.Text `json:"name"`
	Description i18n.Text `json:"description"`
	Price       string    `json:"price"`
}

// MenuCategory groups menu items under a bilingual heading.
type MenuCategory struct {
	Name  i18n.Text  `json:"name"`
	Items []MenuItem `json:"items"`
}

// Event is one scheduled cabaret evening or concert. Description may carry
// markdown, rendered by the page layer.
type Event struct {
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
}

// GalleryImage is one photograph with a bilingual caption.
type GalleryImage struct {
	URL     string    `json:"url"`
	Caption i18n.Text `json:"caption"`
}

// Content is the full bundled site content.
type Content struct {
	Translations map[string]i18n.Text `json:"-"`
	Menu         []MenuCategory       `json:"-"`
	Events       []Event              `json:"-"`
	Gallery      []GalleryImage       `json:"-"`
}

// Load parses the embedded content files.
func Load() (*Content, error) {
	c := &Content{}

	if err := loadJSON("data/translations.json", &c.Translations); err != nil {
		return nil, err
	}
	if err := loadJSON("data/menu.json", &c.Menu); err != nil {
		return nil, err
	}
	if err := loadJSON("data/events.json", &c.Events); err != nil {
		return nil, err
	}
	if err := loadJSON("data/gallery.json", &c.Gallery); err != nil {
		return nil, err
	}

	return c, nil
}

func loadJSON(name string, v any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// T resolves a translation key through the given resolver. Unknown keys
// degrade to the key itself, matching the resolver's fallback behavior.
func (c *Content) T(r *i18n.Resolver, key string) string {
	return r.Resolve(key, c.Translations[key])
}
