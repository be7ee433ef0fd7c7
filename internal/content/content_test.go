package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boisdebene/internal/i18n"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Translations)
	assert.NotEmpty(t, c.Menu)
	assert.NotEmpty(t, c.Events)
	assert.NotEmpty(t, c.Gallery)
}

func TestTranslationsAreBilingual(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for key, text := range c.Translations {
		assert.NotEmpty(t, text.FR, "missing french rendering for %s", key)
		assert.NotEmpty(t, text.EN, "missing english rendering for %s", key)
	}
}

func TestMenuIsBilingual(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, category := range c.Menu {
		assert.NotEmpty(t, category.Name.FR)
		assert.NotEmpty(t, category.Name.EN)
		assert.NotEmpty(t, category.Items)
		for _, item := range category.Items {
			assert.NotEmpty(t, item.Name.FR)
			assert.NotEmpty(t, item.Name.EN)
			assert.NotEmpty(t, item.Price)
		}
	}
}

func TestT(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	fr := i18n.NewResolver(i18n.FR)
	en := i18n.NewResolver(i18n.EN)

	assert.Equal(t, "Accueil", c.T(fr, "nav.home"))
	assert.Equal(t, "Home", c.T(en, "nav.home"))

	// Unknown keys degrade to the key itself.
	assert.Equal(t, "nav.unknown", c.T(fr, "nav.unknown"))
}
