package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized("**menu dégustation** en sept services")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<strong>menu dégustation</strong>")
}

func TestToHTMLSanitizedStripsScripts(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized(`hello <script>alert("x")</script> world`)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
	assert.Contains(t, string(out), "hello")
}
