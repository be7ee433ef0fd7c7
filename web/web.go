// Package web bundles the page templates into the binary.
package web

import "embed"

//go:embed templates/*.html
var TemplatesFS embed.FS
