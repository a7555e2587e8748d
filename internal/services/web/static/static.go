// Package static embeds the dashboard stylesheet and chart script.
package static

import "embed"

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
