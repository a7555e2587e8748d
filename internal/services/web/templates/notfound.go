package templates

import (
	"context"

	"github.com/a-h/templ"
)

// NotFoundPage renders the unknown-path page.
func NotFoundPage(path string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section id="not-found" class="not-found"><h1 class="text-danger">404: Not found</h1><p>The pathname `)
		m.raw(`<code>`)
		m.text(path)
		m.raw(`</code> was not recognized...</p></section>`)
	})
}

// ErrorState renders a failure notice inside a page or fragment.
func ErrorState(title, message string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<div id="app-error-state" class="card card-danger" role="alert"><h5>`)
		m.text(title)
		m.raw(`</h5><p>`)
		m.text(message)
		m.raw(`</p></div>`)
	})
}
