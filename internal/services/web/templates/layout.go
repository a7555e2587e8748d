package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

// AppName is the document title and page heading.
const AppName = "USA COVID-19 Pandemic Tracker App"

const (
	htmxScriptURL   = "https://unpkg.com/htmx.org@2.0.4"
	plotlyScriptURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"
)

// NavItem is one navigation pill.
type NavItem struct {
	Label string
	Path  string
}

// NavItems returns the navigation pills in display order.
func NavItems() []NavItem {
	return []NavItem{
		{Label: "COVID Tracker", Path: routepath.Tracker},
		{Label: "COVID Pre-Scanner", Path: routepath.Prescreen},
		{Label: "COVID Survival Rate Calculator", Path: routepath.Survival},
		{Label: "Frontline Responder Appreciation", Path: routepath.Appreciation},
		{Label: "Coronavirus Information", Path: routepath.Info},
	}
}

// Layout renders the full document around its children. active is the path
// of the navigation pill to highlight; an empty value highlights none.
func Layout(title, active string) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.render(ctx, TitleTag(title))
		m.raw(`<link rel="stylesheet"`)
		m.attr("href", routepath.StaticStylesheet)
		m.raw(`><script defer`)
		m.attr("src", htmxScriptURL)
		m.raw(`></script><script defer`)
		m.attr("src", plotlyScriptURL)
		m.raw(`></script><script defer`)
		m.attr("src", routepath.StaticScript)
		m.raw(`></script></head><body><header class="app-header"><h1>`)
		m.text(AppName)
		m.raw(`</h1>`)
		m.render(ctx, Nav(active, false))
		m.raw(`</header>`)
		m.render(ctx, MainContent())
		m.raw(`</body></html>`)
	})
}

// TitleTag renders the document title. HTMX applies it on fragment swaps.
func TitleTag(title string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<title>`)
		m.text(DocumentTitle(title))
		m.raw(`</title>`)
	})
}

// DocumentTitle joins a page title with the application name.
func DocumentTitle(title string) string {
	if title == "" {
		return AppName
	}
	return title + " | " + AppName
}

// MainContent renders the swappable page region around its children. HTMX
// navigation replaces this element.
func MainContent() templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<main id="page-content" class="page-content">`)
		children(ctx, m)
		m.raw(`</main>`)
	})
}

// Nav renders the navigation pills. With oob set the element carries an HTMX
// out-of-band swap so fragment responses can move the active pill.
func Nav(active string, oob bool) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<nav id="app-nav" class="nav-pills"`)
		if oob {
			m.attr("hx-swap-oob", "true")
		}
		m.raw(`><ul>`)
		for _, item := range NavItems() {
			m.raw(`<li><a`)
			m.attr("href", item.Path)
			m.attr("hx-get", item.Path)
			m.attr("hx-target", "#page-content")
			m.attr("hx-swap", "outerHTML")
			m.attr("hx-push-url", "true")
			if item.Path == active {
				m.raw(` class="nav-pill active" aria-current="page"`)
			} else {
				m.raw(` class="nav-pill"`)
			}
			m.raw(`>`)
			m.text(item.Label)
			m.raw(`</a></li>`)
		}
		m.raw(`</ul></nav>`)
	})
}

// Disclaimer renders the footnote shown under a page.
func Disclaimer(text string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<p class="disclaimer">***`)
		m.text(text)
		m.raw(`***</p>`)
	})
}
