// Package info serves the static appreciation and guidance pages.
package info

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/pagerender"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/weberror"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/covidtracker/internal/services/web/templates"
)

// Module serves one static page under its own prefix.
type Module struct {
	id    string
	path  string
	title string
	page  func() templ.Component
}

// NewAppreciation returns the frontline responder appreciation module.
func NewAppreciation() Module {
	return newStaticModule("appreciation", routepath.Appreciation, "Frontline Responder Appreciation", webtemplates.AppreciationPage)
}

// NewGuidance returns the coronavirus information module.
func NewGuidance() Module {
	return newStaticModule("info", routepath.Info, "Coronavirus Information", webtemplates.InfoPage)
}

func newStaticModule(id, path, title string, page func() templ.Component) Module {
	return Module{
		id:    strings.TrimSpace(id),
		path:  strings.TrimSpace(path),
		title: title,
		page:  page,
	}
}

// ID returns a stable module identifier.
func (m Module) ID() string { return m.id }

// Mount wires the page under path and path/.
func (m Module) Mount() (module.Mount, error) {
	prefix := m.path + "/"
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+m.path, m.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+prefix+"{$}", m.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+prefix+"{rest...}", m.handleNotFound)
	return module.Mount{Prefix: prefix, Handler: mux}, nil
}

func (m Module) handleIndex(w http.ResponseWriter, r *http.Request) {
	var fragment templ.Component
	if m.page != nil {
		fragment = m.page()
	}
	if err := pagerender.WriteModulePage(w, r, pagerender.ModulePage{
		Title:    m.title,
		Active:   m.path,
		Fragment: fragment,
	}); err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func (m Module) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}
