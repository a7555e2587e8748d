// Package prescreen serves the symptom pre-scanner page.
package prescreen

import (
	"net/http"

	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

// Module provides the pre-scanner routes.
type Module struct{}

// New returns a pre-scanner module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "prescreen" }

// Mount wires pre-scanner route handlers.
func (Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers())
	return module.Mount{Prefix: routepath.PrescreenPrefix, Handler: mux}, nil
}
