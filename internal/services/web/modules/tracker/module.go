// Package tracker serves the live tracking dashboard page.
package tracker

import (
	"net/http"

	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

// Module provides the tracker routes. It also answers the site root.
type Module struct {
	snapshots module.TrackerSnapshots
}

// New returns a tracker module reading from snapshots.
func New(snapshots module.TrackerSnapshots) Module {
	return Module{snapshots: snapshots}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "tracker" }

// Healthy reports whether the module has a snapshot source.
func (m Module) Healthy() bool {
	return m.snapshots != nil
}

// Mount wires tracker route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.snapshots))
	return module.Mount{
		Prefix:  routepath.TrackerPrefix,
		Aliases: []string{routepath.RootExact},
		Handler: mux,
	}, nil
}
