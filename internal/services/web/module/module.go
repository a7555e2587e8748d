// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"net/http"

	"github.com/louisbranch/covidtracker/internal/services/survival/estimate"
	"github.com/louisbranch/covidtracker/internal/services/tracker"
)

// SurvivalEstimator computes survival estimates for calculator selections.
type SurvivalEstimator interface {
	SurvivalRate(ctx context.Context, query estimate.Query) (estimate.Estimate, error)
}

// TrackerSnapshots returns the current live tracking snapshot.
type TrackerSnapshots interface {
	Snapshot(ctx context.Context) (tracker.Snapshot, error)
}

// Dependencies carries the domain collaborators shared by web modules.
type Dependencies struct {
	Survival SurvivalEstimator
	Tracker  TrackerSnapshots
}

// Mount describes a module route mount. Aliases are extra root patterns
// served by the same handler.
type Mount struct {
	Prefix  string
	Aliases []string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
