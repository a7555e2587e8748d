package tracker

import (
	"net/http"

	domain "github.com/louisbranch/covidtracker/internal/services/tracker"
	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	apperrors "github.com/louisbranch/covidtracker/internal/services/web/platform/errors"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/pagerender"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/weberror"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/covidtracker/internal/services/web/templates"
)

const pageTitle = "COVID Tracker"

// lastUpdatedLayout matches the map title date, e.g. 2021-03-07.
const lastUpdatedLayout = "2006-01-02"

var errUnconfigured = apperrors.E(apperrors.KindUnavailable, "Live tracking data is not configured.")

type handlers struct {
	snapshots module.TrackerSnapshots
}

func newHandlers(snapshots module.TrackerSnapshots) handlers {
	return handlers{snapshots: snapshots}
}

// handleIndex renders the dashboard. When the snapshot cannot be loaded the
// page still renders with a notice and the mapped status.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	view, status := h.view(r)
	if err := pagerender.WriteModulePage(w, r, pagerender.ModulePage{
		Title:      pageTitle,
		Active:     routepath.Tracker,
		StatusCode: status,
		Fragment:   webtemplates.TrackerPage(view),
	}); err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

func (h handlers) view(r *http.Request) (webtemplates.TrackerView, int) {
	if h.snapshots == nil {
		return unavailable(errUnconfigured)
	}
	snapshot, err := h.snapshots.Snapshot(r.Context())
	if err != nil {
		return unavailable(err)
	}
	return View(snapshot), http.StatusOK
}

// View maps a snapshot onto the tracker page model.
func View(snapshot domain.Snapshot) webtemplates.TrackerView {
	view := webtemplates.TrackerView{
		Available: true,
		Positive:  snapshot.Totals.Positive,
		Recovered: snapshot.Totals.Recovered,
		Death:     snapshot.Totals.Death,
	}
	if !snapshot.LastUpdated.IsZero() {
		view.LastUpdated = snapshot.LastUpdated.Format(lastUpdatedLayout)
	}
	return view
}

func unavailable(err error) (webtemplates.TrackerView, int) {
	return webtemplates.TrackerView{Notice: apperrors.PublicMessage(err)}, apperrors.HTTPStatus(err)
}
