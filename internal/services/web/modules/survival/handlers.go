package survival

import (
	"context"
	"net/http"

	"github.com/louisbranch/covidtracker/internal/services/survival/estimate"
	"github.com/louisbranch/covidtracker/internal/services/survival/reference"
	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	apperrors "github.com/louisbranch/covidtracker/internal/services/web/platform/errors"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/httpx"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/pagerender"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/weberror"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/covidtracker/internal/services/web/templates"
)

const pageTitle = "COVID Survival Rate Calculator"

var errUnconfigured = apperrors.E(apperrors.KindUnavailable, "The survival rate calculator is not available right now.")

type handlers struct {
	estimator module.SurvivalEstimator
}

func newHandlers(estimator module.SurvivalEstimator) handlers {
	return handlers{estimator: estimator}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	query := ParseQuery(r.URL.Query())
	result, status := h.result(r.Context(), query)
	if err := pagerender.WriteModulePage(w, r, pagerender.ModulePage{
		Title:      pageTitle,
		Active:     routepath.Survival,
		StatusCode: status,
		Fragment:   webtemplates.SurvivalPage(pageView(query, result)),
	}); err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

// handleResult answers calculator change events. Requests outside HTMX get
// the full page with the same selection.
func (h handlers) handleResult(w http.ResponseWriter, r *http.Request) {
	if !httpx.IsHTMXRequest(r) {
		h.handleIndex(w, r)
		return
	}
	result, status := h.result(r.Context(), ParseQuery(r.URL.Query()))
	if err := pagerender.WriteFragment(w, r, status, webtemplates.SurvivalResult(result)); err != nil {
		weberror.WriteFragmentError(w, r, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

// result runs the estimate and folds failures into a danger card with the
// mapped status.
func (h handlers) result(ctx context.Context, query estimate.Query) (webtemplates.SurvivalResultView, int) {
	if h.estimator == nil {
		return failure(errUnconfigured)
	}
	est, err := h.estimator.SurvivalRate(ctx, query)
	if err != nil {
		return failure(err)
	}
	return ResultView(est), http.StatusOK
}

// ResultView renders an estimate as the calculator card.
func ResultView(est estimate.Estimate) webtemplates.SurvivalResultView {
	view := webtemplates.SurvivalResultView{Message: est.Message(), Tone: "success"}
	for _, group := range est.Conditions.Flagged {
		view.Notices = append(view.Notices, "No national deaths are recorded for "+group+", so it adds nothing to this estimate.")
	}
	return view
}

func failure(err error) (webtemplates.SurvivalResultView, int) {
	return webtemplates.SurvivalResultView{Message: apperrors.PublicMessage(err), Tone: "danger"}, apperrors.HTTPStatus(err)
}

func pageView(query estimate.Query, result webtemplates.SurvivalResultView) webtemplates.SurvivalView {
	view := webtemplates.SurvivalView{Result: result}
	for _, option := range reference.AgeGroupOptions() {
		view.AgeGroups = append(view.AgeGroups, webtemplates.ChoiceOption{
			Label:    option.Label,
			Value:    option.Value,
			Selected: option.Value == query.AgeGroup,
		})
	}
	for _, name := range reference.StateNames() {
		view.States = append(view.States, webtemplates.ChoiceOption{
			Label:    name,
			Value:    name,
			Selected: name == query.State,
		})
	}
	for _, option := range reference.SexOptions() {
		view.Sexes = append(view.Sexes, webtemplates.ChoiceOption{
			Label:    option.Label,
			Value:    option.Value,
			Selected: option.Value == query.Sex,
		})
	}
	selected := make(map[string]bool, len(query.Conditions))
	for _, condition := range query.Conditions {
		selected[condition] = true
	}
	for _, group := range reference.ConditionGroups() {
		view.Conditions = append(view.Conditions, webtemplates.ChoiceOption{
			Label:    group,
			Value:    group,
			Selected: selected[group],
		})
	}
	return view
}
