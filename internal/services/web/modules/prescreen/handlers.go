package prescreen

import (
	"net/http"

	domain "github.com/louisbranch/covidtracker/internal/services/prescreen"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/httpx"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/pagerender"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/weberror"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/covidtracker/internal/services/web/templates"
)

const pageTitle = "COVID Pre-Scanner"

type handlers struct{}

func newHandlers() handlers {
	return handlers{}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	symptoms := r.URL.Query()[routepath.QuerySymptom]
	result, err := screen(symptoms)
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	if err := pagerender.WriteModulePage(w, r, pagerender.ModulePage{
		Title:    pageTitle,
		Active:   routepath.Prescreen,
		Fragment: webtemplates.PrescreenPage(pageView(symptoms, result)),
	}); err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

// handleResult answers the questionnaire change events. Requests outside
// HTMX get the full page with the same selection.
func (h handlers) handleResult(w http.ResponseWriter, r *http.Request) {
	if !httpx.IsHTMXRequest(r) {
		h.handleIndex(w, r)
		return
	}
	result, err := screen(r.URL.Query()[routepath.QuerySymptom])
	if err != nil {
		weberror.WriteFragmentError(w, r, err)
		return
	}
	if err := pagerender.WriteFragment(w, r, http.StatusOK, webtemplates.PrescreenResult(result)); err != nil {
		weberror.WriteFragmentError(w, r, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

// screen returns an empty card when nothing is selected.
func screen(symptoms []string) (webtemplates.PrescreenResultView, error) {
	if len(symptoms) == 0 {
		return webtemplates.PrescreenResultView{}, nil
	}
	result, err := domain.Screen(symptoms)
	if err != nil {
		return webtemplates.PrescreenResultView{}, err
	}
	return webtemplates.PrescreenResultView{Message: result.Message, Tone: string(result.Tone)}, nil
}

func pageView(symptoms []string, result webtemplates.PrescreenResultView) webtemplates.PrescreenView {
	checked := make(map[string]bool, len(symptoms))
	for _, symptom := range symptoms {
		checked[symptom] = true
	}
	options := domain.Options()
	view := webtemplates.PrescreenView{
		Options: make([]webtemplates.SymptomOption, 0, len(options)),
		Result:  result,
	}
	for _, option := range options {
		view.Options = append(view.Options, webtemplates.SymptomOption{
			Label:   option.Label,
			Value:   option.Value,
			Checked: checked[option.Value],
		})
	}
	return view
}
