package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

// SymptomOption is one questionnaire switch.
type SymptomOption struct {
	Label   string
	Value   string
	Checked bool
}

// PrescreenResultView is the screening card. An empty Message renders nothing.
type PrescreenResultView struct {
	Message string
	Tone    string
}

// PrescreenView is the pre-scanner page model.
type PrescreenView struct {
	Options []SymptomOption
	Result  PrescreenResultView
}

// PrescreenPage renders the symptom questionnaire. Every change re-fetches the
// result fragment.
func PrescreenPage(view PrescreenView) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="prescreen"><h6 class="section-title">Select the symptoms you or someone else is experiencing</h6>`)
		m.raw(`<form class="switches" method="get"`)
		m.attr("action", routepath.Prescreen)
		m.attr("hx-get", routepath.PrescreenResult)
		m.attr("hx-trigger", "change")
		m.attr("hx-target", "#prescreen-result")
		m.attr("hx-swap", "innerHTML")
		m.raw(`>`)
		for _, option := range view.Options {
			id := "symptom-" + option.Value
			m.raw(`<div class="switch"><input type="checkbox" role="switch"`)
			m.attr("id", id)
			m.attr("name", routepath.QuerySymptom)
			m.attr("value", option.Value)
			if option.Checked {
				m.raw(` checked`)
			}
			m.raw(`><label`)
			m.attr("for", id)
			m.raw(`>`)
			m.text(option.Label)
			m.raw(`</label></div>`)
		}
		m.raw(`<noscript><button type="submit">Check symptoms</button></noscript></form>`)
		m.raw(`<div id="prescreen-result" aria-live="polite">`)
		m.render(ctx, PrescreenResult(view.Result))
		m.raw(`</div></section>`)
		m.render(ctx, Disclaimer("Please note this is just an estimation. In case of emergency, please call 911 or go to your nearest emergency room."))
	})
}

// PrescreenResult renders the screening card fragment.
func PrescreenResult(view PrescreenResultView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if view.Message == "" {
			return
		}
		resultCard(m, view.Tone, "p", view.Message, nil)
	})
}

func resultCard(m *markup, tone, tag, message string, notices []string) {
	m.raw(`<div class="result-card card card-`)
	m.text(tone)
	m.raw(`" role="status"><`)
	m.raw(tag)
	m.raw(`>`)
	m.text(message)
	m.raw(`</`)
	m.raw(tag)
	m.raw(`>`)
	for _, notice := range notices {
		m.raw(`<p class="notice">`)
		m.text(notice)
		m.raw(`</p>`)
	}
	m.raw(`</div>`)
}
