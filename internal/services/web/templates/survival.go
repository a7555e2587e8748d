package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

// ChoiceOption is one radio, select or checkbox choice.
type ChoiceOption struct {
	Label    string
	Value    string
	Selected bool
}

// SurvivalResultView is the estimate card. An empty Message renders nothing.
type SurvivalResultView struct {
	Message string
	Tone    string
	Notices []string
}

// SurvivalView is the calculator page model.
type SurvivalView struct {
	AgeGroups  []ChoiceOption
	States     []ChoiceOption
	Sexes      []ChoiceOption
	Conditions []ChoiceOption
	Result     SurvivalResultView
}

// SurvivalPage renders the calculator form and the current estimate.
func SurvivalPage(view SurvivalView) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="survival"><form class="calculator" method="get"`)
		m.attr("action", routepath.Survival)
		m.attr("hx-get", routepath.SurvivalResult)
		m.attr("hx-trigger", "change")
		m.attr("hx-target", "#survival-result")
		m.attr("hx-swap", "innerHTML")
		m.raw(`>`)
		radioRow(m, "Age Group", routepath.QueryAgeGroup, view.AgeGroups)
		m.raw(`<div class="form-row"><label class="row-label" for="state-select">State</label><select id="state-select"`)
		m.attr("name", routepath.QueryState)
		m.raw(`>`)
		for _, option := range view.States {
			m.raw(`<option`)
			m.attr("value", option.Value)
			if option.Selected {
				m.raw(` selected`)
			}
			m.raw(`>`)
			m.text(option.Label)
			m.raw(`</option>`)
		}
		m.raw(`</select></div>`)
		radioRow(m, "Gender", routepath.QuerySex, view.Sexes)
		m.raw(`<fieldset class="form-row"><legend class="row-label">Underlying Health Conditions</legend>`)
		for i, option := range view.Conditions {
			id := "condition-" + itoa(i)
			m.raw(`<div class="check"><input type="checkbox"`)
			m.attr("id", id)
			m.attr("name", routepath.QueryCondition)
			m.attr("value", option.Value)
			if option.Selected {
				m.raw(` checked`)
			}
			m.raw(`><label`)
			m.attr("for", id)
			m.raw(`>`)
			m.text(option.Label)
			m.raw(`</label></div>`)
		}
		m.raw(`</fieldset><noscript><button type="submit">Estimate</button></noscript></form>`)
		m.raw(`<div id="survival-result" aria-live="polite">`)
		m.render(ctx, SurvivalResult(view.Result))
		m.raw(`</div></section>`)
		m.render(ctx, Disclaimer("Please note this is just an estimation, and not an absolute assessment of the effects covid-19 might have on you."))
	})
}

// SurvivalResult renders the estimate card fragment.
func SurvivalResult(view SurvivalResultView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if view.Message == "" {
			return
		}
		resultCard(m, view.Tone, "h4", view.Message, view.Notices)
	})
}

func radioRow(m *markup, label, name string, options []ChoiceOption) {
	m.raw(`<fieldset class="form-row"><legend class="row-label">`)
	m.text(label)
	m.raw(`</legend><div class="inline-options">`)
	for i, option := range options {
		id := name + "-" + itoa(i)
		m.raw(`<span class="radio"><input type="radio"`)
		m.attr("id", id)
		m.attr("name", name)
		m.attr("value", option.Value)
		if option.Selected {
			m.raw(` checked`)
		}
		m.raw(`><label`)
		m.attr("for", id)
		m.raw(`>`)
		m.text(option.Label)
		m.raw(`</label></span>`)
	}
	m.raw(`</div></fieldset>`)
}
