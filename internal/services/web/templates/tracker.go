package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

// TrackerView is the tracker page model.
type TrackerView struct {
	Available   bool
	Notice      string
	Positive    int64
	Recovered   int64
	Death       int64
	LastUpdated string
}

type summaryCard struct {
	label string
	class string
	value int64
}

type chartPanel struct {
	id     string
	kind   string
	source string
}

// TrackerPage renders the summary cards, the state map and the daily charts.
// Charts are drawn client-side from the tracker JSON endpoints.
func TrackerPage(view TrackerView) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="tracker" id="tracker">`)
		if !view.Available {
			m.raw(`<div class="card card-warning" role="status">`)
			m.text(view.Notice)
			m.raw(`</div>`)
		}
		m.raw(`<div class="tracker-overview"><div class="summary-cards">`)
		for _, card := range []summaryCard{
			{label: "Positive Cases", class: "card-warning", value: view.Positive},
			{label: "Recovered Cases", class: "card-success", value: view.Recovered},
			{label: "Death Cases", class: "card-danger", value: view.Death},
		} {
			m.raw(`<div class="card card-outline `)
			m.text(card.class)
			m.raw(`"><h6 class="card-header">`)
			m.text(card.label)
			m.raw(`</h6><h4 class="card-value">`)
			if view.Available {
				m.text(FormatCount(card.value))
			} else {
				m.raw(`&ndash;`)
			}
			m.raw(`</h4></div>`)
		}
		m.raw(`</div>`)
		charts := []chartPanel{
			{id: "chart-map", kind: "map", source: routepath.APITrackerStates},
			{id: "chart-positive", kind: "positiveIncrease", source: routepath.APITrackerDaily},
			{id: "chart-deaths", kind: "deathIncrease", source: routepath.APITrackerDaily},
			{id: "chart-hospitalized", kind: "hospitalizedIncrease", source: routepath.APITrackerDaily},
		}
		m.raw(`<div class="map-panel">`)
		chart(m, charts[0], view.LastUpdated)
		m.raw(`</div></div>`)
		for _, panel := range charts[1:] {
			m.raw(`<div class="chart-panel"><hr>`)
			chart(m, panel, "")
			m.raw(`<hr></div>`)
		}
		m.raw(`</section>`)
		m.render(ctx, Disclaimer("The data source is updated each day between about 5:30 PM and 7 PM Eastern Time"))
	})
}

func chart(m *markup, panel chartPanel, lastUpdated string) {
	m.raw(`<div class="chart"`)
	m.attr("id", panel.id)
	m.attr("data-chart", panel.kind)
	m.attr("data-source", panel.source)
	if lastUpdated != "" {
		m.attr("data-last-updated", lastUpdated)
	}
	m.raw(`></div>`)
}
