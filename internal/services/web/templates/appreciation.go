package templates

import (
	"context"

	"github.com/a-h/templ"
)

// Fundraiser is one appreciation card.
type Fundraiser struct {
	Title       string
	Description string
	URL         string
}

// Fundraisers returns the appreciation cards in display order.
func Fundraisers() []Fundraiser {
	return []Fundraiser{
		{
			Title:       "Frontline Responders Fund",
			Description: "This fundraiser focuses on getting critical supplies to frontline responders combating COVID-19.",
			URL:         "https://www.gofundme.com/f/frontlinerespondersfund/",
		},
		{
			Title:       "COVID-19 Solidarity Response Fund for WHO",
			Description: "Donations support WHO’s work, including with partners, to track and understand the spread of the virus; to ensure patients get the care they need and frontline workers get essential supplies and information; and to accelerate research and development of a vaccine and treatments for all who need them.",
			URL:         "https://covid19responsefund.org/en/",
		},
	}
}

const appreciationQuote = "Alone we can do so little; together we can do so much - Helen Keller"

// AppreciationPage renders the fundraiser cards.
func AppreciationPage() templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section class="appreciation"><p class="badge badge-success">`)
		m.text(appreciationQuote)
		m.raw(`</p><div class="card-deck">`)
		for _, fund := range Fundraisers() {
			m.raw(`<div class="card card-outline card-dark"><div class="card-body"><h5 class="card-title">`)
			m.text(fund.Title)
			m.raw(`</h5><p class="card-text">`)
			m.text(fund.Description)
			m.raw(`</p><a class="button button-info" target="_blank" rel="noopener noreferrer"`)
			m.attr("href", fund.URL)
			m.raw(`>Click me!</a></div></div>`)
		}
		m.raw(`</div></section>`)
	})
}
