package templates

import (
	"context"

	"github.com/a-h/templ"
)

const whoAdviceURL = "https://www.who.int/emergencies/diseases/novel-coronavirus-2019/advice-for-public"

type infoPanel struct {
	title  string
	blocks []infoBlock
}

type infoBlock struct {
	heading string
	lead    []string
	items   []string
	notes   []string
}

var infoPanels = []infoPanel{
	{
		title: "About COVID-19",
		blocks: []infoBlock{
			{
				heading: "What is COVID-19?",
				lead: []string{
					"Coronavirus (COVID-19) is an illness caused by a virus that can spread from person to person. COVID-19 symptoms can range from mild (or no symptoms) to severe illness.",
				},
			},
			{
				heading: "Why is it called COVID-19?",
				lead: []string{
					"On February 11, 2020 the World Health Organization announced an official name for the disease that is causing the 2019 novel coronavirus outbreak, first identified in Wuhan China. The new name of this disease is coronavirus disease 2019, abbreviated as COVID-19. In COVID-19, ‘CO’ stands for ‘corona,’ ‘VI’ for ‘virus,’ and ‘D’ for disease. Formerly, this disease was referred to as “2019 novel coronavirus” or “2019-nCoV”.",
					"There are many types of human coronaviruses including some that commonly cause mild upper-respiratory tract illnesses. COVID-19 is a new disease, caused by a novel (or new) coronavirus that has not previously been seen in humans.",
				},
			},
		},
	},
	{
		title: "COVID-19 Spread",
		blocks: []infoBlock{{
			heading: "How does COVID-19 spread?",
			lead: []string{
				"You can become infected by coming into close contact (about 6 feet or two arm lengths) with a person who has COVID-19. COVID-19 is primarily spread from person to person.",
				"You can become infected from respiratory droplets when an infected person coughs, sneezes, or talks.",
				"You may also be able to get it by touching a surface or object that has the virus on it, and then by touching your mouth, nose, or eyes.",
			},
		}},
	},
	{
		title: "COVID-19 Prevention",
		blocks: []infoBlock{
			{
				heading: "How to protect myself & others?",
				lead: []string{
					"Stay home as much as possible and avoid close contact with others.",
					"Wear a mask that covers your nose and mouth in public settings.",
					"Clean and disinfect frequently touched surfaces.",
					"Wash your hands often with soap and water for at least 20 seconds, or use an alcohol-based hand sanitizer that contains at least 60% alcohol.",
					"Monitor your health daily by staying alert for symptoms and by taking your temperature if symptoms develop",
				},
			},
			{
				heading: "What should I do if I had a close contact with someone who has COVID-19?",
				lead: []string{
					"Stay home for 14 days after your last contact with a person who has COVID-19.",
					"Be alert for symptoms. Watch for fever, cough, shortness of breath, or other symptoms of COVID-19.",
					"If possible, stay away from others, especially people who are at higher risk for getting very sick from COVID-19.",
				},
			},
		},
	},
	{
		title: "COVID-19 Emergency Warning Signs",
		blocks: []infoBlock{{
			heading: "When should I seek emergency care if I have COVID-19?",
			lead: []string{
				"Look for emergency warning signs* for COVID-19. If someone is showing any of these signs, seek emergency medical care immediately",
			},
			items: []string{
				"Trouble breathing",
				"Persistent pain or pressure in the chest",
				"New confusion",
				"Inability to wake or stay awake",
				"Bluish lips or face",
			},
			notes: []string{
				"*This list is not all possible symptoms. Please call your medical provider for any other symptoms that are severe or concerning to you. Call 911 or call ahead to your local emergency facility: Notify the operator that you are seeking care for someone who has or may have COVID-19.",
			},
		}},
	},
}

// InfoPage renders the coronavirus guidance panels.
func InfoPage() templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="info">`)
		for _, panel := range infoPanels {
			m.raw(`<div class="jumbotron"><h3 class="panel-title">`)
			m.text(panel.title)
			m.raw(`</h3>`)
			for _, block := range panel.blocks {
				writeInfoBlock(m, block)
			}
			m.raw(`</div>`)
		}
		m.raw(`<div class="jumbotron"><h3 class="panel-title">COVID-19 Advice for the public</h3>`)
		m.raw(`<p>Stay aware of the latest COVID-19 information, by regularly checking updates from WHO (World Health Organization) and your national and local public health authorities.</p>`)
		m.raw(`<p class="centered"><a class="button button-success" target="_blank" rel="noopener noreferrer"`)
		m.attr("href", whoAdviceURL)
		m.raw(`>`)
		m.text("Click me to check out WHO's advice for the public")
		m.raw(`</a></p></div></section>`)
		m.render(ctx, Disclaimer("The source for this information is Centers for Disease Control and Prevention (CDC)"))
	})
}

func writeInfoBlock(m *markup, block infoBlock) {
	m.raw(`<h4>`)
	m.text(block.heading)
	m.raw(`</h4><hr>`)
	for _, paragraph := range block.lead {
		m.raw(`<p>`)
		m.text(paragraph)
		m.raw(`</p>`)
	}
	if len(block.items) > 0 {
		m.raw(`<ul>`)
		for _, item := range block.items {
			m.raw(`<li>`)
			m.text(item)
			m.raw(`</li>`)
		}
		m.raw(`</ul>`)
	}
	for _, note := range block.notes {
		m.raw(`<p class="note">`)
		m.text(note)
		m.raw(`</p>`)
	}
}
