package web

import "github.com/a-h/templ"

func Event(data EventData) templ.Component {
	if !data.Found {
		data.Page.Title = "Event Not Found"
		return layout(data.Page, true, func(h *html) {
			h.raw("<p>We couldn't find that event. It may have already happened.</p>\n")
		})
	}
	heading := data.Title
	data.Page.Title = "Events: " + heading
	return layout(data.Page, false, func(h *html) {
		h.raw(`<article class="event">` + "\n")
		if data.BackgroundImage != "" {
			h.raw(`  <picture>`)
			if data.BackgroundImageNarrow != "" {
				h.raw(`<source media="(max-width: 600px)" srcset="`)
				h.href(data.BackgroundImageNarrow)
				h.raw(`"/>`)
			}
			h.raw(`<img class="event-background" src="`)
			h.href(data.BackgroundImage)
			h.raw(`" alt=""/></picture>` + "\n")
		}
		h.raw("  <h1>")
		h.text(heading)
		h.raw("</h1>\n  <p class=\"when\">")
		h.text(data.When)
		h.raw("</p>\n  <p class=\"where\">")
		h.text(data.Location)
		h.raw("</p>\n")
		h.paragraphs(data.Description)
		h.raw("</article>\n")
	})
}
