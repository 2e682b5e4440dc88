package web

import "github.com/a-h/templ"

// Content renders an editable text page.
func Content(data ContentData) templ.Component {
	if data.Title == "" {
		data.Title = data.Heading
	}
	return layout(data.Page, true, func(h *html) {
		h.raw("<section class=\"content\">\n")
		h.paragraphs(data.Body)
		h.raw("</section>\n")
	})
}

func Venues(data VenuesData) templ.Component {
	return layout(data.Page, true, func(h *html) {
		h.paragraphs(data.Intro)
		if len(data.Venues) == 0 {
			h.raw("<p>No venues yet.</p>\n")
			return
		}
		day := ""
		for _, v := range data.Venues {
			if v.Day != day {
				if day != "" {
					h.raw("</ul>\n")
				}
				day = v.Day
				h.raw("<h2>")
				h.text(day)
				h.raw("</h2>\n<ul class=\"venues\">\n")
			}
			h.raw(`  <li id="venue-`)
			h.text(v.Code)
			h.raw(`"><strong>`)
			if v.URL != "" {
				h.raw(`<a href="`)
				h.href(v.URL)
				h.raw(`" target="_blank" rel="noopener">`)
				h.text(v.Name)
				h.raw("</a>")
			} else {
				h.text(v.Name)
			}
			h.raw("</strong> ")
			h.text(v.Time)
			if v.HasPennant {
				h.raw(` <span class="pennant">`)
				h.text(v.District)
				h.raw(" pennant holder</span>")
			}
			if v.Address != "" {
				h.raw(`<br/><span class="address">`)
				h.text(v.Address)
				h.raw("</span>")
			}
			if v.HoldMessage != "" {
				h.raw(`<br/><span class="hold">`)
				h.text(v.HoldMessage)
				h.raw("</span>")
			}
			h.raw("</li>\n")
		}
		h.raw("</ul>\n")
	})
}

func Discounts(data DiscountsData) templ.Component {
	return layout(data.Page, true, func(h *html) {
		h.paragraphs(data.Intro)
		rows := func(heading string, items []DiscountRow) {
			if len(items) == 0 {
				return
			}
			h.raw("<h2>")
			h.text(heading)
			h.raw("</h2>\n<dl class=\"discounts\">\n")
			for _, item := range items {
				h.raw("  <dt>")
				h.text(item.Name)
				h.raw("</dt><dd>")
				h.text(item.Description)
				h.raw("</dd>\n")
			}
			h.raw("</dl>\n")
		}
		rows("Venue Discounts", data.Venues)
		rows("More Discounts", data.Extras)
		if len(data.Venues) == 0 && len(data.Extras) == 0 {
			h.raw("<p>No discounts right now. Check back soon!</p>\n")
		}
	})
}
