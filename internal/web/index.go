package web

import "github.com/a-h/templ"

func Index(data IndexData) templ.Component {
	return layout(data.Page, false, func(h *html) {
		h.raw(`<section class="today">
  <h2>Tonight's Games</h2>
  <p class="date">`)
		h.text(data.Date)
		h.raw("</p>\n")
		if len(data.Games) == 0 {
			h.raw("  <p>No games tonight. Check the schedule for the rest of the week!</p>\n")
		} else {
			h.raw("  <ul class=\"games\">\n")
			for _, game := range data.Games {
				h.raw("    <li>")
				if game.PennantGame {
					h.raw(`<span class="pennant">Pennant game</span> `)
				}
				h.raw("<strong>")
				h.text(game.Venue)
				h.raw("</strong> ")
				h.text(game.Time)
				if game.Address != "" {
					h.raw(`<br/><span class="address">`)
					h.text(game.Address)
					h.raw("</span>")
				}
				h.raw("</li>\n")
			}
			h.raw("  </ul>\n")
		}
		h.raw(`  <h2>Today's Clue</h2>
  <p class="clue">`)
		if data.Clue.URL != "" {
			h.raw(`<a href="`)
			h.href(data.Clue.URL)
			h.raw(`" target="_blank" rel="noopener">`)
			h.text(data.Clue.Title)
			h.raw("</a>")
		} else {
			h.text(data.Clue.Title)
		}
		h.raw("</p>\n</section>\n")

		if len(data.Announcements) > 0 {
			h.raw("<section class=\"announcements\">\n")
			for _, ann := range data.Announcements {
				h.raw("  <article class=\"announcement\">\n")
				if ann.ImageURL != "" {
					h.raw(`    <img src="`)
					h.href(ann.ImageURL)
					h.raw(`" alt=""/>` + "\n")
				}
				h.raw("    <h3>")
				if ann.URL != "" {
					h.raw(`<a href="`)
					h.href(ann.URL)
					h.raw(`"`)
					if !ann.Internal {
						h.raw(` target="_blank" rel="noopener"`)
					}
					h.raw(">")
					h.text(ann.Title)
					h.raw("</a>")
				} else {
					h.text(ann.Title)
				}
				h.raw("</h3>\n    <p>")
				h.text(ann.Description)
				h.raw("</p>\n  </article>\n")
			}
			h.raw("</section>\n")
		}
	})
}
