package web

import "github.com/a-h/templ"

func Standings(data StandingsData) templ.Component {
	return layout(data.Page, true, func(h *html) {
		if len(data.Players) == 0 {
			h.raw("<p>Nobody has checked in yet this season.</p>\n")
			return
		}
		h.raw(`<table class="standings">
  <thead><tr><th>Rank</th><th>#</th><th>Name</th><th>Joined</th><th>Points</th></tr></thead>
  <tbody>
`)
		for _, p := range data.Players {
			h.raw("    <tr><td>", itoa(p.Rank), "</td><td>")
			h.text(p.PID)
			h.raw("</td><td>")
			h.text(p.Name)
			h.raw("</td><td>", itoa(p.YearJoined), "</td><td>", itoa(p.Points), "</td></tr>\n")
		}
		h.raw("  </tbody>\n</table>\n")
		pager(h, data.Pagination)
	})
}

func pager(h *html, p PaginationData) {
	if p.TotalPages <= 1 {
		return
	}
	h.raw(`<nav class="pager">`)
	if p.HasPrev {
		h.raw(`<a href="`)
		h.text(pageURL(p.BasePath, p.PrevPage, p.PerPage))
		h.raw(`">Previous</a> `)
	}
	h.raw("Page ", itoa(p.Page), " of ", itoa(p.TotalPages))
	if p.HasNext {
		h.raw(` <a href="`)
		h.text(pageURL(p.BasePath, p.NextPage, p.PerPage))
		h.raw(`">Next</a>`)
	}
	h.raw("</nav>\n")
}

func PennantStandings(data PennantStandingsData) templ.Component {
	return layout(data.Page, true, func(h *html) {
		for _, d := range data.Districts {
			h.raw("<h2>")
			h.text(d.District)
			h.raw("</h2>\n")
			if d.Holder != "" {
				h.raw(`<p class="holder">Current holder: `)
				h.text(d.Holder)
				h.raw("</p>\n")
			}
			h.raw(`<table class="standings">
  <thead><tr><th>Venue</th><th>Wins</th><th>Defenses</th><th>Places</th><th>Total</th></tr></thead>
  <tbody>
`)
			for _, row := range d.Rows {
				h.raw("    <tr><td>")
				h.text(row.Venue)
				h.raw("</td><td>", itoa(row.Win), "</td><td>", itoa(row.Defend), "</td><td>", itoa(row.Place), "</td><td>", itoa(row.Total), "</td></tr>\n")
			}
			h.raw("  </tbody>\n</table>\n")
		}
	})
}
