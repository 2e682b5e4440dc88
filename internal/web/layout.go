package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

var navLinks = []struct{ Path, Label string }{
	{"/", "Home"},
	{"/venues/", "Where To Play"},
	{"/about/how-to-play/", "How To Play"},
	{"/pennant/standings/", "Pennant"},
	{"/palooza/standings/", "Palooza"},
	{"/contact/hire-us/", "Hire Us"},
	{"/contact/apply/", "Apply"},
	{"/contact/questions/", "Contact"},
}

// layout wraps body in the site chrome. The page title doubles as the
// heading unless heading is false.
func layout(page Page, heading bool, body func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		title := "Trivia Time Live"
		if page.Title != "" {
			title = page.Title + " | " + title
		}
		h.raw(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`)
		h.text(title)
		h.raw(`</title>
    <link rel="stylesheet" href="`, assetPath("/static/styles.css"), `"/>
  </head>
  <body>
    <nav class="site-nav">
`)
		for _, link := range navLinks {
			h.raw(`      <a href="`, link.Path, `">`)
			h.text(link.Label)
			h.raw("</a>\n")
		}
		if page.Username != "" {
			h.raw(`      <a href="/logout/">Log out `)
			h.text(page.Username)
			h.raw("</a>\n")
		}
		h.raw(`    </nav>
    <main class="shell">
`)
		if page.Flash != "" {
			h.raw(`      <p class="flash">`)
			h.text(page.Flash)
			h.raw("</p>\n")
		}
		if heading && page.Title != "" {
			h.raw("      <h1>")
			h.text(page.Title)
			h.raw("</h1>\n")
		}
		body(h)
		h.raw(`    </main>
  </body>
</html>
`)
		return h.err
	})
}
