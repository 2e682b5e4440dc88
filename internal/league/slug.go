package league

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidRE = regexp.MustCompile(`[^a-z0-9]+`)
	slugHyphensRE = regexp.MustCompile(`-+`)
)

// Slugify turns an event title into a URL segment made of [a-z0-9-].
// Accents are dropped rather than replaced.
func Slugify(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	var buf strings.Builder
	for _, r := range norm.NFD.String(lowered) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf.WriteRune(r)
	}
	slug := slugInvalidRE.ReplaceAllString(buf.String(), "-")
	slug = slugHyphensRE.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "event"
	}
	return slug
}
