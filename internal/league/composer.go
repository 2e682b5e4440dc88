package league

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
)

// Chooser picks an index in [0, n). Tests supply a fixed chooser to pin the
// composer's output.
type Chooser interface {
	IntN(n int) int
}

type randomChooser struct{}

func (randomChooser) IntN(n int) int {
	return rand.IntN(n)
}

// PostVenue is a venue playing on the post's day. PennantGame marks the
// district holder defending its pennant that night.
type PostVenue struct {
	Venue
	PennantGame bool
}

// Composer writes the daily Facebook post: the clue, where and when to
// play, and a call to action. Phrasing varies between calls.
type Composer struct {
	choose Chooser
}

func NewComposer(chooser Chooser) *Composer {
	if chooser == nil {
		chooser = randomChooser{}
	}
	return &Composer{choose: chooser}
}

var clueSiteRE = regexp.MustCompile(`^(https?://(www.)?)?([^/\s]+.(com|org|gov|edu|io))/?.*$`)

// Compose joins the post's non-empty parts with newlines.
func (c *Composer) Compose(day time.Time, clue Clue, venues []PostVenue) string {
	pennantNight := false
	for _, v := range venues {
		if v.PennantGame {
			pennantNight = true
			break
		}
	}
	parts := []string{
		ClueLine(clue),
		c.venuesLine(venues),
		c.callToAction(day, len(venues), pennantNight),
	}
	lines := parts[:0]
	for _, part := range parts {
		if part != "" {
			lines = append(lines, part)
		}
	}
	return strings.Join(lines, "\n")
}

// ClueLine renders `The clue for Wednesday, Mar. 13th: "Title" (site.com)`.
// Encyclopedia links are not credited.
func ClueLine(clue Clue) string {
	day := clue.Date.Format("Monday, Jan.") + " " + Ordinal(clue.Date.Day())
	line := fmt.Sprintf("The clue for %s: \"%s\"", day, clue.Title)
	if site := clueSite(clue.URL); site != "" {
		line += " (" + site + ")"
	}
	return line
}

func clueSite(url string) string {
	if url == "" || strings.Contains(url, "wikipedia.org") {
		return ""
	}
	match := clueSiteRE.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[3]
}

func (c *Composer) pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[c.choose.IntN(len(items))]
}

// pennantPhrase renders e.g. "come battle for the NORTH PENNANT".
func (c *Composer) pennantPhrase(v Venue) string {
	come := c.pick([]string{"come ", ""})
	return fmt.Sprintf("%s%s the %s", come, c.pick(pennantVerbs), ShoutName(PennantName(v)))
}

func (c *Composer) pennantAt(v Venue, withTime bool) string {
	return c.pennantPhrase(v) + " at " + PostLocation(v, withTime)
}

// PostLocation renders "@The Brass Kraken in Poulsbo", with " at 7pm" when
// withTime is set.
func PostLocation(v Venue, withTime bool) string {
	location := v.Name
	if rename, ok := postNames[v.Code]; ok {
		location = rename(location)
	}
	if !v.NameIncludesCity() && v.City() != "" {
		location = fmt.Sprintf("%s %s %s", location, v.Preposition(), v.City())
	}
	if withTime {
		location += " at " + v.Time.Short()
	}
	return "@" + location
}

func (c *Composer) venuesLine(venues []PostVenue) string {
	var regular, pennant []Venue
	for _, v := range venues {
		if v.PennantGame {
			pennant = append(pennant, v.Venue)
		} else {
			regular = append(regular, v.Venue)
		}
	}
	all := append(append([]Venue{}, regular...), pennant...)
	total := len(all)
	sameTime := true
	for _, v := range all {
		if v.Time != all[0].Time {
			sameTime = false
			break
		}
	}

	switch {
	case len(regular) == 0 && len(pennant) > 1:
		return c.pennantOnlyLine(pennant, sameTime)
	case total > 1 && sameTime:
		return c.sameTimeLine(regular, pennant)
	case total > 1:
		return c.mixedTimesLine(regular, pennant)
	case total == 1 && len(pennant) == 1:
		return fmt.Sprintf("Play for the %s tonight at %s.", ShoutName(PennantName(pennant[0])), PostLocation(pennant[0], true))
	case total == 1:
		return fmt.Sprintf("Play tonight at %s.", PostLocation(regular[0], true))
	}
	return ""
}

func (c *Composer) pennantOnlyLine(pennant []Venue, sameTime bool) string {
	names := make([]string, len(pennant))
	for i, v := range pennant {
		names[i] = c.pennantAt(v, !sameTime)
	}
	joined := strings.Join(names, ", or ")
	if !sameTime {
		return fmt.Sprintf("Play tonight and %s.", joined)
	}
	return fmt.Sprintf("Play tonight and %s. %d exciting games tonight and they %s start at %s.",
		joined, len(pennant), quantifier(len(pennant)), pennant[0].Time.Short())
}

func (c *Composer) sameTimeLine(regular, pennant []Venue) string {
	var start GameTime
	if len(regular) > 0 {
		start = regular[0].Time
	} else {
		start = pennant[0].Time
	}
	clock := start.Short()

	if len(pennant) > 0 {
		var names, quant string
		if len(regular) == 1 && len(pennant) == 1 {
			names = fmt.Sprintf("%s, or %s", PostLocation(regular[0], false), c.pennantAt(pennant[0], false))
			quant = "both"
		} else {
			names = c.withPennants(regular, pennant, false)
			quant = "all"
		}
		patterns := []func() string{
			func() string {
				return fmt.Sprintf("Play tonight at %s. %s of these %s games start at %s.",
					names, capitalize(quant), c.pick(positiveAdjectives), clock)
			},
			func() string {
				return fmt.Sprintf("Play tonight at %s. %s of them start at %s.", names, capitalize(quant), clock)
			},
			func() string {
				return fmt.Sprintf("Play tonight at %s. These %s games %s start at %s.",
					names, c.pick(positiveAdjectives), quant, clock)
			},
			func() string {
				return fmt.Sprintf("Play tonight at %s. They %s start at %s.", names, quant, clock)
			},
		}
		return patterns[c.choose.IntN(len(patterns))]()
	}

	locations := make([]string, len(regular))
	for i, v := range regular {
		locations[i] = PostLocation(v, false)
	}
	var names string
	if len(locations) == 2 {
		names = strings.Join(locations, " and ")
	} else {
		names = strings.Join(locations[:len(locations)-1], ", ") + " and " + locations[len(locations)-1]
	}
	quant := quantifier(len(regular))
	patterns := []func() string{
		func() string {
			return fmt.Sprintf("Here are your %d %s options for playing tonight: %s, and %s of them start at %s.",
				len(regular), c.pick(positiveAdjectives), names, quant, clock)
		},
		func() string {
			return fmt.Sprintf("Play tonight at %s. %d %s options tonight and they %s start at %s.",
				names, len(regular), c.pick(positiveAdjectives), quant, clock)
		},
	}
	return patterns[c.choose.IntN(len(patterns))]()
}

func (c *Composer) mixedTimesLine(regular, pennant []Venue) string {
	if len(pennant) > 0 {
		if len(regular) == 1 && len(pennant) == 1 {
			return fmt.Sprintf("Play tonight at %s or %s.", PostLocation(regular[0], true), c.pennantAt(pennant[0], true))
		}
		return fmt.Sprintf("Play tonight at %s.", c.withPennants(regular, pennant, true))
	}
	locations := make([]string, len(regular))
	for i, v := range regular {
		locations[i] = PostLocation(v, true)
	}
	if len(locations) == 2 {
		return fmt.Sprintf("Play tonight at %s.", strings.Join(locations, " or at "))
	}
	return fmt.Sprintf("Play tonight at %s, or at %s.",
		strings.Join(locations[:len(locations)-1], ", "), locations[len(locations)-1])
}

// withPennants lists the regular venues, then each pennant game as an
// "or ..." alternative.
func (c *Composer) withPennants(regular, pennant []Venue, withTime bool) string {
	parts := make([]string, 0, len(regular))
	for _, v := range regular {
		parts = append(parts, PostLocation(v, withTime))
	}
	challenges := make([]string, len(pennant))
	for i, v := range pennant {
		challenges[i] = c.pennantAt(v, withTime)
	}
	list := strings.Join(parts, ", ")
	if list == "" {
		return strings.Join(challenges, ", or ")
	}
	return list + ", or " + strings.Join(challenges, ", or ")
}

func (c *Composer) callToAction(day time.Time, venues int, pennantNight bool) string {
	if pennantNight {
		return c.pick(pennantCalls)
	}
	bank := make([]string, 0, 32)
	bank = append(bank, callsByDay[Weekday(day)]...)
	bank = append(bank, callsByVenueCount[venues]...)
	bank = append(bank, generalCalls...)
	return c.pick(bank)
}

func quantifier(n int) string {
	if n == 2 {
		return "both"
	}
	return "all"
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func ampersandToAnd(name string) string {
	return strings.ReplaceAll(name, "&", "and")
}

func truncateTo(n int) func(string) string {
	return func(name string) string {
		runes := []rune(name)
		if len(runes) <= n {
			return name
		}
		return string(runes[:n])
	}
}
