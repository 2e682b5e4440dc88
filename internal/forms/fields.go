package forms

import (
	"errors"
	"fmt"
	"strings"

	"triviatime/internal/league"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizePhone accepts 10 or 11 digits, optionally separated by spaces or
// hyphens, and returns them hyphenated: 360-555-1234 or 1-360-555-1234.
func NormalizePhone(raw string) (string, error) {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
	if len(digits) != 10 && len(digits) != 11 {
		return "", errors.New("phone number must have 10 or 11 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", errors.New("phone number may only contain digits, spaces and hyphens")
		}
	}
	local := fmt.Sprintf("%s-%s-%s", digits[len(digits)-10:len(digits)-7], digits[len(digits)-7:len(digits)-4], digits[len(digits)-4:])
	if len(digits) == 11 {
		return digits[:1] + "-" + local, nil
	}
	return local, nil
}

// ValidEmail only checks for an @; delivery is the real test.
func ValidEmail(raw string) bool {
	return strings.Contains(raw, "@")
}

// ParseDays reads a comma-separated list of day names in any case and
// returns them capitalized. Blank entries are ignored; an empty list or an
// unknown name is an error.
func ParseDays(raw string) ([]string, error) {
	var days []string
	caser := cases.Title(language.English)
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		name := caser.String(token)
		if _, ok := league.ParseWeekday(name); !ok {
			return nil, fmt.Errorf("%q is not a day of the week", token)
		}
		days = append(days, name)
	}
	if len(days) == 0 {
		return nil, errors.New("at least one day is required")
	}
	return days, nil
}

func normalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
