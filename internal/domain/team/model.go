package team

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Team is one of the club's sides, e.g. a senior XI or a junior age group.
type Team struct {
	ID           string
	Name         string
	Abbreviation string
	Division     string
	LogoURL      string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// ShortName returns the stored abbreviation, falling back to initials of the name.
func (t Team) ShortName() string {
	if abbr := strings.TrimSpace(t.Abbreviation); abbr != "" {
		return abbr
	}
	return Initials(t.Name)
}

var upper = cases.Upper(language.Und)

// Initials derives a short badge label from a team name.
// Multi-word names take the first rune of each word, single words take the first two runes.
func Initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return upper.String(firstRunes(parts[0], 2))
	}

	var b strings.Builder
	for _, part := range parts {
		b.WriteString(firstRunes(part, 1))
	}
	return upper.String(b.String())
}

func firstRunes(value string, n int) string {
	end := 0
	for i := 0; i < n && end < len(value); i++ {
		_, size := utf8.DecodeRuneInString(value[end:])
		end += size
	}
	return value[:end]
}
