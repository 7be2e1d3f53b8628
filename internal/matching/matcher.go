// Package matching reconciles free-text scenario names on schedule events
// with catalogued scenario titles. Event names accumulate booking prefixes
// ("貸・", "募・", GM-test markers, tentative markers) and decorative quotes
// over years of manual entry, so matching runs an ordered list of
// normalization rules first, then an exact match, then a guarded substring
// match.
package matching

import (
	"regexp"
	"strings"
)

// Rule is one normalization step. Rules are applied in order; keeping them
// as data lets the alias table grow without touching the matching logic.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// NormalizationRules strips booking prefixes and decorative quoting from an
// event's scenario name. Order matters: quotes come off before prefixes so
// a name like 「貸・X」 normalizes fully.
var NormalizationRules = []Rule{
	{Name: "leading quote", Pattern: regexp.MustCompile(`^["「『📗📕]`), Replace: ""},
	{Name: "trailing quote", Pattern: regexp.MustCompile(`["」』]$`), Replace: ""},
	{Name: "private prefix", Pattern: regexp.MustCompile(`^貸・`), Replace: ""},
	{Name: "recruiting prefix", Pattern: regexp.MustCompile(`^募・`), Replace: ""},
	{Name: "gm test prefix", Pattern: regexp.MustCompile(`^GMテスト・`), Replace: ""},
	{Name: "inquiry prefix", Pattern: regexp.MustCompile(`^打診・`), Replace: ""},
	{Name: "tentative paren", Pattern: regexp.MustCompile(`^（仮）`), Replace: ""},
	{Name: "tentative paren ascii", Pattern: regexp.MustCompile(`^\(仮\)`), Replace: ""},
	{Name: "tentative prefix", Pattern: regexp.MustCompile(`^仮`), Replace: ""},
	{Name: "surrounding space", Pattern: regexp.MustCompile(`^\s+|\s+$`), Replace: ""},
}

const (
	// Names at or below this many runes are too ambiguous to match at all.
	minMatchableRunes = 3

	// Substring matching only kicks in at this many runes; shorter names
	// produce too many false positives.
	minSubstringRunes = 5
)

// Normalize applies every rule in order.
func Normalize(name string) string {
	for _, rule := range NormalizationRules {
		name = rule.Pattern.ReplaceAllString(name, rule.Replace)
	}

	return name
}

// Candidate is a catalogued scenario title.
type Candidate struct {
	ID    uint
	Title string
}

// Match finds the catalogue entry for a raw event scenario name. Exact
// title match wins; otherwise, for long enough names, the first candidate
// where either title contains the other. Returns false when the name is too
// short after normalization or nothing matches.
func Match(name string, candidates []Candidate) (Candidate, bool) {
	cleaned := Normalize(name)
	if len([]rune(cleaned)) < minMatchableRunes {
		return Candidate{}, false
	}

	for _, c := range candidates {
		if c.Title == cleaned {
			return c, true
		}
	}

	if len([]rune(cleaned)) >= minSubstringRunes {
		for _, c := range candidates {
			if c.Title != "" && (strings.Contains(c.Title, cleaned) || strings.Contains(cleaned, c.Title)) {
				return c, true
			}
		}
	}

	return Candidate{}, false
}
