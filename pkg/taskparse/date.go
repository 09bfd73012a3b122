package taskparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Token shapes shared by the pattern families.
const (
	monthPattern = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*`
	dayPattern   = `\d{1,2}(?:st|nd|rd|th)?`
	clockPattern = `\d{1,2}(?:am|pm)`
	yearOpt      = `(?:,?\s+(\d{4}))?`
)

type familyKind int

const (
	familyTokens   familyKind = iota // captured tokens classified by shape
	familyRelative                   // today / tomorrow, optional clock
	familyISO                        // YYYY-M-D, positional
	familySlash                      // M/D/YYYY, positional
)

type patternFamily struct {
	kind familyKind
	re   *regexp.Regexp
}

// dateFamilies is the fixed recognition order. The first family whose
// candidate resolves to a valid instant wins; a family that matches text
// but fails to resolve does not claim a span, and the search continues.
var dateFamilies = []patternFamily{
	// "11pm 20th June"
	{familyTokens, regexp.MustCompile(`(?i)\b(` + clockPattern + `)\s+(` + dayPattern + `)\s+(` + monthPattern + `)\b` + yearOpt)},
	// "2pm June 20th"
	{familyTokens, regexp.MustCompile(`(?i)\b(` + clockPattern + `)\s+(` + monthPattern + `)\s+(` + dayPattern + `)\b` + yearOpt)},
	// "June 20 at 2pm"
	{familyTokens, regexp.MustCompile(`(?i)\b(` + monthPattern + `)\s+(` + dayPattern + `)\s+(?:at\s+)?(` + clockPattern + `)\b`)},
	// "20th June"
	{familyTokens, regexp.MustCompile(`(?i)\b(` + dayPattern + `)\s+(` + monthPattern + `)\b` + yearOpt)},
	// "June 20"
	{familyTokens, regexp.MustCompile(`(?i)\b(` + monthPattern + `)\s+(` + dayPattern + `)\b` + yearOpt)},
	// "today", "tomorrow 3pm", "4pm today"
	{familyRelative, regexp.MustCompile(`(?i)\b(?:(` + clockPattern + `)\s+)?(today|tomorrow)\b(?:\s+(?:at\s+)?(` + clockPattern + `))?`)},
	// "2024-06-20"
	{familyISO, regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)},
	// "06/20/2024"
	{familySlash, regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)},
}

// dateCandidate is one not-yet-validated date/time interpretation.
// Zero values mean "unset", except hour where -1 is unset (midnight is
// a legal captured hour).
type dateCandidate struct {
	day      int
	month    time.Month
	year     int
	hour     int
	relative string // "today" or "tomorrow"
}

// resolveDate tries each pattern family in order against the raw text
// and converts the first resolvable match into an absolute instant in
// ref's location. It returns nil when no family yields a valid date.
func resolveDate(text string, ref time.Time) (*time.Time, *span) {
	for _, fam := range dateFamilies {
		loc := fam.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}

		cand, ok := buildCandidate(fam, text, loc)
		if !ok {
			continue
		}
		t, ok := cand.resolve(text, ref)
		if !ok {
			continue
		}
		return &t, &span{start: loc[0], end: loc[1]}
	}
	return nil, nil
}

// buildCandidate converts a regexp match into a dateCandidate according
// to the family kind. Token families classify every captured token by
// shape instead of by capture position, since the same family can
// present tokens in different orders.
func buildCandidate(fam patternFamily, text string, loc []int) (dateCandidate, bool) {
	groups := submatches(text, loc)

	switch fam.kind {
	case familyTokens:
		return classifyTokens(groups), true

	case familyRelative:
		cand := dateCandidate{hour: -1}
		for _, g := range groups {
			lower := strings.ToLower(g)
			if lower == "today" || lower == "tomorrow" {
				cand.relative = lower
				continue
			}
			if h, ok := parseClock(g); ok && cand.hour < 0 {
				cand.hour = h
			}
		}
		return cand, cand.relative != ""

	case familyISO:
		if len(groups) != 3 {
			return dateCandidate{}, false
		}
		return numericCandidate(groups[0], groups[1], groups[2])

	case familySlash:
		if len(groups) != 3 {
			return dateCandidate{}, false
		}
		return numericCandidate(groups[2], groups[0], groups[1])
	}

	return dateCandidate{}, false
}

// classifyTokens assigns a role to each captured token by trying, in
// order: month name, clock time, day of month, plausible year. The first
// token of a given shape claims the role.
func classifyTokens(tokens []string) dateCandidate {
	cand := dateCandidate{hour: -1}

	for _, tok := range tokens {
		if tok == "" {
			continue
		}

		if m, ok := lookupMonth(tok); ok && cand.month == 0 {
			cand.month = m
			continue
		}

		if clockShapeRe.MatchString(tok) {
			// A malformed clock (e.g. "13pm") claims no other role either.
			if h, ok := parseClock(tok); ok && cand.hour < 0 {
				cand.hour = h
			}
			continue
		}

		if d, ok := parseDayNumber(tok); ok && cand.day == 0 {
			cand.day = d
			continue
		}

		if y, ok := parseYear(tok); ok && cand.year == 0 {
			cand.year = y
		}
	}

	return cand
}

// numericCandidate builds an explicit-year candidate from numeric date
// parts, rejecting out-of-range months and days up front.
func numericCandidate(yearStr, monthStr, dayStr string) (dateCandidate, bool) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return dateCandidate{}, false
	}
	return dateCandidate{
		day:   day,
		month: time.Month(month),
		year:  year,
		hour:  -1,
	}, true
}

// resolve turns the candidate into an absolute instant.
//
// Relative keywords add 0 or 1 day to ref and keep ref's clock time
// unless an explicit hour was captured. Date-bearing candidates need
// both a day and a month; a missing year is inferred from ref, and an
// inferred date that lands strictly before ref rolls forward one year
// unless the text mentions "today".
func (c dateCandidate) resolve(text string, ref time.Time) (time.Time, bool) {
	loc := ref.Location()

	if c.relative != "" {
		base := ref
		if c.relative == "tomorrow" {
			base = base.AddDate(0, 0, 1)
		}
		if c.hour >= 0 {
			return time.Date(base.Year(), base.Month(), base.Day(), c.hour, 0, 0, 0, loc), true
		}
		return time.Date(base.Year(), base.Month(), base.Day(), base.Hour(), base.Minute(), 0, 0, loc), true
	}

	if c.day == 0 || c.month == 0 {
		return time.Time{}, false
	}

	year := c.year
	inferred := year == 0
	if inferred {
		year = ref.Year()
	}

	hour := c.hour
	if hour < 0 {
		hour = 0
	}

	t := time.Date(year, c.month, c.day, hour, 0, 0, 0, loc)
	if t.Day() != c.day || t.Month() != c.month {
		// Impossible calendar date (e.g. Feb 31) normalized forward.
		return time.Time{}, false
	}

	if inferred && t.Before(ref) && !mentionsToday(text) {
		t = t.AddDate(1, 0, 0)
	}
	return t, true
}

func mentionsToday(text string) bool {
	return strings.Contains(strings.ToLower(text), "today")
}

// submatches returns the non-empty capture groups of a match.
func submatches(text string, loc []int) []string {
	var groups []string
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			continue
		}
		groups = append(groups, text[loc[i]:loc[i+1]])
	}
	return groups
}

// --- token shapes ---

// monthNames are the canonical month names; tokens match on their first
// three letters, case-insensitive.
var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

func lookupMonth(tok string) (time.Month, bool) {
	var letters strings.Builder
	for _, r := range strings.ToLower(tok) {
		if r >= 'a' && r <= 'z' {
			letters.WriteRune(r)
		}
	}
	s := letters.String()
	if len(s) < 3 {
		return 0, false
	}
	for i, name := range monthNames {
		if s[:3] == name[:3] {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

var clockShapeRe = regexp.MustCompile(`(?i)^(\d{1,2})(am|pm)$`)

// parseClock converts a 12-hour clock token to a 24-hour value:
// 12am -> 0, 12pm -> 12, otherwise pm adds 12.
func parseClock(tok string) (int, bool) {
	m := clockShapeRe.FindStringSubmatch(tok)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	if h < 1 || h > 12 {
		return 0, false
	}
	if strings.EqualFold(m[2], "pm") {
		if h != 12 {
			h += 12
		}
	} else if h == 12 {
		h = 0
	}
	return h, true
}

// parseDayNumber strips ordinal suffixes and accepts 1..31.
func parseDayNumber(tok string) (int, bool) {
	var digits strings.Builder
	for _, r := range tok {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 || digits.Len() > 2 {
		return 0, false
	}
	d, err := strconv.Atoi(digits.String())
	if err != nil || d < 1 || d > 31 {
		return 0, false
	}
	return d, true
}

// parseYear accepts four-digit years within the supported window.
func parseYear(tok string) (int, bool) {
	y, err := strconv.Atoi(tok)
	if err != nil || y < 2020 || y > 2030 {
		return 0, false
	}
	return y, true
}
