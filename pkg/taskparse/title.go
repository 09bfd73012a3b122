package taskparse

import "strings"

// assembleTitle removes every matched span from the original text,
// collapses whitespace runs to single spaces, and trims. Overlapping
// spans are handled by masking bytes, so removal order does not matter.
// An empty remainder falls back to PlaceholderTitle.
func assembleTitle(text string, spans []span) string {
	drop := make([]bool, len(text))
	for _, s := range spans {
		for i := s.start; i < s.end && i < len(text); i++ {
			drop[i] = true
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if !drop[i] {
			b.WriteByte(text[i])
		}
	}

	title := strings.Join(strings.Fields(b.String()), " ")
	if title == "" {
		return PlaceholderTitle
	}
	return title
}
