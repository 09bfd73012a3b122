package taskparse

import (
	"regexp"
	"strings"
)

var priorityRe = regexp.MustCompile(`(?i)\b(p[1-4])\b`)

// extractPriority finds the first whole-word P1..P4 token, case-insensitive.
// Without a match it returns DefaultPriority and no span. It never fails.
func extractPriority(text string) (Priority, *span) {
	loc := priorityRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return DefaultPriority, nil
	}
	token := strings.ToUpper(text[loc[2]:loc[3]])
	return Priority(token), &span{start: loc[0], end: loc[1]}
}
