package taskparse

import (
	"regexp"
	"strings"
	"unicode"
)

// assigneePrepRe locates the prepositions that introduce a person
// reference. "assigned to" must come before "to" would ever be tried,
// so it leads the alternation.
var assigneePrepRe = regexp.MustCompile(`(?i)\b(?:assigned\s+to|by|for)\b`)

var terminatorRe = regexp.MustCompile(`(?i)^(?:by|on|at|p[1-4])$`)

// extractAssignee finds a phrase of the form
//
//	(by|for|assigned to) <name words>
//
// where name words are one or more purely alphabetic tokens, terminated
// by another by/on/at, a priority token, or end of string. The terminator
// acts as a lookahead: the returned span covers only the preposition and
// the name, so the terminator survives into the title. First match wins.
func extractAssignee(text string) (string, *span) {
	for _, loc := range assigneePrepRe.FindAllStringIndex(text, -1) {
		name, end := scanNameTokens(text, loc[1])
		if name != "" {
			return name, &span{start: loc[0], end: end}
		}
	}
	return "", nil
}

// scanNameTokens reads alphabetic words starting at pos until a
// terminator or end of string. A non-alphabetic, non-terminator token
// (a digit, a date fragment) disqualifies the whole candidate, which
// is what keeps "by June 20th" from producing assignee "June".
// Returns the joined name and the end offset of its last word.
func scanNameTokens(text string, pos int) (string, int) {
	var words []string
	end := pos

	i := pos
	for i < len(text) {
		for i < len(text) && unicode.IsSpace(rune(text[i])) {
			i++
		}
		if i >= len(text) {
			break
		}

		j := i
		for j < len(text) && !unicode.IsSpace(rune(text[j])) {
			j++
		}
		word := text[i:j]

		if terminatorRe.MatchString(word) {
			break
		}
		if !isAlphaWord(word) {
			return "", 0
		}

		words = append(words, word)
		end = j
		i = j
	}

	if len(words) == 0 {
		return "", 0
	}
	return strings.Join(words, " "), end
}

func isAlphaWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
