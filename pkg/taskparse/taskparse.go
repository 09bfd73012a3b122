// Package taskparse turns a free-text task sentence such as
// "Review by June 20th 2pm P1" into structured task fields: a title,
// an optional assignee, an optional absolute due date, and a priority.
//
// Extraction is pure computation over the input text and a caller-supplied
// reference time, so results are deterministic and safe for concurrent use.
package taskparse

import "time"

// Priority is one of the four task priority levels.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"

	// DefaultPriority is used when the text carries no priority token.
	DefaultPriority = PriorityP3
)

// PlaceholderTitle is substituted when stripping all matched fields
// leaves an empty title.
const PlaceholderTitle = "Untitled Task"

// Record is the structured output of one extraction. DueDate, when set,
// is a fully specified instant (year, month, day, hour, minute) in the
// reference time's location.
type Record struct {
	Title    string
	Assignee string
	DueDate  *time.Time
	Priority Priority
}

// span marks a matched half-open byte range [start, end) of the input text.
type span struct {
	start, end int
}

// Extract runs the priority, assignee, and date extractors against the
// original text (each independently, never against another's output),
// then assembles the title from whatever the matches left behind.
//
// ref is the instant treated as "now": it supplies the year for dates
// that omit one, the base day for "today"/"tomorrow", and the cutoff for
// past-date rollover.
func Extract(text string, ref time.Time) Record {
	spans := make([]span, 0, 3)

	priority, pSpan := extractPriority(text)
	if pSpan != nil {
		spans = append(spans, *pSpan)
	}

	assignee, aSpan := extractAssignee(text)
	if aSpan != nil {
		spans = append(spans, *aSpan)
	}

	due, dSpan := resolveDate(text, ref)
	if dSpan != nil {
		spans = append(spans, *dSpan)
	}

	return Record{
		Title:    assembleTitle(text, spans),
		Assignee: assignee,
		DueDate:  due,
		Priority: priority,
	}
}

// ValidPriority reports whether s is one of the four priority levels.
func ValidPriority(s string) bool {
	switch Priority(s) {
	case PriorityP1, PriorityP2, PriorityP3, PriorityP4:
		return true
	}
	return false
}
