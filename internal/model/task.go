package model

import (
	"time"

	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

// ParseStrategy identifies which extraction engine produced a task's fields.
type ParseStrategy string

const (
	StrategyRuleBased ParseStrategy = "rule-based"
	StrategyLLM       ParseStrategy = "llm"
)

// Task is the core entity managed by this service. Title, Assignee, DueDate
// and Priority come from the extraction engine; the rest is bookkeeping.
type Task struct {
	ID           string
	Title        string
	Assignee     string             // empty when no assignee was mentioned
	DueDate      *time.Time         // nil when no date was mentioned
	Priority     taskparse.Priority // P1..P4, defaults to P3
	Completed    bool
	Strategy     ParseStrategy // engine that parsed the original text
	RawText      string        // original input, kept for re-parsing
	CalendarLink string        // deep link to the Google Calendar event (may be empty)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
