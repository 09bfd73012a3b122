package task

import (
	"github.com/Dev2197/smart-task-manager/internal/model"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

// --- UseCase Inputs ---

// CreateTaskInput is the input for creating a task from natural language.
type CreateTaskInput struct {
	Text          string              // e.g. "Review the design doc by Alice June 20th 2pm P1"
	Strategy      model.ParseStrategy // optional override; empty uses the service default
	AddToCalendar bool                // schedule a Google Calendar event when a due date exists
}

// ParseTaskInput is the input for a parse-only preview (nothing is stored).
type ParseTaskInput struct {
	Text     string
	Strategy model.ParseStrategy
}

// ListTasksInput holds the optional filters for listing tasks.
type ListTasksInput struct {
	Assignee  string
	Priority  string // P1..P4
	Completed *bool  // nil means both
}

// UpdateTaskInput is a partial update: nil fields are left unchanged.
type UpdateTaskInput struct {
	ID        string
	Title     *string
	Assignee  *string // pointer so "" can clear the assignee
	DueDate   *string // absolute ("2025-06-20 14:00") or relative ("tomorrow"); "" clears
	Priority  *string
	Completed *bool
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

// ParseTaskOutput carries the extracted fields and which engine produced them.
type ParseTaskOutput struct {
	Record   taskparse.Record
	Strategy model.ParseStrategy
}

// TaskWithLabel pairs a task with its human-readable due label
// ("Overdue", "Today", "Tomorrow", "Jun 20").
type TaskWithLabel struct {
	Task     model.Task
	DueLabel string // empty when the task has no due date
}

// PriorityGroup is one bucket of the priority-grouped task list.
type PriorityGroup struct {
	Priority taskparse.Priority
	Tasks    []TaskWithLabel
}

// ListTasksOutput groups tasks by priority, P1 first. Within a group,
// tasks with due dates come first in due order.
type ListTasksOutput struct {
	Groups []PriorityGroup
	Total  int
}

type DetailTaskOutput struct {
	Task     model.Task
	DueLabel string
}

type UpdateTaskOutput struct {
	Task model.Task
}
