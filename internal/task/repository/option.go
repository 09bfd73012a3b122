package repository

import (
	"time"

	"github.com/Dev2197/smart-task-manager/internal/model"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title        string
	Assignee     string
	DueDate      *time.Time
	Priority     taskparse.Priority
	Strategy     model.ParseStrategy
	RawText      string
	CalendarLink string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// Zero values mean "no filter"; Limit <= 0 means no limit.
type ListTasksOptions struct {
	Assignee  string
	Priority  taskparse.Priority
	Completed *bool
	Limit     int
	Offset    int
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// Nil pointer fields are left unchanged; ClearDueDate removes the due date.
type UpdateTaskOptions struct {
	ID           string
	Title        *string
	Assignee     *string
	DueDate      *time.Time
	ClearDueDate bool
	Priority     *taskparse.Priority
	Completed    *bool
}
