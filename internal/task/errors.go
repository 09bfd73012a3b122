package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyText       = errors.New("task text is empty")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDueDate  = errors.New("invalid due date")
	ErrUnknownStrategy = errors.New("unknown parse strategy")
)
