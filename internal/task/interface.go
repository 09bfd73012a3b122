package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Create parses raw text into task fields and stores the task,
	// optionally scheduling a Google Calendar event for its due date.
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)

	// Parse runs extraction without persisting anything.
	Parse(ctx context.Context, input ParseTaskInput) (ParseTaskOutput, error)

	// Task CRUD
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error
}
