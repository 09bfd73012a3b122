package usecase

import (
	"context"
	"strings"

	"github.com/Dev2197/smart-task-manager/internal/task"
	"github.com/Dev2197/smart-task-manager/internal/task/repository"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if t.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: t, DueLabel: uc.dueLabel(t)}, nil
}

// Update applies a partial update. The due date accepts absolute strings
// and relative phrases; an empty string clears it.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	opt := repository.UpdateTaskOptions{
		ID:        input.ID,
		Title:     input.Title,
		Assignee:  input.Assignee,
		Completed: input.Completed,
	}

	if input.Priority != nil {
		p := strings.ToUpper(strings.TrimSpace(*input.Priority))
		if !taskparse.ValidPriority(p) {
			return task.UpdateTaskOutput{}, task.ErrInvalidPriority
		}
		priority := taskparse.Priority(p)
		opt.Priority = &priority
	}

	if input.DueDate != nil {
		if strings.TrimSpace(*input.DueDate) == "" {
			opt.ClearDueDate = true
		} else {
			due, err := uc.parseDueDateInput(*input.DueDate, uc.now())
			if err != nil {
				return task.UpdateTaskOutput{}, err
			}
			opt.DueDate = due
		}
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
