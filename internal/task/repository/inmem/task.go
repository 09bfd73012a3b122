package inmem

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Dev2197/smart-task-manager/internal/model"
	"github.com/Dev2197/smart-task-manager/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	now := r.now()
	t := model.Task{
		ID:           uuid.NewString(),
		Title:        opt.Title,
		Assignee:     opt.Assignee,
		DueDate:      opt.DueDate,
		Priority:     opt.Priority,
		Strategy:     opt.Strategy,
		RawText:      opt.RawText,
		CalendarLink: opt.CalendarLink,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.mu.Lock()
	r.tasks[t.ID] = t
	r.mu.Unlock()

	return t, nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	r.mu.RLock()
	matched := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.Assignee != "" && t.Assignee != opt.Assignee {
			continue
		}
		if opt.Priority != "" && t.Priority != opt.Priority {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		matched = append(matched, t)
	}
	r.mu.RUnlock()

	// Stable order: creation time, then ID for same-instant inserts.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	if opt.Offset > 0 {
		if opt.Offset >= len(matched) {
			return []model.Task{}, total, nil
		}
		matched = matched[opt.Offset:]
	}
	if opt.Limit > 0 && opt.Limit < len(matched) {
		matched = matched[:opt.Limit]
	}

	return matched, total, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, repository.ErrFailedToUpdate
	}

	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Assignee != nil {
		t.Assignee = *opt.Assignee
	}
	if opt.ClearDueDate {
		t.DueDate = nil
	} else if opt.DueDate != nil {
		t.DueDate = opt.DueDate
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	t.UpdatedAt = r.now()

	r.tasks[opt.ID] = t
	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return repository.ErrFailedToDelete
	}
	delete(r.tasks, id)
	return nil
}
