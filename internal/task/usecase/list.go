package usecase

import (
	"context"
	"sort"

	"github.com/Dev2197/smart-task-manager/internal/model"
	"github.com/Dev2197/smart-task-manager/internal/task"
	"github.com/Dev2197/smart-task-manager/internal/task/repository"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

var priorityOrder = []taskparse.Priority{
	taskparse.PriorityP1,
	taskparse.PriorityP2,
	taskparse.PriorityP3,
	taskparse.PriorityP4,
}

// List returns tasks grouped by priority, P1 first. Within a group,
// tasks with due dates come first in due order; undated tasks follow in
// creation order. Empty groups are omitted.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Assignee:  input.Assignee,
		Priority:  taskparse.Priority(input.Priority),
		Completed: input.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	byPriority := make(map[taskparse.Priority][]model.Task, len(priorityOrder))
	for _, t := range tasks {
		byPriority[t.Priority] = append(byPriority[t.Priority], t)
	}

	groups := make([]task.PriorityGroup, 0, len(byPriority))
	for _, p := range priorityOrder {
		bucket := byPriority[p]
		if len(bucket) == 0 {
			continue
		}
		sortByDue(bucket)

		items := make([]task.TaskWithLabel, len(bucket))
		for i, t := range bucket {
			items[i] = task.TaskWithLabel{Task: t, DueLabel: uc.dueLabel(t)}
		}
		groups = append(groups, task.PriorityGroup{Priority: p, Tasks: items})
	}

	return task.ListTasksOutput{Groups: groups, Total: total}, nil
}

// sortByDue orders dated tasks ascending by due instant ahead of undated
// ones, keeping the incoming (creation) order among undated tasks.
func sortByDue(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, dj := tasks[i].DueDate, tasks[j].DueDate
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})
}
