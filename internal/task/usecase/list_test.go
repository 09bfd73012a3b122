package usecase

import (
	"context"
	"testing"

	"github.com/Dev2197/smart-task-manager/internal/task"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

func TestListGroupsByPriority(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	for _, text := range []string{
		"Fix login outage P1",
		"Write release notes by Friday P3",
		"Refine icons P4",
		"Patch dependency audit P1",
	} {
		if _, err := uc.Create(ctx, task.CreateTaskInput{Text: text}); err != nil {
			t.Fatalf("Create(%q): %v", text, err)
		}
	}

	out, err := uc.List(ctx, task.ListTasksInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Total != 4 {
		t.Errorf("Total = %d, want 4", out.Total)
	}
	if len(out.Groups) != 3 {
		t.Fatalf("got %d groups, want 3 (empty P2 omitted)", len(out.Groups))
	}

	wantOrder := []taskparse.Priority{taskparse.PriorityP1, taskparse.PriorityP3, taskparse.PriorityP4}
	for i, g := range out.Groups {
		if g.Priority != wantOrder[i] {
			t.Errorf("group %d priority = %q, want %q", i, g.Priority, wantOrder[i])
		}
	}
	if len(out.Groups[0].Tasks) != 2 {
		t.Errorf("P1 group size = %d, want 2", len(out.Groups[0].Tasks))
	}
}

func TestListDueOrderAndLabels(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	// All P3. Reference day is 2024-05-01.
	for _, text := range []string{
		"Organize files",          // no due date
		"Plan offsite 2024-06-10", // later
		"Standup notes tomorrow",  // 2024-05-02
		"Quarter report today",    // 2024-05-01
	} {
		if _, err := uc.Create(ctx, task.CreateTaskInput{Text: text}); err != nil {
			t.Fatalf("Create(%q): %v", text, err)
		}
	}

	out, err := uc.List(ctx, task.ListTasksInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(out.Groups))
	}

	tasks := out.Groups[0].Tasks
	if len(tasks) != 4 {
		t.Fatalf("group size = %d, want 4", len(tasks))
	}

	wantLabels := []string{"Today", "Tomorrow", "Jun 10", ""}
	for i, want := range wantLabels {
		if tasks[i].DueLabel != want {
			t.Errorf("task %d (%q) label = %q, want %q", i, tasks[i].Task.Title, tasks[i].DueLabel, want)
		}
	}
	if tasks[3].Task.DueDate != nil {
		t.Errorf("undated task should sort last, got %+v", tasks[3].Task)
	}
}

func TestListFilters(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	uc.Create(ctx, task.CreateTaskInput{Text: "Draft proposal by Alice P2"})
	uc.Create(ctx, task.CreateTaskInput{Text: "Fix bug by Bob P2"})

	out, err := uc.List(ctx, task.ListTasksInput{Assignee: "Alice"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Total != 1 || out.Groups[0].Tasks[0].Task.Assignee != "Alice" {
		t.Errorf("assignee filter failed: %+v", out)
	}
}
