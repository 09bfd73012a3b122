package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dev2197/smart-task-manager/internal/extractor"
	"github.com/Dev2197/smart-task-manager/internal/model"
	"github.com/Dev2197/smart-task-manager/internal/task"
	"github.com/Dev2197/smart-task-manager/pkg/gcalendar"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

func TestCreate(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	out, err := uc.Create(ctx, task.CreateTaskInput{Text: "Review the design doc by Alice on June 20th 2pm P1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got := out.Task
	if got.ID == "" {
		t.Fatal("expected generated ID")
	}
	if got.Title != "Review the design doc on" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Assignee != "Alice" {
		t.Errorf("Assignee = %q, want Alice", got.Assignee)
	}
	if got.Priority != taskparse.PriorityP1 {
		t.Errorf("Priority = %q, want P1", got.Priority)
	}
	want := time.Date(2024, time.June, 20, 14, 0, 0, 0, time.UTC)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, want)
	}
	if got.Strategy != model.StrategyRuleBased {
		t.Errorf("Strategy = %q, want %q", got.Strategy, model.StrategyRuleBased)
	}
	if got.RawText != "Review the design doc by Alice on June 20th 2pm P1" {
		t.Errorf("RawText = %q", got.RawText)
	}
}

func TestCreateEmptyText(t *testing.T) {
	uc, _ := newTestUseCase()
	if _, err := uc.Create(context.Background(), task.CreateTaskInput{Text: "   "}); err != task.ErrEmptyText {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
}

func TestCreateUnknownStrategy(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), task.CreateTaskInput{Text: "x", Strategy: "psychic"})
	if err != task.ErrUnknownStrategy {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}

	// LLM requested but not configured
	_, err = uc.Create(context.Background(), task.CreateTaskInput{Text: "x", Strategy: model.StrategyLLM})
	if err != task.ErrUnknownStrategy {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestCreateLLMDefaultAndFallback(t *testing.T) {
	due := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

	t.Run("LLM is the default when configured", func(t *testing.T) {
		uc, _ := newTestUseCase()
		uc.llmBacked = &stubStrategy{
			name: model.StrategyLLM,
			rec:  taskparse.Record{Title: "From backend", Priority: taskparse.PriorityP2, DueDate: &due},
		}

		out, err := uc.Create(context.Background(), task.CreateTaskInput{Text: "whatever"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Task.Strategy != model.StrategyLLM {
			t.Errorf("Strategy = %q, want llm", out.Task.Strategy)
		}
		if out.Task.Title != "From backend" {
			t.Errorf("Title = %q", out.Task.Title)
		}
	})

	t.Run("Transport failure falls back to rule-based", func(t *testing.T) {
		uc, _ := newTestUseCase()
		uc.llmBacked = &stubStrategy{
			name: model.StrategyLLM,
			err:  extractor.ErrBackendTransport,
		}

		out, err := uc.Create(context.Background(), task.CreateTaskInput{Text: "Ship release P2"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Task.Strategy != model.StrategyRuleBased {
			t.Errorf("Strategy = %q, want rule-based", out.Task.Strategy)
		}
		if out.Task.Title != "Ship release" || out.Task.Priority != taskparse.PriorityP2 {
			t.Errorf("unexpected fallback result: %+v", out.Task)
		}
	})
}

func TestCreateCalendarEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Event scheduled for dated task", func(t *testing.T) {
		uc, cal := newTestUseCase()

		out, err := uc.Create(ctx, task.CreateTaskInput{
			Text:          "Demo for stakeholders tomorrow 3pm",
			AddToCalendar: true,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Task.CalendarLink != "https://calendar.google.com/event-1" {
			t.Errorf("CalendarLink = %q", out.Task.CalendarLink)
		}
		if len(cal.created) != 1 {
			t.Fatalf("calendar called %d times, want 1", len(cal.created))
		}
		req := cal.created[0]
		wantStart := time.Date(2024, time.May, 2, 15, 0, 0, 0, time.UTC)
		if !req.StartTime.Equal(wantStart) {
			t.Errorf("StartTime = %v, want %v", req.StartTime, wantStart)
		}
		if !req.EndTime.Equal(wantStart.Add(time.Hour)) {
			t.Errorf("EndTime = %v", req.EndTime)
		}
		if req.CalendarID != "primary" {
			t.Errorf("CalendarID = %q", req.CalendarID)
		}
	})

	t.Run("No event without a due date", func(t *testing.T) {
		uc, cal := newTestUseCase()

		out, err := uc.Create(ctx, task.CreateTaskInput{Text: "Tidy the backlog", AddToCalendar: true})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Task.CalendarLink != "" || len(cal.created) != 0 {
			t.Errorf("unexpected calendar activity: link=%q calls=%d", out.Task.CalendarLink, len(cal.created))
		}
	})

	t.Run("Conflict lookup covers the event window", func(t *testing.T) {
		uc, cal := newTestUseCase()
		cal.existing = []gcalendar.Event{{ID: "busy-1", Summary: "Standup"}}

		_, err := uc.Create(ctx, task.CreateTaskInput{Text: "Demo tomorrow 3pm", AddToCalendar: true})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if len(cal.listed) != 1 {
			t.Fatalf("ListEvents called %d times, want 1", len(cal.listed))
		}
		lookup := cal.listed[0]
		wantStart := time.Date(2024, time.May, 2, 15, 0, 0, 0, time.UTC)
		if !lookup.TimeMin.Equal(wantStart) || !lookup.TimeMax.Equal(wantStart.Add(time.Hour)) {
			t.Errorf("lookup window = [%v, %v], want [%v, %v]",
				lookup.TimeMin, lookup.TimeMax, wantStart, wantStart.Add(time.Hour))
		}
		if lookup.CalendarID != "primary" {
			t.Errorf("CalendarID = %q", lookup.CalendarID)
		}
		if len(cal.created) != 1 {
			t.Errorf("event not created despite conflicts: calls=%d", len(cal.created))
		}
	})

	t.Run("Lookup failure still creates the event", func(t *testing.T) {
		uc, cal := newTestUseCase()
		cal.listErr = errors.New("lookup unavailable")

		out, err := uc.Create(ctx, task.CreateTaskInput{Text: "Demo tomorrow 3pm", AddToCalendar: true})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Task.CalendarLink != "https://calendar.google.com/event-1" {
			t.Errorf("CalendarLink = %q", out.Task.CalendarLink)
		}
	})

	t.Run("Calendar failure does not fail the create", func(t *testing.T) {
		uc, cal := newTestUseCase()
		cal.err = errors.New("calendar unavailable")

		out, err := uc.Create(ctx, task.CreateTaskInput{Text: "Demo tomorrow 3pm", AddToCalendar: true})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Task.CalendarLink != "" {
			t.Errorf("CalendarLink = %q, want empty", out.Task.CalendarLink)
		}
	})
}
