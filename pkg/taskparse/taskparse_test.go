package taskparse_test

import (
	"testing"
	"time"

	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

func TestExtract(t *testing.T) {
	ref := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want taskparse.Record
	}{
		{
			name: "Full sentence",
			text: "Review slides by June 20th 2pm P1",
			want: taskparse.Record{
				Title:    "Review slides by",
				Assignee: "",
				DueDate:  dt(2024, time.June, 20, 14, 0),
				Priority: taskparse.PriorityP1,
			},
		},
		{
			name: "Assignee priority and relative date",
			text: "Prepare demo for Sarah by tomorrow 3pm P2",
			want: taskparse.Record{
				Title:    "Prepare demo by",
				Assignee: "Sarah",
				DueDate:  dt(2024, time.May, 2, 15, 0),
				Priority: taskparse.PriorityP2,
			},
		},
		{
			name: "Name run broken by date is not an assignee",
			text: "Prepare demo for Sarah tomorrow 3pm",
			want: taskparse.Record{
				Title:    "Prepare demo for Sarah",
				Assignee: "",
				DueDate:  dt(2024, time.May, 2, 15, 0),
				Priority: taskparse.PriorityP3,
			},
		},
		{
			name: "Only title",
			text: "   water   the plants   ",
			want: taskparse.Record{
				Title:    "water the plants",
				Priority: taskparse.PriorityP3,
			},
		},
		{
			name: "Everything stripped falls back to placeholder",
			text: "p1 tomorrow by Alice",
			want: taskparse.Record{
				Title:    taskparse.PlaceholderTitle,
				Assignee: "Alice",
				DueDate:  dt(2024, time.May, 2, 10, 30),
				Priority: taskparse.PriorityP1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taskparse.Extract(tt.text, ref)
			assertRecord(t, got, tt.want)
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	ref := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	text := "Review slides by June 20th 2pm for Sarah P1"

	first := taskparse.Extract(text, ref)
	for i := 0; i < 5; i++ {
		assertRecord(t, taskparse.Extract(text, ref), first)
	}
}

func TestExtractIdempotentOnTitle(t *testing.T) {
	// Re-extracting from an assembled title must find nothing new:
	// no priority token, no assignee, no date.
	ref := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

	texts := []string{
		"Meeting tomorrow 3pm",
		"Submit by Dec 31, 2025",
		"Review by June 20th 2pm",
		"Dec 25",
		"Jan 5",
		"Deploy assigned to John Smith P1",
	}

	for _, text := range texts {
		first := taskparse.Extract(text, ref)
		second := taskparse.Extract(first.Title, ref)

		if second.Priority != taskparse.DefaultPriority {
			t.Errorf("%q: leftover priority %s in title %q", text, second.Priority, first.Title)
		}
		if second.Assignee != "" {
			t.Errorf("%q: leftover assignee %q in title %q", text, second.Assignee, first.Title)
		}
		if second.DueDate != nil {
			t.Errorf("%q: leftover date %v in title %q", text, second.DueDate, first.Title)
		}
	}
}

func assertRecord(t *testing.T, got, want taskparse.Record) {
	t.Helper()
	if got.Title != want.Title {
		t.Errorf("title = %q, want %q", got.Title, want.Title)
	}
	if got.Assignee != want.Assignee {
		t.Errorf("assignee = %q, want %q", got.Assignee, want.Assignee)
	}
	if got.Priority != want.Priority {
		t.Errorf("priority = %s, want %s", got.Priority, want.Priority)
	}
	switch {
	case want.DueDate == nil && got.DueDate != nil:
		t.Errorf("due date = %v, want none", got.DueDate)
	case want.DueDate != nil && got.DueDate == nil:
		t.Errorf("due date = none, want %v", want.DueDate)
	case want.DueDate != nil && !got.DueDate.Equal(*want.DueDate):
		t.Errorf("due date = %v, want %v", got.DueDate, want.DueDate)
	}
}
