package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Dev2197/smart-task-manager/internal/task"
	"github.com/Dev2197/smart-task-manager/internal/task/repository"
	"github.com/Dev2197/smart-task-manager/pkg/gcalendar"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

const calendarEventDuration = time.Hour

// Create parses the input text and stores the resulting task. When a due
// date was found and calendar sync is requested, a Google Calendar event
// is scheduled; calendar failures are logged but never fail the create.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyText
	}

	strategy, err := uc.pickStrategy(input.Strategy)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}

	ref := uc.now()
	rec, used := uc.extract(ctx, strategy, text, ref)

	calendarLink := ""
	if input.AddToCalendar && rec.DueDate != nil {
		calendarLink = uc.tryCreateCalendarEvent(ctx, rec)
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:        rec.Title,
		Assignee:     rec.Assignee,
		DueDate:      rec.DueDate,
		Priority:     rec.Priority,
		Strategy:     used,
		RawText:      text,
		CalendarLink: calendarLink,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}

// tryCreateCalendarEvent schedules a one-hour event at the due instant.
// Returns the event link, or "" when the calendar is unavailable.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, rec taskparse.Record) string {
	if uc.calendar == nil {
		return ""
	}

	description := "Task created via Smart Task Manager"
	if rec.Assignee != "" {
		description += "\nAssignee: " + rec.Assignee
	}

	// Surface scheduling conflicts in the logs; the event is created
	// either way and a lookup failure is not fatal.
	existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    *rec.DueDate,
		TimeMax:    rec.DueDate.Add(calendarEventDuration),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create calendar lookup: %v", err)
	} else if len(existing) > 0 {
		uc.l.Warnf(ctx, "uc.Create: %d calendar event(s) already in %s - %s",
			len(existing), rec.DueDate.Format(time.RFC3339), rec.DueDate.Add(calendarEventDuration).Format(time.RFC3339))
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     rec.Title,
		Description: description,
		StartTime:   *rec.DueDate,
		EndTime:     rec.DueDate.Add(calendarEventDuration),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create calendar event: %v", err)
		return ""
	}
	return event.HtmlLink
}
