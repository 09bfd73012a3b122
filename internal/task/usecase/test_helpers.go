package usecase

import (
	"context"
	"time"

	"github.com/Dev2197/smart-task-manager/internal/extractor/rulebased"
	"github.com/Dev2197/smart-task-manager/internal/model"
	"github.com/Dev2197/smart-task-manager/internal/task/repository/inmem"
	"github.com/Dev2197/smart-task-manager/pkg/datemath"
	"github.com/Dev2197/smart-task-manager/pkg/gcalendar"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar for testing
type mockCalendar struct {
	created  []gcalendar.CreateEventRequest
	listed   []gcalendar.ListEventsRequest
	existing []gcalendar.Event
	err      error
	listErr  error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{
		ID:        "event-1",
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/event-1",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.listed = append(m.listed, req)
	return m.existing, nil
}

// Mock strategy with a canned result or error
type stubStrategy struct {
	name model.ParseStrategy
	rec  taskparse.Record
	err  error
}

func (s *stubStrategy) Name() model.ParseStrategy { return s.name }

func (s *stubStrategy) Extract(ctx context.Context, text string, ref time.Time) (taskparse.Record, error) {
	if s.err != nil {
		return taskparse.Record{}, s.err
	}
	return s.rec, nil
}

var testRef = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

// newTestUseCase wires a use case around the in-memory repository with a
// frozen clock. Callers adjust fields afterwards as needed.
func newTestUseCase() (*implUseCase, *mockCalendar) {
	l := &mockLogger{}
	dm, _ := datemath.NewParser("UTC")
	cal := &mockCalendar{}

	uc := New(l, inmem.New(l), rulebased.New(), nil, cal, dm, "primary")
	uc.now = func() time.Time { return testRef }
	return uc, cal
}
