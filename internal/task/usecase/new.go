package usecase

import (
	"time"

	"github.com/Dev2197/smart-task-manager/internal/extractor"
	"github.com/Dev2197/smart-task-manager/internal/task/repository"
	"github.com/Dev2197/smart-task-manager/pkg/datemath"
	"github.com/Dev2197/smart-task-manager/pkg/gcalendar"
	pkgLog "github.com/Dev2197/smart-task-manager/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	ruleBased  extractor.Strategy
	llmBacked  extractor.Strategy  // nil when no backend is configured
	calendar   gcalendar.ICalendar // nil when calendar sync is disabled
	dateMath   *datemath.Parser
	calendarID string
	now        func() time.Time
}

// New creates a new task UseCase instance. llmBacked and calendar are
// optional; pass nil to run rule-based only without calendar sync.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	ruleBased extractor.Strategy,
	llmBacked extractor.Strategy,
	calendar gcalendar.ICalendar,
	dateMath *datemath.Parser,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		ruleBased:  ruleBased,
		llmBacked:  llmBacked,
		calendar:   calendar,
		dateMath:   dateMath,
		calendarID: calendarID,
		now:        time.Now,
	}
}
