package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Dev2197/smart-task-manager/internal/extractor"
	"github.com/Dev2197/smart-task-manager/internal/model"
	"github.com/Dev2197/smart-task-manager/internal/task"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

// pickStrategy resolves a requested strategy name to an implementation.
// Empty means the service default: LLM when configured, rule-based otherwise.
func (uc *implUseCase) pickStrategy(requested model.ParseStrategy) (extractor.Strategy, error) {
	switch requested {
	case "":
		if uc.llmBacked != nil {
			return uc.llmBacked, nil
		}
		return uc.ruleBased, nil
	case model.StrategyRuleBased:
		return uc.ruleBased, nil
	case model.StrategyLLM:
		if uc.llmBacked == nil {
			return nil, task.ErrUnknownStrategy
		}
		return uc.llmBacked, nil
	default:
		return nil, task.ErrUnknownStrategy
	}
}

// extract runs the chosen strategy. A failing LLM call degrades to the
// rule-based engine instead of failing the request; the strategy that
// actually produced the record is returned alongside it.
func (uc *implUseCase) extract(ctx context.Context, strategy extractor.Strategy, text string, ref time.Time) (taskparse.Record, model.ParseStrategy) {
	rec, err := strategy.Extract(ctx, text, ref)
	if err == nil {
		return rec, strategy.Name()
	}

	uc.l.Warnf(ctx, "uc.extract: %s strategy failed, falling back to rule-based: %v", strategy.Name(), err)
	rec, _ = uc.ruleBased.Extract(ctx, text, ref)
	return rec, uc.ruleBased.Name()
}

// absoluteDueLayouts are accepted for explicit due date strings on update.
var absoluteDueLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDueDateInput turns an update's due date string into an instant.
// Absolute layouts are tried first, then relative phrases ("tomorrow",
// "in 3 days", "next friday"), then the natural-language date resolver.
func (uc *implUseCase) parseDueDateInput(s string, ref time.Time) (*time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	for _, layout := range absoluteDueLayouts[1:] {
		if t, err := time.ParseInLocation(layout, s, ref.Location()); err == nil {
			return &t, nil
		}
	}

	if t, err := uc.dateMath.Parse(s, ref); err == nil {
		return &t, nil
	}

	if rec := taskparse.Extract(s, ref); rec.DueDate != nil {
		return rec.DueDate, nil
	}

	return nil, task.ErrInvalidDueDate
}

// dueLabel renders the human-readable label for a task's due date.
func (uc *implUseCase) dueLabel(t model.Task) string {
	if t.DueDate == nil {
		return ""
	}
	return uc.dateMath.RelativeLabel(*t.DueDate, uc.now())
}
