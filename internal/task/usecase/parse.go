package usecase

import (
	"context"
	"strings"

	"github.com/Dev2197/smart-task-manager/internal/task"
)

// Parse runs extraction and returns the structured fields without
// storing anything. Useful as a preview before Create.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseTaskInput) (task.ParseTaskOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.ParseTaskOutput{}, task.ErrEmptyText
	}

	strategy, err := uc.pickStrategy(input.Strategy)
	if err != nil {
		return task.ParseTaskOutput{}, err
	}

	rec, used := uc.extract(ctx, strategy, text, uc.now())
	return task.ParseTaskOutput{Record: rec, Strategy: used}, nil
}
