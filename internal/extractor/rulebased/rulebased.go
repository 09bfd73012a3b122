package rulebased

import (
	"context"
	"time"

	"github.com/Dev2197/smart-task-manager/internal/extractor"
	"github.com/Dev2197/smart-task-manager/internal/model"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

// Extractor is the pure, in-process extraction strategy. It is stateless
// and safe for concurrent use.
type Extractor struct{}

var _ extractor.Strategy = Extractor{}

// New creates a rule-based extraction strategy.
func New() Extractor {
	return Extractor{}
}

func (Extractor) Name() model.ParseStrategy {
	return model.StrategyRuleBased
}

// Extract is total: every input yields a Record, never an error.
func (Extractor) Extract(_ context.Context, text string, ref time.Time) (taskparse.Record, error) {
	return taskparse.Extract(text, ref), nil
}
