package extractor

import (
	"context"
	"time"

	"github.com/Dev2197/smart-task-manager/internal/model"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

// Strategy extracts structured task fields from free text relative to a
// reference instant. All implementations share one output contract: a
// Record with defaults already applied (P3 priority, placeholder title,
// empty assignee, nil due date).
type Strategy interface {
	// Name identifies the strategy for storage and diagnostics.
	Name() model.ParseStrategy

	// Extract parses text into a Record. The rule-based implementation
	// never returns an error; backend-delegating implementations return
	// ErrBackendTransport or ErrMalformedResponse on failure.
	Extract(ctx context.Context, text string, ref time.Time) (taskparse.Record, error)
}
