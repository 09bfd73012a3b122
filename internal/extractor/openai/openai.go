package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Dev2197/smart-task-manager/internal/extractor"
	"github.com/Dev2197/smart-task-manager/internal/model"
	pkgLog "github.com/Dev2197/smart-task-manager/pkg/log"
	pkgOpenAI "github.com/Dev2197/smart-task-manager/pkg/openai"
	"github.com/Dev2197/smart-task-manager/pkg/taskparse"
)

const (
	cacheSize = 512
	cacheTTL  = 10 * time.Minute

	requestTemperature = 0.1
	requestMaxTokens   = 500
)

// Extractor delegates extraction to the OpenAI chat completion API and
// normalizes the returned JSON into the shared Record contract. Identical
// text parsed against the same reference minute is served from an
// in-memory cache to avoid duplicate backend calls.
type Extractor struct {
	l      pkgLog.Logger
	client pkgOpenAI.IOpenAI
	cache  *expirable.LRU[string, taskparse.Record]
}

var _ extractor.Strategy = (*Extractor)(nil)

// New creates an LLM-backed extraction strategy.
func New(l pkgLog.Logger, client pkgOpenAI.IOpenAI) *Extractor {
	return &Extractor{
		l:      l,
		client: client,
		cache:  expirable.NewLRU[string, taskparse.Record](cacheSize, nil, cacheTTL),
	}
}

func (e *Extractor) Name() model.ParseStrategy {
	return model.StrategyLLM
}

// Extract sends one completion request and applies post-normalization:
// invalid date strings become a nil due date, years the input never
// mentions are replaced with the reference year, and inferred years that
// land in the past roll forward by one.
func (e *Extractor) Extract(ctx context.Context, text string, ref time.Time) (taskparse.Record, error) {
	key := cacheKey(text, ref)
	if rec, ok := e.cache.Get(key); ok {
		return rec, nil
	}

	resp, err := e.client.CreateChatCompletion(ctx, &pkgOpenAI.Request{
		Model:          e.client.Model(),
		Messages:       pkgOpenAI.BuildTaskParsingMessages(text, ref),
		Temperature:    requestTemperature,
		MaxTokens:      requestMaxTokens,
		ResponseFormat: &pkgOpenAI.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return taskparse.Record{}, fmt.Errorf("%w: %v", extractor.ErrBackendTransport, err)
	}
	if len(resp.Choices) == 0 {
		return taskparse.Record{}, fmt.Errorf("%w: no choices returned", extractor.ErrMalformedResponse)
	}

	rec, err := e.normalize(ctx, resp.Choices[0].Message.Content, text, ref)
	if err != nil {
		return taskparse.Record{}, err
	}

	e.cache.Add(key, rec)
	return rec, nil
}

// backendRecord is the wire shape the backend must return.
type backendRecord struct {
	Title    *string `json:"title"`
	Assignee *string `json:"assignee"`
	DueDate  *string `json:"dueDate"`
	Priority *string `json:"priority"`
}

var requiredKeys = []string{"title", "assignee", "dueDate", "priority"}

func (e *Extractor) normalize(ctx context.Context, content, text string, ref time.Time) (taskparse.Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return taskparse.Record{}, fmt.Errorf("%w: %v", extractor.ErrMalformedResponse, err)
	}
	for _, k := range requiredKeys {
		if _, ok := raw[k]; !ok {
			return taskparse.Record{}, fmt.Errorf("%w: missing key %q", extractor.ErrMalformedResponse, k)
		}
	}

	var br backendRecord
	if err := json.Unmarshal([]byte(content), &br); err != nil {
		return taskparse.Record{}, fmt.Errorf("%w: %v", extractor.ErrMalformedResponse, err)
	}

	rec := taskparse.Record{
		Title:    taskparse.PlaceholderTitle,
		Priority: taskparse.DefaultPriority,
	}
	if br.Title != nil && strings.TrimSpace(*br.Title) != "" {
		rec.Title = strings.TrimSpace(*br.Title)
	}
	if br.Assignee != nil {
		rec.Assignee = strings.TrimSpace(*br.Assignee)
	}
	if br.Priority != nil {
		p := strings.ToUpper(strings.TrimSpace(*br.Priority))
		if taskparse.ValidPriority(p) {
			rec.Priority = taskparse.Priority(p)
		}
	}
	if br.DueDate != nil && *br.DueDate != "" {
		due, ok := parseBackendDate(*br.DueDate, ref.Location())
		if !ok {
			e.l.Warnf(ctx, "extractor.openai: unparsable due date %q, dropping", *br.DueDate)
		} else {
			due = adjustYear(due, text, ref)
			rec.DueDate = &due
		}
	}

	return rec, nil
}

// parseBackendDate accepts the ISO-ish layouts the backend is prompted to
// emit. Layouts without a zone are interpreted in the reference location.
func parseBackendDate(s string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// adjustYear applies the omitted-year policy to a backend date: a year the
// input never literally mentions is treated as inferred and replaced with
// the reference year, then rolled forward one year if that puts the date
// in the past and the input does not say "today".
func adjustYear(due time.Time, text string, ref time.Time) time.Time {
	if strings.Contains(text, strconv.Itoa(due.Year())) {
		return due
	}
	due = time.Date(ref.Year(), due.Month(), due.Day(), due.Hour(), due.Minute(), due.Second(), 0, due.Location())
	if due.Before(ref) && !strings.Contains(strings.ToLower(text), "today") {
		due = due.AddDate(1, 0, 0)
	}
	return due
}

func cacheKey(text string, ref time.Time) string {
	return ref.Truncate(time.Minute).Format(time.RFC3339) + "|" + text
}
