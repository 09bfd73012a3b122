package openai

import (
	"fmt"
	"time"
)

const taskParsingSystemPrompt = `You are a task parsing assistant that extracts structured data from natural language task descriptions. Your job is to identify:

1. Task title (the main action/work to be done)
2. Assignee (the person responsible for the task)
3. Due date and time
4. Priority level (P1, P2, P3, or P4)

Guidelines for extraction:
- ALWAYS try to identify a person's name as the assignee, even if not explicitly marked with "by" or "for"
- If no priority is specified, default to P3
- Format dates as ISO strings with the following rules:
  * For explicit dates with year (e.g., "June 20, 2025"), use that exact year
  * For relative dates ("today", "tomorrow", "next Monday"), calculate from %s
  * For dates without year (e.g., "June 20"), use the current year (%d)
  * Always include time in the ISO string (default to 00:00:00 if no time specified)
- If a component is not found, use null

You must respond with valid JSON containing these exact keys: title, assignee, dueDate, priority`

const taskParsingUserPrompt = `Parse this task and extract the components according to the guidelines. Current date/time is: %s

Task: "%s"`

// BuildTaskParsingMessages builds the system and user messages for one
// task extraction request. The reference time is embedded so the model
// resolves relative dates against the caller's "now", not its own.
func BuildTaskParsingMessages(taskText string, ref time.Time) []Message {
	refStr := ref.Format(time.RFC3339)
	return []Message{
		{
			Role:    "system",
			Content: fmt.Sprintf(taskParsingSystemPrompt, refStr, ref.Year()),
		},
		{
			Role:    "user",
			Content: fmt.Sprintf(taskParsingUserPrompt, refStr, taskText),
		},
	}
}
