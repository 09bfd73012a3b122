package http

import (
	"github.com/Dev2197/smart-task-manager/internal/model"
	"github.com/Dev2197/smart-task-manager/internal/task"
	"github.com/Dev2197/smart-task-manager/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Text          string `json:"text"            binding:"required,min=1,max=2000"`
	Strategy      string `json:"strategy"        binding:"omitempty,oneof=rule-based llm"`
	AddToCalendar bool   `json:"add_to_calendar"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Text:          r.Text,
		Strategy:      model.ParseStrategy(r.Strategy),
		AddToCalendar: r.AddToCalendar,
	}
}

type parseReq struct {
	Text     string `json:"text"     binding:"required,min=1,max=2000"`
	Strategy string `json:"strategy" binding:"omitempty,oneof=rule-based llm"`
}

func (r parseReq) toInput() task.ParseTaskInput {
	return task.ParseTaskInput{
		Text:     r.Text,
		Strategy: model.ParseStrategy(r.Strategy),
	}
}

type listReq struct {
	Assignee  string `form:"assignee"`
	Priority  string `form:"priority" binding:"omitempty,oneof=P1 P2 P3 P4"`
	Completed *bool  `form:"completed"`
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		Assignee:  r.Assignee,
		Priority:  r.Priority,
		Completed: r.Completed,
	}
}

type updateReq struct {
	ID        string  `json:"-"` // populated from URI param
	Title     *string `json:"title"     binding:"omitempty,min=1,max=500"`
	Assignee  *string `json:"assignee"  binding:"omitempty,max=255"`
	DueDate   *string `json:"due_date"  binding:"omitempty,max=255"`
	Priority  *string `json:"priority"`
	Completed *bool   `json:"completed"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:        r.ID,
		Title:     r.Title,
		Assignee:  r.Assignee,
		DueDate:   r.DueDate,
		Priority:  r.Priority,
		Completed: r.Completed,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Assignee     string             `json:"assignee,omitempty"`
	DueDate      *response.DateTime `json:"due_date,omitempty"`
	DueLabel     string             `json:"due_label,omitempty"`
	Priority     string             `json:"priority"`
	Completed    bool               `json:"completed"`
	Strategy     string             `json:"strategy"`
	CalendarLink string             `json:"calendar_link,omitempty"`
	CreatedAt    response.DateTime  `json:"created_at"`
	UpdatedAt    response.DateTime  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:           t.ID,
		Title:        t.Title,
		Assignee:     t.Assignee,
		Priority:     string(t.Priority),
		Completed:    t.Completed,
		Strategy:     string(t.Strategy),
		CalendarLink: t.CalendarLink,
		CreatedAt:    response.DateTime(t.CreatedAt),
		UpdatedAt:    response.DateTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		due := response.DateTime(*t.DueDate)
		resp.DueDate = &due
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

// parseResp is the preview shape: extracted fields only, nothing stored.
type parseResp struct {
	Title    string             `json:"title"`
	Assignee string             `json:"assignee,omitempty"`
	DueDate  *response.DateTime `json:"due_date,omitempty"`
	Priority string             `json:"priority"`
	Strategy string             `json:"strategy"`
}

func (h *handler) newParseResp(out task.ParseTaskOutput) parseResp {
	resp := parseResp{
		Title:    out.Record.Title,
		Assignee: out.Record.Assignee,
		Priority: string(out.Record.Priority),
		Strategy: string(out.Strategy),
	}
	if out.Record.DueDate != nil {
		due := response.DateTime(*out.Record.DueDate)
		resp.DueDate = &due
	}
	return resp
}

type priorityGroupResp struct {
	Priority string     `json:"priority"`
	Tasks    []taskResp `json:"tasks"`
}

type listResp struct {
	Groups []priorityGroupResp `json:"groups"`
	Total  int                 `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	groups := make([]priorityGroupResp, len(out.Groups))
	for i, g := range out.Groups {
		tasks := make([]taskResp, len(g.Tasks))
		for j, t := range g.Tasks {
			tr := newTaskResp(t.Task)
			tr.DueLabel = t.DueLabel
			tasks[j] = tr
		}
		groups[i] = priorityGroupResp{Priority: string(g.Priority), Tasks: tasks}
	}
	return listResp{Groups: groups, Total: out.Total}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	tr := newTaskResp(out.Task)
	tr.DueLabel = out.DueLabel
	return detailResp{Task: tr}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
