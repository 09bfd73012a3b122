package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Dev2197/smart-task-manager/internal/task"
	"github.com/Dev2197/smart-task-manager/pkg/response"
)

// respondError translates domain errors into the right HTTP response.
// Unknown errors become an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case task.ErrEmptyText, task.ErrInvalidPriority, task.ErrInvalidDueDate, task.ErrUnknownStrategy:
		response.Error(c, err)
	case task.ErrTaskNotFound:
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
