package delivery

import (
	"net/http"
	"time"

	"donorhub-backend/internal/task/dto"
	"donorhub-backend/internal/task/repository"
	"donorhub-backend/internal/task/usecase"
	"donorhub-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// GetTasks returns tasks matching the query filters
// GET /api/tasks?ownerId=u1&completed=true
func (h *TaskHandler) GetTasks(c *gin.Context) {
	var filters repository.TaskFilters

	if ownerID := c.Query("ownerId"); ownerID != "" {
		filters.OwnerID = &ownerID
	}
	if completed := c.Query("completed"); completed != "" {
		switch completed {
		case "true":
			one := 1
			filters.Completed = &one
		case "false":
			zero := 0
			filters.Completed = &zero
		default:
			response.BadRequest(c, "completed must be \"true\" or \"false\"")
			return
		}
	}
	if after := c.Query("dueAfter"); after != "" {
		t, err := time.Parse(time.RFC3339, after)
		if err != nil {
			response.BadRequest(c, "dueAfter must be an ISO-8601 timestamp")
			return
		}
		filters.DueAfter = &t
	}
	if before := c.Query("dueBefore"); before != "" {
		t, err := time.Parse(time.RFC3339, before)
		if err != nil {
			response.BadRequest(c, "dueBefore must be an ISO-8601 timestamp")
			return
		}
		filters.DueBefore = &t
	}

	tasks, err := h.taskUsecase.List(filters)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	task, err := h.taskUsecase.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	data, vErr := req.Parse()
	if vErr != nil {
		response.Error(c, vErr)
		return
	}

	task, err := h.taskUsecase.Create(data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update
// PATCH /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	data, vErr := req.Parse()
	if vErr != nil {
		response.Error(c, vErr)
		return
	}

	task, err := h.taskUsecase.Update(c.Param("id"), data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task and returns its prior representation
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, err := h.taskUsecase.Delete(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
