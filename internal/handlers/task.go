package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Shubha258/Task-Manager/internal/middleware"
	"github.com/Shubha258/Task-Manager/internal/models"
	"github.com/Shubha258/Task-Manager/internal/services"
	"github.com/gin-gonic/gin"
)

// TaskHandler coordinates task CRUD HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns all tasks owned by the current user.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	tasks, err := h.taskService.ListTasks(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":  tasks,
		"status": true,
		"msg":    "Tasks found successfully..",
	})
}

// GetTask returns one of the current user's tasks by ID. The lookup is scoped
// to the owner, so another user's task reads as missing.
func (h *TaskHandler) GetTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid task ID"})
		return
	}

	task, err := h.taskService.GetTask(user.ID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "No task found.."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":   task,
		"status": true,
		"msg":    "Task found successfully..",
	})
}

// CreateTask creates a task owned by the current user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	type CreateTaskRequest struct {
		Description string `json:"description"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Description of task not found"})
		return
	}

	task, err := h.taskService.CreateTask(user.ID, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrDescriptionRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Description of task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"task":   task,
		"status": true,
		"msg":    "Task created successfully..",
	})
}

// UpdateTask updates a task's description and status. A task owned by someone
// else is reported as forbidden, not missing.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid task ID"})
		return
	}

	type UpdateTaskRequest struct {
		Description string            `json:"description"`
		Status      models.TaskStatus `json:"status"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Description of task not found"})
		return
	}

	task, err := h.taskService.UpdateTask(user.ID, taskID, req.Description, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDescriptionRequired):
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Description of task not found"})
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "Task with given id not found"})
		case errors.Is(err, services.ErrNotTaskOwner):
			c.JSON(http.StatusForbidden, gin.H{"status": false, "msg": "You can't update task of another user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":   task,
		"status": true,
		"msg":    "Task updated successfully..",
	})
}

// DeleteTask deletes a task owned by the current user.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid task ID"})
		return
	}

	if err := h.taskService.DeleteTask(user.ID, taskID); err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "Task with given id not found"})
		case errors.Is(err, services.ErrNotTaskOwner):
			c.JSON(http.StatusForbidden, gin.H{"status": false, "msg": "You can't delete task of another user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"msg":    "Task deleted successfully..",
	})
}
