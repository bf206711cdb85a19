package services

import (
	"errors"
	"fmt"

	"github.com/Shubha258/Task-Manager/internal/models"
	"github.com/Shubha258/Task-Manager/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrNotTaskOwner        = errors.New("task belongs to another user")
	ErrDescriptionRequired = errors.New("description is required")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// ListTasks returns all tasks owned by a user, in store order
func (s *TaskService) ListTasks(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task by ID scoped to its owner. A task owned by someone
// else is indistinguishable from a missing one here.
func (s *TaskService) GetTask(userID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByIDAndOwner(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTask creates a task owned by the user, defaulting to pending status
func (s *TaskService) CreateTask(userID uint64, description string) (*models.Task, error) {
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	task := &models.Task{
		UserID:      userID,
		Description: description,
		Status:      models.TaskStatusPending,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask updates a task's description and status. The task is fetched by
// ID alone and ownership is compared in application code, so a cross-owner
// update is rejected with ErrNotTaskOwner rather than reported as missing.
// The status value is not validated here; the store column is the only
// constraint on it.
func (s *TaskService) UpdateTask(userID, taskID uint64, description string, status models.TaskStatus) (*models.Task, error) {
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.UserID != userID {
		return nil, ErrNotTaskOwner
	}

	task.Description = description
	if status != "" {
		task.Status = status
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask deletes a task after the same fetch-then-compare ownership check
// as UpdateTask.
func (s *TaskService) DeleteTask(userID, taskID uint64) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if task.UserID != userID {
		return ErrNotTaskOwner
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
