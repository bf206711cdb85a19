package repository

import (
	"github.com/Shubha258/Task-Manager/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID alone, regardless of owner
	FindByID(id uint64) (*models.Task, error)

	// FindByIDAndOwner finds a task by ID scoped to its owner
	FindByIDAndOwner(id, userID uint64) (*models.Task, error)

	// ListByOwner lists all tasks owned by a user, in store order
	ListByOwner(userID uint64) ([]models.Task, error)

	// Update saves changes to a task
	Update(task *models.Task) error

	// Delete removes a task
	Delete(id uint64) error
}
