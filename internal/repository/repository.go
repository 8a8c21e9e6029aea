package repository

import (
	"github.com/mytodoapp/mytodo-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user. A duplicate email surfaces as
	// gorm.ErrDuplicatedKey from the single INSERT.
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task
	Create(task *models.Task) error

	// ListByOwner returns the owner's tasks, newest first
	ListByOwner(ownerID uint64) ([]models.Task, error)

	// Update applies the given fields to the task identified by both
	// taskID and ownerID. Zero matched rows surface as
	// gorm.ErrRecordNotFound.
	Update(taskID, ownerID uint64, fields TaskUpdate) error

	// Delete removes the task identified by both taskID and ownerID.
	// Zero matched rows surface as gorm.ErrRecordNotFound.
	Delete(taskID, ownerID uint64) error
}

// TaskUpdate is the closed set of updatable task columns. Nil fields are
// left untouched; the SET clause is built only from this enumeration,
// never from request keys.
type TaskUpdate struct {
	Title       *string
	Task        *string
	Description *string
}

// IsEmpty reports whether no field is set.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Task == nil && u.Description == nil
}
