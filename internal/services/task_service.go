package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mytodoapp/mytodo-api/internal/models"
	"github.com/mytodoapp/mytodo-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrTaskBodyRequired = errors.New("task is required")
	ErrNothingToUpdate  = errors.New("nothing to update")
)

// TaskService handles task business logic. Every operation is scoped to
// the owning user; a foreign-owned task id behaves exactly like a missing
// one.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// AddTaskInput represents input for creating a task
type AddTaskInput struct {
	OwnerID     uint64
	Title       string
	Task        string
	Description string
}

// AddTask creates a new task. Description defaults to the empty string.
func (s *TaskService) AddTask(input AddTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(input.Task) == "" {
		return nil, ErrTaskBodyRequired
	}

	task := &models.Task{
		UserID:      input.OwnerID,
		Title:       input.Title,
		Task:        input.Task,
		Description: input.Description,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns the owner's tasks, newest first. An owner with no
// tasks gets an empty slice, never an error.
func (s *TaskService) ListTasks(ownerID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTaskInput represents the partial field set for updating a task.
// Nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Task        *string
	Description *string
}

// UpdateTask applies a partial update to a task owned by ownerID. At
// least one field must be present; an empty set fails before the store
// is touched.
func (s *TaskService) UpdateTask(taskID, ownerID uint64, input UpdateTaskInput) error {
	fields := repository.TaskUpdate{
		Title:       input.Title,
		Task:        input.Task,
		Description: input.Description,
	}
	if fields.IsEmpty() {
		return ErrNothingToUpdate
	}
	if fields.Title != nil && strings.TrimSpace(*fields.Title) == "" {
		return ErrTitleRequired
	}
	if fields.Task != nil && strings.TrimSpace(*fields.Task) == "" {
		return ErrTaskBodyRequired
	}

	if err := s.taskRepo.Update(taskID, ownerID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// DeleteTask deletes a task owned by ownerID. Deleting a missing or
// foreign-owned task reports ErrTaskNotFound, never a silent success.
func (s *TaskService) DeleteTask(taskID, ownerID uint64) error {
	if err := s.taskRepo.Delete(taskID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
