package dto

import (
	"time"

	"github.com/mytodoapp/mytodo-api/internal/models"
)

// AddTaskRequest is the payload for POST /api/add_task. Description is
// optional and defaults to the empty string.
type AddTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Task        string `json:"task" binding:"required"`
	Description string `json:"description"`
}

// UpdateTaskRequest is the payload for PATCH /update-task/:id. Absent
// fields stay untouched; at least one must be present.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Task        *string `json:"task"`
	Description *string `json:"description"`
}

// DeleteTaskRequest is the payload for POST /delete-task.
type DeleteTaskRequest struct {
	TaskID uint64 `json:"task_id" binding:"required"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Task        string    `json:"task"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskListResponse is the body of GET /api/show_task.
type TaskListResponse struct {
	Tasks []TaskDTO `json:"tasks"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Task:        task.Task,
		Description: task.Description,
		CreatedAt:   task.CreatedAt,
	}
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}

	return TaskListResponse{Tasks: items}
}
