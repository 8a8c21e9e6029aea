package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mytodoapp/mytodo-api/internal/models"
	"gorm.io/gorm"
)

// ErrNoUpdateFields is returned when Update is called with an empty field set.
var ErrNoUpdateFields = errors.New("task repository: no fields to update")

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB, timeout time.Duration) TaskRepository {
	return &GormTaskRepository{db: db, timeout: timeout}
}

func (r *GormTaskRepository) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

// Create inserts a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	ctx, cancel := r.opContext()
	defer cancel()

	return r.db.WithContext(ctx).Create(task).Error
}

// ListByOwner returns the owner's tasks ordered by creation recency,
// with the id as insertion-order tiebreak.
func (r *GormTaskRepository) ListByOwner(ownerID uint64) ([]models.Task, error) {
	ctx, cancel := r.opContext()
	defer cancel()

	tasks := []models.Task{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update mutates a task through a single conditional UPDATE whose
// predicate carries both the task id and the owner id. A task owned by
// someone else matches zero rows and is indistinguishable from a missing
// one.
func (r *GormTaskRepository) Update(taskID, ownerID uint64, fields TaskUpdate) error {
	ctx, cancel := r.opContext()
	defer cancel()

	updates := map[string]interface{}{}
	if fields.Title != nil {
		updates["title"] = *fields.Title
	}
	if fields.Task != nil {
		updates["task"] = *fields.Task
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if len(updates) == 0 {
		return ErrNoUpdateFields
	}

	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ? AND user_id = ?", taskID, ownerID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a task through a single conditional DELETE with the same
// owner-scoped predicate as Update.
func (r *GormTaskRepository) Delete(taskID, ownerID uint64) error {
	ctx, cancel := r.opContext()
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, ownerID).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
