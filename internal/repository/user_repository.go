package repository

import (
	"context"
	"time"

	"github.com/mytodoapp/mytodo-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewUserRepository creates a new UserRepository. Every call runs under a
// context bounded by timeout so no request can hold a pooled connection
// longer than one store round-trip.
func NewUserRepository(db *gorm.DB, timeout time.Duration) UserRepository {
	return &GormUserRepository{db: db, timeout: timeout}
}

func (r *GormUserRepository) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

// Create inserts a new user
func (r *GormUserRepository) Create(user *models.User) error {
	ctx, cancel := r.opContext()
	defer cancel()

	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	ctx, cancel := r.opContext()
	defer cancel()

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	ctx, cancel := r.opContext()
	defer cancel()

	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
