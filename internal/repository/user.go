package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByHandle(ctx context.Context, handle string) (*models.User, error)
	GetProfileByHandle(ctx context.Context, handle string) (*models.Profile, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Search(ctx context.Context, query string, limit int) ([]*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// cachedUser is the cache representation of a user row. The User model
// hides email and password hash from JSON, so caching it directly would
// drop both fields on a cache hit.
type cachedUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Handle    string    `json:"handle"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *cachedUser) toModel() *models.User {
	return &models.User{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Password:  c.Password,
		Handle:    c.Handle,
		Bio:       c.Bio,
		Avatar:    c.Avatar,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func fromModel(u *models.User) cachedUser {
	return cachedUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Handle:    u.Handle,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// GetByID reads through the cache. Cache misses and cache failures both fall
// back to the database.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var cached cachedUser
	err := cache.Aside(ctx, cache.UserKey(id), &cached, cache.UserTTL, func() error {
		var user models.User
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User")
			}
			return models.NewInternalError(err)
		}
		cached = fromModel(&user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cached.toModel(), nil
}

// GetByEmail returns (nil, nil) when no user matches.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetByHandle returns (nil, nil) when no user matches.
func (r *userRepository) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetProfileByHandle loads a user together with aggregate activity counts.
func (r *userRepository) GetProfileByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		// Both counts ignore soft-deleted posts: a removed post no longer
		// contributes to its author's total nor to its likers' totals.
		Select("users.*, " +
			"(SELECT COUNT(*) FROM posts WHERE posts.user_id = users.id AND posts.deleted_at IS NULL) as posts_count, " +
			"(SELECT COUNT(*) FROM likes JOIN posts ON posts.id = likes.post_id " +
			"WHERE likes.user_id = users.id AND posts.deleted_at IS NULL) as likes_given_count").
		Where("users.handle = ?", handle).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User with this email or handle already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User with this email or handle already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// Search matches case-insensitively on handle or display name.
func (r *userRepository) Search(ctx context.Context, query string, limit int) ([]*models.User, error) {
	like := "%" + query + "%"
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("LOWER(handle) LIKE LOWER(?) OR LOWER(name) LIKE LOWER(?)", like, like).
		Order("handle ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// isUniqueConstraintError detects unique violations across postgres and the
// sqlite driver used in tests.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(fmt.Sprintf("%v", err))
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed")
}
