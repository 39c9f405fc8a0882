// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lingopal/internal/cache"
	"lingopal/internal/models"
	"lingopal/internal/observability"
)

// UserRepository defines persistence operations for users and the symmetric
// friendship relation.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error

	AddFriend(ctx context.Context, userID, friendID uint) error
	HasFriend(ctx context.Context, userID, friendID uint) (bool, error)
	FriendIDs(ctx context.Context, userID uint) ([]uint, error)
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	ListRecommendable(ctx context.Context, excludeIDs []uint) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.CacheAside(ctx, "user", key, &user, cache.UserTTL, func() error {
		defer observability.TrackQuery("get_by_id", "users")()
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Email already in use")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// AddFriend records one direction of a friendship. Re-adding an existing
// friend is a no-op so the accept flow can be retried safely.
func (r *userRepository) AddFriend(ctx context.Context, userID, friendID uint) error {
	if userID == friendID {
		return models.NewValidationError("Users cannot befriend themselves")
	}
	row := models.UserFriend{UserID: userID, FriendID: friendID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFriendship(ctx, userID, friendID)
	return nil
}

func (r *userRepository) HasFriend(ctx context.Context, userID, friendID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserFriend{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *userRepository) FriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.UserFriend{}).
		Where("user_id = ?", userID).
		Order("friend_id").
		Pluck("friend_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *userRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	key := cache.FriendsKey(userID)

	err := cache.CacheAside(ctx, "friends", key, &users, cache.FriendsTTL, func() error {
		defer observability.TrackQuery("get_friends", "users")()
		if err := r.db.WithContext(ctx).
			Table("users").
			Joins("JOIN user_friends uf ON uf.friend_id = users.id").
			Where("uf.user_id = ?", userID).
			Order("users.id").
			Find(&users).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListRecommendable returns onboarded users not present in excludeIDs,
// ordered by id so pagination and tests are deterministic.
func (r *userRepository) ListRecommendable(ctx context.Context, excludeIDs []uint) ([]models.User, error) {
	var users []models.User
	defer observability.TrackQuery("list_recommendable", "users")()

	q := r.db.WithContext(ctx).
		Where("is_onboarded = ?", true).
		Order("id")
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite reports "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
