package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lingopal/internal/models"
	"lingopal/internal/observability"
)

// FriendRequestRepository defines the interface for friend request data operations.
// Requests form an append-only ledger: rows are created and their status
// updated, never deleted.
type FriendRequestRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error
	GetByID(ctx context.Context, id uint) (*models.FriendRequest, error)
	FindBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendRequest, error)
	ListIncomingPending(ctx context.Context, recipientID uint) ([]models.FriendRequest, error)
	ListOutgoingPending(ctx context.Context, senderID uint) ([]models.FriendRequest, error)
	ListOutgoingAccepted(ctx context.Context, senderID uint) ([]models.FriendRequest, error)
	UpdateStatus(ctx context.Context, requestID uint, status models.FriendRequestStatus) error
}

type friendRequestRepository struct {
	db *gorm.DB
}

// NewFriendRequestRepository creates a new friend request repository.
func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	defer observability.TrackQuery("create", "friend_requests")()
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		if isUniqueConstraintError(err) {
			// The pair index caught a concurrent request between the same users
			return models.NewConflictError("A friend request already exists between you and this user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRequestRepository) GetByID(ctx context.Context, id uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friend request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

// FindBetweenUsers returns the request between two users in either direction,
// or nil when none exists.
func (r *friendRequestRepository) FindBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID1, userID2, userID2, userID1).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *friendRequestRepository) ListIncomingPending(ctx context.Context, recipientID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND status = ?", recipientID, models.FriendRequestStatusPending).
		Preload("Sender").
		Order("id").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *friendRequestRepository) ListOutgoingPending(ctx context.Context, senderID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", senderID, models.FriendRequestStatusPending).
		Preload("Recipient").
		Order("id").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *friendRequestRepository) ListOutgoingAccepted(ctx context.Context, senderID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", senderID, models.FriendRequestStatusAccepted).
		Preload("Recipient").
		Order("id").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

// UpdateStatus persists a new status for the request. A missing id is a
// distinct outcome from a storage failure and reports NotFound.
func (r *friendRequestRepository) UpdateStatus(ctx context.Context, requestID uint, status models.FriendRequestStatus) error {
	defer observability.TrackQuery("update_status", "friend_requests")()
	result := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("id = ?", requestID).
		Update("status", status)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Friend request", requestID)
	}
	return nil
}
