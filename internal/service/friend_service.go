// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"lingopal/internal/models"
	"lingopal/internal/repository"
)

// FriendService enforces the friend-request lifecycle: who may send a
// request, who may accept it, and how acceptance turns into a mutual
// friendship.
type FriendService struct {
	requestRepo repository.FriendRequestRepository
	userRepo    repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(requestRepo repository.FriendRequestRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

// SendFriendRequest creates a pending request from sender to recipient.
// A pair of users can hold at most one request between them, in either
// direction and regardless of its status.
func (s *FriendService) SendFriendRequest(ctx context.Context, senderID, recipientID uint) (*models.FriendRequest, error) {
	if senderID == recipientID {
		return nil, models.NewValidationError("You can't send a friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	alreadyFriends, err := s.userRepo.HasFriend(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if alreadyFriends {
		return nil, models.NewConflictError("You are already friends with this user")
	}

	existing, err := s.requestRepo.FindBetweenUsers(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("A friend request already exists between you and this user")
	}

	request := &models.FriendRequest{
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      models.FriendRequestStatusPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return s.requestRepo.GetByID(ctx, request.ID)
}

// AcceptFriendRequest marks the request accepted and records the friendship
// in both directions. Only the recipient may accept. Accepting an
// already-accepted request re-runs the friendship writes, which are
// idempotent, so a half-applied accept can be retried safely.
func (s *FriendService) AcceptFriendRequest(ctx context.Context, userID, requestID uint) (*models.FriendRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.RecipientID != userID {
		return nil, models.NewForbiddenError("You are not authorized to accept this request")
	}
	if request.Status == models.FriendRequestStatusRejected {
		return nil, models.NewConflictError("This friend request was rejected")
	}

	if request.Status != models.FriendRequestStatusAccepted {
		if err := s.requestRepo.UpdateStatus(ctx, requestID, models.FriendRequestStatusAccepted); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.AddFriend(ctx, request.SenderID, request.RecipientID); err != nil {
		return nil, err
	}
	if err := s.userRepo.AddFriend(ctx, request.RecipientID, request.SenderID); err != nil {
		return nil, err
	}

	return s.requestRepo.GetByID(ctx, requestID)
}

// RejectFriendRequest marks a pending request rejected. Only the recipient
// may reject. The row stays in place, which keeps the pair from opening a
// new request afterwards.
func (s *FriendService) RejectFriendRequest(ctx context.Context, userID, requestID uint) (*models.FriendRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.RecipientID != userID {
		return nil, models.NewForbiddenError("You are not authorized to reject this request")
	}
	if request.Status != models.FriendRequestStatusPending {
		return nil, models.NewConflictError("This friend request is no longer pending")
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, models.FriendRequestStatusRejected); err != nil {
		return nil, err
	}

	return s.requestRepo.GetByID(ctx, requestID)
}

// RequestsOverview is what the client needs to render its notifications
// screen: requests waiting on the user plus sent requests that were accepted.
type RequestsOverview struct {
	IncomingRequests []models.FriendRequest `json:"incoming_requests"`
	AcceptedRequests []models.FriendRequest `json:"accepted_requests"`
}

// ListRequests returns the user's incoming pending requests and their
// outgoing requests that have been accepted.
func (s *FriendService) ListRequests(ctx context.Context, userID uint) (*RequestsOverview, error) {
	incoming, err := s.requestRepo.ListIncomingPending(ctx, userID)
	if err != nil {
		return nil, err
	}

	accepted, err := s.requestRepo.ListOutgoingAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &RequestsOverview{
		IncomingRequests: incoming,
		AcceptedRequests: accepted,
	}, nil
}

// ListOutgoingRequests returns the user's pending sent requests.
func (s *FriendService) ListOutgoingRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.requestRepo.ListOutgoingPending(ctx, userID)
}
