package service

import (
	"context"

	"lingopal/internal/models"
)

type requestRepoStub struct {
	createFn               func(context.Context, *models.FriendRequest) error
	getByIDFn              func(context.Context, uint) (*models.FriendRequest, error)
	findBetweenUsersFn     func(context.Context, uint, uint) (*models.FriendRequest, error)
	listIncomingPendingFn  func(context.Context, uint) ([]models.FriendRequest, error)
	listOutgoingPendingFn  func(context.Context, uint) ([]models.FriendRequest, error)
	listOutgoingAcceptedFn func(context.Context, uint) ([]models.FriendRequest, error)
	updateStatusFn         func(context.Context, uint, models.FriendRequestStatus) error
}

func (s *requestRepoStub) Create(ctx context.Context, request *models.FriendRequest) error {
	return s.createFn(ctx, request)
}
func (s *requestRepoStub) GetByID(ctx context.Context, id uint) (*models.FriendRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *requestRepoStub) FindBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendRequest, error) {
	return s.findBetweenUsersFn(ctx, userID1, userID2)
}
func (s *requestRepoStub) ListIncomingPending(ctx context.Context, recipientID uint) ([]models.FriendRequest, error) {
	return s.listIncomingPendingFn(ctx, recipientID)
}
func (s *requestRepoStub) ListOutgoingPending(ctx context.Context, senderID uint) ([]models.FriendRequest, error) {
	return s.listOutgoingPendingFn(ctx, senderID)
}
func (s *requestRepoStub) ListOutgoingAccepted(ctx context.Context, senderID uint) ([]models.FriendRequest, error) {
	return s.listOutgoingAcceptedFn(ctx, senderID)
}
func (s *requestRepoStub) UpdateStatus(ctx context.Context, requestID uint, status models.FriendRequestStatus) error {
	return s.updateStatusFn(ctx, requestID, status)
}

type userRepoStub struct {
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getByEmailFn        func(context.Context, string) (*models.User, error)
	createFn            func(context.Context, *models.User) error
	updateFn            func(context.Context, *models.User) error
	addFriendFn         func(context.Context, uint, uint) error
	hasFriendFn         func(context.Context, uint, uint) (bool, error)
	friendIDsFn         func(context.Context, uint) ([]uint, error)
	getFriendsFn        func(context.Context, uint) ([]models.User, error)
	listRecommendableFn func(context.Context, []uint) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) AddFriend(ctx context.Context, userID, friendID uint) error {
	return s.addFriendFn(ctx, userID, friendID)
}
func (s *userRepoStub) HasFriend(ctx context.Context, userID, friendID uint) (bool, error) {
	return s.hasFriendFn(ctx, userID, friendID)
}
func (s *userRepoStub) FriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.friendIDsFn(ctx, userID)
}
func (s *userRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *userRepoStub) ListRecommendable(ctx context.Context, excludeIDs []uint) ([]models.User, error) {
	return s.listRecommendableFn(ctx, excludeIDs)
}
