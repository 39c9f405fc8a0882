package server

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lingopal/internal/chat"
	"lingopal/internal/config"
	"lingopal/internal/models"
	"lingopal/internal/service"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) AddFriend(ctx context.Context, userID, friendID uint) error {
	args := m.Called(ctx, userID, friendID)
	return args.Error(0)
}

func (m *MockUserRepository) HasFriend(ctx context.Context, userID, friendID uint) (bool, error) {
	args := m.Called(ctx, userID, friendID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockUserRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) ListRecommendable(ctx context.Context, excludeIDs []uint) ([]models.User, error) {
	args := m.Called(ctx, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockFriendRequestRepository is a mock of the FriendRequestRepository interface
type MockFriendRequestRepository struct {
	mock.Mock
}

func (m *MockFriendRequestRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockFriendRequestRepository) GetByID(ctx context.Context, id uint) (*models.FriendRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FriendRequest), args.Error(1)
}

func (m *MockFriendRequestRepository) FindBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendRequest, error) {
	args := m.Called(ctx, userID1, userID2)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FriendRequest), args.Error(1)
}

func (m *MockFriendRequestRepository) ListIncomingPending(ctx context.Context, recipientID uint) ([]models.FriendRequest, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FriendRequest), args.Error(1)
}

func (m *MockFriendRequestRepository) ListOutgoingPending(ctx context.Context, senderID uint) ([]models.FriendRequest, error) {
	args := m.Called(ctx, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FriendRequest), args.Error(1)
}

func (m *MockFriendRequestRepository) ListOutgoingAccepted(ctx context.Context, senderID uint) ([]models.FriendRequest, error) {
	args := m.Called(ctx, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FriendRequest), args.Error(1)
}

func (m *MockFriendRequestRepository) UpdateStatus(ctx context.Context, requestID uint, status models.FriendRequestStatus) error {
	args := m.Called(ctx, requestID, status)
	return args.Error(0)
}

// newTestServer wires a Server around the given mocks with chat disabled.
func newTestServer(userRepo *MockUserRepository, requestRepo *MockFriendRequestRepository) *Server {
	s := &Server{
		config:       &config.Config{JWTSecret: "test_secret"},
		userRepo:     userRepo,
		requestRepo:  requestRepo,
		chatProvider: chat.NewProvider(chat.Config{}),
	}
	s.friendService = service.NewFriendService(requestRepo, userRepo)
	s.userService = service.NewUserService(userRepo)
	return s
}
