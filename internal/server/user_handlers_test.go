package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lingopal/internal/models"
)

func TestGetRecommendedUsers(t *testing.T) {
	userRepo := new(MockUserRepository)
	s := newTestServer(userRepo, new(MockFriendRequestRepository))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return c.Next()
	})
	app.Get("/users", s.GetRecommendedUsers)

	userRepo.On("FriendIDs", mock.Anything, uint(1)).Return([]uint{2, 3}, nil)
	userRepo.On("ListRecommendable", mock.Anything, []uint{1, 2, 3}).Return([]models.User{
		{ID: 4, FullName: "Ana Souza", IsOnboarded: true},
		{ID: 5, FullName: "Kenji Sato", IsOnboarded: true},
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool          `json:"success"`
		Data    []models.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, uint(4), envelope.Data[0].ID)
	assert.Equal(t, uint(5), envelope.Data[1].ID)
	userRepo.AssertExpectations(t)
}

func TestGetMyFriends(t *testing.T) {
	t.Run("Returns friend list", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := newTestServer(userRepo, new(MockFriendRequestRepository))

		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userID", uint(1))
			return c.Next()
		})
		app.Get("/users/friends", s.GetMyFriends)

		userRepo.On("GetFriends", mock.Anything, uint(1)).Return([]models.User{
			{ID: 2, FullName: "Ana Souza"},
		}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/friends", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var envelope struct {
			Data []models.User `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		require.Len(t, envelope.Data, 1)
		assert.Equal(t, "Ana Souza", envelope.Data[0].FullName)
	})

	t.Run("Empty list for a loner", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := newTestServer(userRepo, new(MockFriendRequestRepository))

		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userID", uint(1))
			return c.Next()
		})
		app.Get("/users/friends", s.GetMyFriends)

		userRepo.On("GetFriends", mock.Anything, uint(1)).Return([]models.User{}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/friends", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
