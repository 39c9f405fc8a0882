package server

import (
	"github.com/gofiber/fiber/v2"

	"lingopal/internal/models"
)

// GetRecommendedUsers handles GET /api/users
func (s *Server) GetRecommendedUsers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	users, err := s.userService.GetRecommendedUsers(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, users)
}

// GetMyFriends handles GET /api/users/friends
func (s *Server) GetMyFriends(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	friends, err := s.userService.GetFriends(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, friends)
}
