package server

import (
	"github.com/gofiber/fiber/v2"

	"lingopal/internal/middleware"
	"lingopal/internal/models"
)

// SendFriendRequest handles POST /api/users/friend-request/:id
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipientID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	request, err := s.friendService.SendFriendRequest(c.Context(), userID, recipientID)
	if err != nil {
		middleware.FriendRequestsSent.WithLabelValues("rejected").Inc()
		return models.RespondWithError(c, err)
	}

	middleware.FriendRequestsSent.WithLabelValues("created").Inc()
	return models.Respond(c, fiber.StatusCreated, request)
}

// AcceptFriendRequest handles PUT /api/users/friend-request/:id/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	request, err := s.friendService.AcceptFriendRequest(c.Context(), userID, requestID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.FriendRequestsSent.WithLabelValues("accepted").Inc()
	return models.Respond(c, fiber.StatusOK, request)
}

// RejectFriendRequest handles PUT /api/users/friend-request/:id/reject
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	request, err := s.friendService.RejectFriendRequest(c.Context(), userID, requestID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, request)
}

// GetFriendRequests handles GET /api/users/friend-requests
func (s *Server) GetFriendRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	overview, err := s.friendService.ListRequests(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, overview)
}

// GetOutgoingFriendRequests handles GET /api/users/outgoing-friend-requests
func (s *Server) GetOutgoingFriendRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	requests, err := s.friendService.ListOutgoingRequests(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, requests)
}
