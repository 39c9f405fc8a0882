package server

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lingopal/internal/models"
)

// GetChatToken handles GET /api/chat/token. The token lets the client open a
// provider-side connection as the authenticated user.
func (s *Server) GetChatToken(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if !s.chatProvider.Enabled() {
		return models.RespondWithError(c,
			models.NewInternalError(fmt.Errorf("chat provider is not configured")))
	}

	token, err := s.chatProvider.CreateToken(strconv.FormatUint(uint64(userID), 10))
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{
		"token": token,
	})
}
