package server

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"lingopal/internal/chat"
	"lingopal/internal/middleware"
	"lingopal/internal/models"
	"lingopal/internal/service"
	"lingopal/internal/validation"
)

// Signup handles POST /api/auth/signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Full name, email, and password are required"))
	}

	if err := validation.ValidateFullName(req.FullName); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError(err.Error()))
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError(err.Error()))
	}

	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError(err.Error()))
	}

	// Check if the email is already registered
	existing, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c,
			models.NewConflictError("Email already in use"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user := &models.User{
		FullName:   req.FullName,
		Email:      req.Email,
		Password:   string(hashedPassword),
		ProfilePic: randomAvatarURL(),
	}

	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return models.RespondWithError(c, createErr)
	}

	// Mirror the profile to the chat provider. Failures are logged, not fatal:
	// the profile is synced again on the next update.
	s.syncChatProfile(c, user)

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return models.Respond(c, fiber.StatusCreated, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Email and password are required"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid email or password"))
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid email or password"))
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout handles POST /api/auth/logout by revoking the presented token's JTI
// until it would have expired anyway.
func (s *Server) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Authorization required"))
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid or expired token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && s.redis != nil {
		if jti, exists := claims["jti"].(string); exists && jti != "" {
			ttl := 7 * 24 * time.Hour
			if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
				if remaining := time.Until(exp.Time); remaining > 0 {
					ttl = remaining
				}
			}
			if blErr := s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl).Err(); blErr != nil {
				middleware.Logger.WarnContext(c.UserContext(), "failed to blacklist token",
					"error", blErr)
			}
		}
	}

	return models.RespondMessage(c, fiber.StatusOK, "Logged out successfully")
}

// GetMe handles GET /api/auth/me
func (s *Server) GetMe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, user)
}

// Onboard handles POST /api/auth/onboarding
func (s *Server) Onboard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		FullName         string `json:"full_name"`
		Bio              string `json:"bio"`
		NativeLanguage   string `json:"native_language"`
		LearningLanguage string `json:"learning_language"`
		Location         string `json:"location"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Onboard(c.Context(), userID, validation.OnboardingInput{
		FullName:         req.FullName,
		Bio:              req.Bio,
		NativeLanguage:   req.NativeLanguage,
		LearningLanguage: req.LearningLanguage,
		Location:         req.Location,
	})
	if err != nil {
		var onboardErr *service.OnboardingError
		if errors.As(err, &onboardErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success":       false,
				"message":       onboardErr.Message,
				"missingFields": onboardErr.MissingFields,
				"statusCode":    fiber.StatusBadRequest,
			})
		}
		return models.RespondWithError(c, err)
	}

	s.syncChatProfile(c, user)

	return models.Respond(c, fiber.StatusOK, user)
}

// syncChatProfile mirrors the user to the chat provider, best-effort.
func (s *Server) syncChatProfile(c *fiber.Ctx, user *models.User) {
	if !s.chatProvider.Enabled() {
		return
	}
	chatUser := chat.User{
		ID:    strconv.FormatUint(uint64(user.ID), 10),
		Name:  user.FullName,
		Image: user.ProfilePic,
	}
	if err := s.chatProvider.UpsertUser(c.Context(), chatUser); err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "chat profile sync failed",
			"user_id", user.ID, "error", err)
	}
}

// generateToken creates a JWT token for the given user ID
func (s *Server) generateToken(userID uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"iss": tokenIssuer,                            // Issuer
		"aud": tokenAudience,                          // Audience
		"exp": now.Add(time.Hour * 24 * 7).Unix(),     // Expiration (7 days)
		"iat": now.Unix(),                             // Issued at
		"nbf": now.Unix(),                             // Not before
		"jti": s.generateJTI(),                        // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to support revocation on logout
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// randomAvatarURL picks one of the hosted placeholder avatars.
func randomAvatarURL() string {
	return fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", rand.Intn(100)+1)
}
