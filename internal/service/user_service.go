package service

import (
	"context"
	"strings"

	"lingopal/internal/models"
	"lingopal/internal/repository"
	"lingopal/internal/validation"
)

// UserService provides profile, onboarding and recommendation logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUser returns the user's profile.
func (s *UserService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// GetFriends returns the user's friends.
func (s *UserService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.userRepo.GetFriends(ctx, userID)
}

// GetRecommendedUsers returns onboarded users the given user could connect
// with: everyone except themselves and their existing friends. Users with an
// open request between them still appear; the client marks those separately.
func (s *UserService) GetRecommendedUsers(ctx context.Context, userID uint) ([]models.User, error) {
	friendIDs, err := s.userRepo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	exclude := make([]uint, 0, len(friendIDs)+1)
	exclude = append(exclude, userID)
	exclude = append(exclude, friendIDs...)

	return s.userRepo.ListRecommendable(ctx, exclude)
}

// OnboardingError carries the list of required fields the caller left empty.
type OnboardingError struct {
	*models.AppError
	MissingFields []string
}

// Onboard completes the user's profile. All required fields must be present;
// otherwise the returned error names the missing ones. Onboarding the same
// user again simply updates the profile.
func (s *UserService) Onboard(ctx context.Context, userID uint, in validation.OnboardingInput) (*models.User, error) {
	if missing := validation.MissingOnboardingFields(in); len(missing) > 0 {
		return nil, &OnboardingError{
			AppError:      models.NewValidationError("All fields are required: " + strings.Join(missing, ", ")),
			MissingFields: missing,
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FullName = strings.TrimSpace(in.FullName)
	user.Bio = strings.TrimSpace(in.Bio)
	user.NativeLanguage = strings.TrimSpace(in.NativeLanguage)
	user.LearningLanguage = strings.TrimSpace(in.LearningLanguage)
	user.Location = strings.TrimSpace(in.Location)
	user.IsOnboarded = true

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
