package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lingopal/internal/models"
)

var languages = []string{
	"english", "spanish", "french", "german", "mandarin", "japanese",
	"korean", "hindi", "russian", "portuguese", "arabic", "italian",
	"turkish", "dutch",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts}
}

// BuildUser constructs an onboarded user without persisting it.
// Optional override functions may modify the generated user.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	native := languages[gofakeit.Number(0, len(languages)-1)]
	learning := native
	for learning == native {
		learning = languages[gofakeit.Number(0, len(languages)-1)]
	}

	user := &models.User{
		FullName:         gofakeit.Name(),
		Email:            gofakeit.Email(),
		Bio:              gofakeit.Sentence(10),
		ProfilePic:       fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", gofakeit.Number(1, 100)),
		NativeLanguage:   native,
		LearningLanguage: learning,
		Location:         fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		IsOnboarded:      true,
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}
	return user
}

// CreateUser builds and persists a single user.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUsers persists count generated users. Generated emails can collide;
// failed inserts are logged and skipped rather than aborting the run.
func (f *Factory) CreateUsers(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)

	for i := 0; i < count; i++ {
		user := f.BuildUser()
		if err := f.db.Create(user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", user.Email, err)
			continue
		}
		users = append(users, *user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

// CreateFriendship records an accepted request between the two users and
// writes both friendship directions.
func (f *Factory) CreateFriendship(a, b *models.User) error {
	request := &models.FriendRequest{
		SenderID:    a.ID,
		RecipientID: b.ID,
		Status:      models.FriendRequestStatusAccepted,
	}
	if err := f.db.Create(request).Error; err != nil {
		return err
	}

	rows := []models.UserFriend{
		{UserID: a.ID, FriendID: b.ID},
		{UserID: b.ID, FriendID: a.ID},
	}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// CreatePendingRequest records a pending request from a to b.
func (f *Factory) CreatePendingRequest(a, b *models.User) error {
	request := &models.FriendRequest{
		SenderID:    a.ID,
		RecipientID: b.ID,
		Status:      models.FriendRequestStatusPending,
	}
	return f.db.Create(request).Error
}
