package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lingopal/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.UserFriend{}, &models.FriendRequest{}))
	return db
}

func TestFactory_BuildUser(t *testing.T) {
	f := NewFactory(nil, Options{SkipBcrypt: true})

	for i := 0; i < 20; i++ {
		u := f.BuildUser()
		assert.True(t, u.ProfileComplete(), "seeded users must be fully onboarded")
		assert.True(t, u.IsOnboarded)
		assert.NotEqual(t, u.NativeLanguage, u.LearningLanguage)
		assert.Contains(t, u.ProfilePic, "avatar.iran.liara.run")
	}
}

func TestFactory_BuildUser_Overrides(t *testing.T) {
	f := NewFactory(nil, Options{SkipBcrypt: true})

	u := f.BuildUser(func(u *models.User) {
		u.Email = "fixed@example.com"
		u.IsOnboarded = false
	})
	assert.Equal(t, "fixed@example.com", u.Email)
	assert.False(t, u.IsOnboarded)
}

func TestFactory_CreateFriendship(t *testing.T) {
	db := newTestDB(t)
	f := NewFactory(db, Options{SkipBcrypt: true})

	a, err := f.CreateUser()
	require.NoError(t, err)
	b, err := f.CreateUser()
	require.NoError(t, err)

	require.NoError(t, f.CreateFriendship(a, b))

	var rows []models.UserFriend
	require.NoError(t, db.Find(&rows).Error)
	assert.Len(t, rows, 2, "friendship rows are written in both directions")

	var request models.FriendRequest
	require.NoError(t, db.First(&request).Error)
	assert.Equal(t, models.FriendRequestStatusAccepted, request.Status)
}

func TestSeed_PopulatesGraph(t *testing.T) {
	db := newTestDB(t)

	err := Seed(db, Options{NumUsers: 10, FriendPairs: 8, SkipBcrypt: true})
	require.NoError(t, err)

	var userCount, requestCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.FriendRequest{}).Count(&requestCount).Error)

	assert.Equal(t, int64(10), userCount)
	assert.Positive(t, requestCount)
}
