package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingopal/internal/cache"
	"lingopal/internal/models"
)

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "Mina Park", "mina@example.com", true)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mina Park", got.FullName)

	_, err = repo.GetByID(ctx, 9999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_GetByEmail_NilOnMiss(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "Mina Park", "mina@example.com", true)

	got, err := repo.GetByEmail(ctx, "mina@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{
		FullName: "Mina Park", Email: "mina@example.com", Password: "hashed",
	}))

	err := repo.Create(ctx, &models.User{
		FullName: "Other Mina", Email: "mina@example.com", Password: "hashed",
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestUserRepository_AddFriend_Symmetric(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "Ana", "ana@example.com", true)
	b := seedUser(t, db, "Ben", "ben@example.com", true)

	require.NoError(t, repo.AddFriend(ctx, a.ID, b.ID))
	require.NoError(t, repo.AddFriend(ctx, b.ID, a.ID))

	hasAB, err := repo.HasFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, hasAB)

	hasBA, err := repo.HasFriend(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, hasBA)
}

func TestUserRepository_AddFriend_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "Ana", "ana@example.com", true)
	b := seedUser(t, db, "Ben", "ben@example.com", true)

	require.NoError(t, repo.AddFriend(ctx, a.ID, b.ID))
	// Retrying the same write must not error or duplicate
	require.NoError(t, repo.AddFriend(ctx, a.ID, b.ID))

	ids, err := repo.FriendIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, ids)
}

func TestUserRepository_AddFriend_RejectsSelf(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	a := seedUser(t, db, "Ana", "ana@example.com", true)

	err := repo.AddFriend(context.Background(), a.ID, a.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUserRepository_GetFriends(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "Ana", "ana@example.com", true)
	b := seedUser(t, db, "Ben", "ben@example.com", true)
	c := seedUser(t, db, "Cleo", "cleo@example.com", true)

	require.NoError(t, repo.AddFriend(ctx, a.ID, b.ID))
	require.NoError(t, repo.AddFriend(ctx, b.ID, a.ID))
	require.NoError(t, repo.AddFriend(ctx, a.ID, c.ID))
	require.NoError(t, repo.AddFriend(ctx, c.ID, a.ID))

	friends, err := repo.GetFriends(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "Ben", friends[0].FullName)
	assert.Equal(t, "Cleo", friends[1].FullName)

	// Ben only has Ana
	friends, err = repo.GetFriends(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "Ana", friends[0].FullName)
}

func TestUserRepository_GetFriends_CacheRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "Ana", "ana@example.com", true)
	b := seedUser(t, db, "Ben", "ben@example.com", true)
	c := seedUser(t, db, "Cleo", "cleo@example.com", true)

	require.NoError(t, repo.AddFriend(ctx, a.ID, b.ID))

	friends, err := repo.GetFriends(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.True(t, mr.Exists(cache.FriendsKey(a.ID)), "friend list must be cached after a read")

	// Adding a friend invalidates the cached list, the next read sees both
	require.NoError(t, repo.AddFriend(ctx, a.ID, c.ID))
	assert.False(t, mr.Exists(cache.FriendsKey(a.ID)))

	friends, err = repo.GetFriends(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, friends, 2)
}

func TestUserRepository_ListRecommendable(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "Ana", "ana@example.com", true)
	b := seedUser(t, db, "Ben", "ben@example.com", true)
	seedUser(t, db, "Cleo", "cleo@example.com", false) // not onboarded
	d := seedUser(t, db, "Dan", "dan@example.com", true)

	// Exclude self and Ben (already a friend)
	got, err := repo.ListRecommendable(ctx, []uint{a.ID, b.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, d.ID, got[0].ID)

	// With no exclusions every onboarded user is returned, ordered by id
	got, err = repo.ListRecommendable(ctx, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []uint{a.ID, b.ID, d.ID}, []uint{got[0].ID, got[1].ID, got[2].ID})
}
