package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	FriendsKeyPrefix = "user:%d:friends"
)

const (
	UserTTL    = 5 * time.Minute
	FriendsTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func FriendsKey(userID uint) string {
	return fmt.Sprintf(FriendsKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser drops a user's cached profile and friend list.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, FriendsKey(userID))
}

// InvalidateFriendship drops both users' friend lists after the relation changes.
func InvalidateFriendship(ctx context.Context, userID, friendID uint) {
	Invalidate(ctx, FriendsKey(userID))
	Invalidate(ctx, FriendsKey(friendID))
}
