// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a member of the language-exchange community.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FullName         string    `gorm:"not null" json:"full_name"`
	Email            string    `gorm:"unique;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	Bio              string    `json:"bio"`
	ProfilePic       string    `json:"profile_pic"`
	NativeLanguage   string    `json:"native_language"`
	LearningLanguage string    `json:"learning_language"`
	Location         string    `json:"location"`
	IsOnboarded      bool      `gorm:"default:false" json:"is_onboarded"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UserFriend is one direction of the symmetric friendship relation.
// The policy layer always writes both directions together; the composite
// primary key gives the relation set semantics and the check constraint
// keeps a user out of their own friend list.
type UserFriend struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	FriendID  uint      `gorm:"primaryKey;check:chk_user_friends_no_self,friend_id <> user_id" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (UserFriend) TableName() string {
	return "user_friends"
}

// ProfileComplete reports whether all fields required for onboarding are set.
func (u *User) ProfileComplete() bool {
	return u.FullName != "" &&
		u.Bio != "" &&
		u.NativeLanguage != "" &&
		u.LearningLanguage != "" &&
		u.Location != ""
}
