package models

import (
	"time"
)

// FriendRequestStatus represents the status of a friend request.
type FriendRequestStatus string

const (
	// FriendRequestStatusPending indicates a request awaiting the recipient's decision.
	FriendRequestStatusPending FriendRequestStatus = "pending"
	// FriendRequestStatusAccepted indicates a request the recipient accepted.
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	// FriendRequestStatusRejected indicates a request the recipient rejected.
	FriendRequestStatusRejected FriendRequestStatus = "rejected"
)

// FriendRequest records a friend-request intent between two users.
// Requests are never deleted; the ledger keeps the full history and a pair
// of users can have at most one request between them in either direction.
type FriendRequest struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	SenderID    uint                `gorm:"not null;index:idx_friend_requests_sender" json:"sender_id"`
	RecipientID uint                `gorm:"not null;index:idx_friend_requests_recipient" json:"recipient_id"`
	Status      FriendRequestStatus `gorm:"type:varchar(20);default:'pending';index:idx_friend_requests_status" json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	// Relationships
	Sender    User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// TableName specifies the table name for GORM
func (FriendRequest) TableName() string {
	return "friend_requests"
}
