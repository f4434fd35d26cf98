package models

import "time"

// BlockRecord bars a user from a group. While a row exists for
// (group_id, user_id) the user holds no membership and cannot submit
// join requests. Append-only except for NotificationRead.
type BlockRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"blocked_at"`

	GroupID          uint   `gorm:"not null;uniqueIndex:idx_group_block" json:"group_id"`
	UserID           uint   `gorm:"not null;uniqueIndex:idx_group_block;index" json:"user_id"`
	BlockedBy        uint   `gorm:"not null" json:"blocked_by"`
	Reason           string `gorm:"size:255" json:"reason"`
	NotificationRead bool   `gorm:"default:false" json:"-"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Group Group `gorm:"foreignKey:GroupID" json:"-"`
}

// RemovalRecord logs a member's removal. Historical only; it does not
// prevent the user from rejoining.
type RemovalRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"removed_at"`

	GroupID          uint   `gorm:"not null;index" json:"group_id"`
	UserID           uint   `gorm:"not null;index" json:"user_id"`
	RemovedBy        uint   `gorm:"not null" json:"removed_by"`
	Reason           string `gorm:"size:255" json:"reason"`
	NotificationRead bool   `gorm:"default:false" json:"-"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Group Group `gorm:"foreignKey:GroupID" json:"-"`
}

// BlockedMemberRow is a block joined with user display data for the
// admin blocked-members listing.
type BlockedMemberRow struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Avatar    string    `json:"avatar"`
	Reason    string    `json:"reason"`
	BlockedBy uint      `json:"blocked_by"`
	BlockedAt time.Time `json:"blocked_at"`
}

type NotificationKind string

const (
	NotificationBlocked NotificationKind = "blocked"
	NotificationRemoved NotificationKind = "removed"
)

// Notification is a feed entry derived from an unread block or removal
// record. IDs are only unique within their source table.
type Notification struct {
	ID        uint             `json:"id"`
	Kind      NotificationKind `json:"kind"`
	GroupID   uint             `json:"group_id"`
	GroupName string           `json:"group_name"`
	Reason    string           `json:"reason"`
	CreatedAt time.Time        `json:"created_at"`
}
