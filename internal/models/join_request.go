package models

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// JoinRequest is a user's ask to join a group, resolved by an admin.
// The partial unique index keeps at most one pending request per
// (group, user) pair; a second concurrent insert fails at the database.
type JoinRequest struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GroupID uint          `gorm:"not null;index:idx_join_pending,unique,where:status = 'pending'" json:"group_id"`
	UserID  uint          `gorm:"not null;index:idx_join_pending,unique,where:status = 'pending'" json:"user_id"`
	Status  RequestStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	User  User  `gorm:"foreignKey:UserID" json:"user"`
	Group Group `gorm:"foreignKey:GroupID" json:"-"`
}

// JoinRequestRow is a pending request joined with requester display data.
type JoinRequestRow struct {
	ID        uint      `json:"id"`
	GroupID   uint      `json:"group_id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}
