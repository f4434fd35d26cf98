package models

import "time"

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteRevoked  InviteStatus = "revoked"
)

// GroupInvite is an admin-issued invitation for a specific user.
// Accepting one skips the join-request workflow.
type GroupInvite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GroupID   uint         `gorm:"not null;index" json:"group_id"`
	InviterID uint         `gorm:"not null" json:"inviter_id"`
	InviteeID uint         `gorm:"not null;index" json:"invitee_id"`
	Token     string       `gorm:"size:36;uniqueIndex;not null" json:"token"`
	Status    InviteStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	Group Group `gorm:"foreignKey:GroupID" json:"group"`
}
