package models

import "time"

type GroupRole string

const (
	RoleAdmin  GroupRole = "admin"
	RoleMember GroupRole = "member"
)

type MemberStatus string

const (
	StatusActive  MemberStatus = "active"
	StatusPending MemberStatus = "pending"
)

type Group struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Code      string `gorm:"size:6;uniqueIndex;not null" json:"code"`
	CreatedBy uint   `gorm:"not null" json:"created_by"`

	// Associations
	Creator User          `gorm:"foreignKey:CreatedBy" json:"-"`
	Members []GroupMember `gorm:"foreignKey:GroupID" json:"-"`
}

type GroupMember struct {
	GroupID  uint         `gorm:"primaryKey" json:"group_id"`
	UserID   uint         `gorm:"primaryKey" json:"user_id"`
	Role     GroupRole    `gorm:"type:varchar(20);default:'member'" json:"role"`
	Status   MemberStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	JoinedAt time.Time    `gorm:"autoCreateTime" json:"joined_at"`

	User  User  `gorm:"foreignKey:UserID" json:"user"`
	Group Group `gorm:"foreignKey:GroupID" json:"-"`
}

// MemberRow is a member joined with user display data for member listings.
type MemberRow struct {
	UserID   uint         `json:"user_id"`
	Username string       `json:"username"`
	FullName string       `json:"full_name"`
	Avatar   string       `json:"avatar"`
	Role     GroupRole    `json:"role"`
	Status   MemberStatus `json:"status"`
	JoinedAt time.Time    `json:"joined_at"`
}
