package repository

import (
	"github.com/groupup/groupup-backend/internal/models"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
}

// GroupRepositoryInterface defines the contract for group repository operations
type GroupRepositoryInterface interface {
	CreateWithAdmin(group *models.Group) error
	FindByID(id uint) (*models.Group, error)
	FindByCode(code string) (*models.Group, error)
	Exists(id uint) (bool, error)
	DeleteCascade(groupID uint) error
	GetMembers(groupID uint) ([]models.MemberRow, error)
	IsMember(groupID, userID uint) (bool, error)
	GetMember(groupID, userID uint) (*models.GroupMember, error)
	GetUserGroups(userID uint) ([]models.Group, error)
}

// JoinRequestRepositoryInterface defines the contract for join request operations
type JoinRequestRepositoryInterface interface {
	Create(req *models.JoinRequest) error
	FindByID(id uint) (*models.JoinRequest, error)
	HasPending(groupID, userID uint) (bool, error)
	ListPending(groupID uint) ([]models.JoinRequestRow, error)
	Approve(req *models.JoinRequest) error
	Reject(requestID uint) error
}

// ModerationRepositoryInterface defines the contract for block and removal operations
type ModerationRepositoryInterface interface {
	Block(block *models.BlockRecord) error
	Unblock(groupID, userID uint) error
	FindBlock(groupID, userID uint) (*models.BlockRecord, error)
	IsBlocked(groupID, userID uint) (bool, error)
	ListBlocked(groupID uint) ([]models.BlockedMemberRow, error)
	Remove(removal *models.RemovalRecord) error
	ListUnreadBlocks(userID uint) ([]models.Notification, error)
	ListUnreadRemovals(userID uint) ([]models.Notification, error)
	MarkBlockRead(id, userID uint) (bool, error)
	MarkRemovalRead(id, userID uint) (bool, error)
}

// InviteRepositoryInterface defines the contract for group invite operations
type InviteRepositoryInterface interface {
	Create(invite *models.GroupInvite) error
	FindByID(id uint) (*models.GroupInvite, error)
	FindByToken(token string) (*models.GroupInvite, error)
	HasPending(groupID, inviteeID uint) (bool, error)
	ListPendingForUser(userID uint) ([]models.GroupInvite, error)
	Accept(invite *models.GroupInvite) error
	Revoke(inviteID uint) error
}
