package repository

import (
	"github.com/groupup/groupup-backend/internal/models"
	"gorm.io/gorm"
)

type InviteRepository struct {
	db *gorm.DB
}

func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

func (r *InviteRepository) Create(invite *models.GroupInvite) error {
	return r.db.Create(invite).Error
}

func (r *InviteRepository) FindByID(id uint) (*models.GroupInvite, error) {
	var invite models.GroupInvite
	if err := r.db.Preload("Group").First(&invite, id).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *InviteRepository) FindByToken(token string) (*models.GroupInvite, error) {
	var invite models.GroupInvite
	if err := r.db.Preload("Group").Where("token = ?", token).First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *InviteRepository) HasPending(groupID, inviteeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupInvite{}).
		Where("group_id = ? AND invitee_id = ? AND status = ?", groupID, inviteeID, models.InvitePending).
		Count(&count).Error
	return count > 0, err
}

func (r *InviteRepository) ListPendingForUser(userID uint) ([]models.GroupInvite, error) {
	var invites []models.GroupInvite
	err := r.db.Preload("Group").
		Where("invitee_id = ? AND status = ?", userID, models.InvitePending).
		Order("created_at DESC").
		Find(&invites).Error
	return invites, err
}

// Accept marks the invite accepted and inserts the active member
// membership in one transaction. Any join request the invitee still
// has pending for the group is resolved as approved in the same
// transaction, so a membership and a pending request never coexist.
func (r *InviteRepository) Accept(invite *models.GroupInvite) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.GroupInvite{}).
			Where("id = ? AND status = ?", invite.ID, models.InvitePending).
			Update("status", models.InviteAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Model(&models.JoinRequest{}).
			Where("group_id = ? AND user_id = ? AND status = ?",
				invite.GroupID, invite.InviteeID, models.RequestPending).
			Update("status", models.RequestApproved).Error; err != nil {
			return err
		}
		member := models.GroupMember{
			GroupID: invite.GroupID,
			UserID:  invite.InviteeID,
			Role:    models.RoleMember,
			Status:  models.StatusActive,
		}
		return tx.Create(&member).Error
	})
}

func (r *InviteRepository) Revoke(inviteID uint) error {
	res := r.db.Model(&models.GroupInvite{}).
		Where("id = ? AND status = ?", inviteID, models.InvitePending).
		Update("status", models.InviteRevoked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
