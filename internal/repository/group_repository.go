package repository

import (
	"github.com/groupup/groupup-backend/internal/models"
	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// CreateWithAdmin inserts the group and its creator's admin membership
// as one transaction; either both rows exist or neither does.
func (r *GroupRepository) CreateWithAdmin(group *models.Group) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := models.GroupMember{
			GroupID: group.ID,
			UserID:  group.CreatedBy,
			Role:    models.RoleAdmin,
			Status:  models.StatusActive,
		}
		return tx.Create(&member).Error
	})
}

func (r *GroupRepository) FindByID(id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) FindByCode(code string) (*models.Group, error) {
	var group models.Group
	if err := r.db.Where("code = ?", code).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Group{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// DeleteCascade removes the group and every dependent row atomically.
func (r *GroupRepository) DeleteCascade(groupID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", groupID).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&models.JoinRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&models.BlockRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&models.RemovalRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&models.GroupInvite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, groupID).Error
	})
}

func (r *GroupRepository) GetMembers(groupID uint) ([]models.MemberRow, error) {
	var members []models.MemberRow
	err := r.db.Model(&models.GroupMember{}).
		Select("group_members.user_id, users.username, users.full_name, users.avatar, group_members.role, group_members.status, group_members.joined_at").
		Joins("JOIN users ON users.id = group_members.user_id").
		Where("group_members.group_id = ?", groupID).
		Order("group_members.joined_at ASC").
		Scan(&members).Error
	return members, err
}

func (r *GroupRepository) IsMember(groupID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *GroupRepository) GetMember(groupID, userID uint) (*models.GroupMember, error) {
	var member models.GroupMember
	if err := r.db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *GroupRepository) GetUserGroups(userID uint) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Order("groups.created_at DESC").
		Find(&groups).Error
	return groups, err
}
