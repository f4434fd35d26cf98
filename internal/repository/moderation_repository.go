package repository

import (
	"github.com/groupup/groupup-backend/internal/models"
	"gorm.io/gorm"
)

type ModerationRepository struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) *ModerationRepository {
	return &ModerationRepository{db: db}
}

// Block deletes the target's membership and inserts the block record
// in one transaction.
func (r *ModerationRepository) Block(block *models.BlockRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ? AND user_id = ?", block.GroupID, block.UserID).
			Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Create(block).Error
	})
}

func (r *ModerationRepository) Unblock(groupID, userID uint) error {
	res := r.db.Where("group_id = ? AND user_id = ?", groupID, userID).Delete(&models.BlockRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ModerationRepository) FindBlock(groupID, userID uint) (*models.BlockRecord, error) {
	var block models.BlockRecord
	if err := r.db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *ModerationRepository) IsBlocked(groupID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlockRecord{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ModerationRepository) ListBlocked(groupID uint) ([]models.BlockedMemberRow, error) {
	var rows []models.BlockedMemberRow
	err := r.db.Model(&models.BlockRecord{}).
		Select("block_records.id, block_records.user_id, users.username, users.full_name, users.avatar, block_records.reason, block_records.blocked_by, block_records.created_at AS blocked_at").
		Joins("JOIN users ON users.id = block_records.user_id").
		Where("block_records.group_id = ?", groupID).
		Order("block_records.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// Remove inserts the removal record and deletes the membership in one
// transaction.
func (r *ModerationRepository) Remove(removal *models.RemovalRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(removal).Error; err != nil {
			return err
		}
		return tx.Where("group_id = ? AND user_id = ?", removal.GroupID, removal.UserID).
			Delete(&models.GroupMember{}).Error
	})
}

func (r *ModerationRepository) ListUnreadBlocks(userID uint) ([]models.Notification, error) {
	var out []models.Notification
	err := r.db.Model(&models.BlockRecord{}).
		Select("block_records.id, 'blocked' AS kind, block_records.group_id, groups.name AS group_name, block_records.reason, block_records.created_at").
		Joins("JOIN groups ON groups.id = block_records.group_id").
		Where("block_records.user_id = ? AND block_records.notification_read = ?", userID, false).
		Scan(&out).Error
	return out, err
}

func (r *ModerationRepository) ListUnreadRemovals(userID uint) ([]models.Notification, error) {
	var out []models.Notification
	err := r.db.Model(&models.RemovalRecord{}).
		Select("removal_records.id, 'removed' AS kind, removal_records.group_id, groups.name AS group_name, removal_records.reason, removal_records.created_at").
		Joins("JOIN groups ON groups.id = removal_records.group_id").
		Where("removal_records.user_id = ? AND removal_records.notification_read = ?", userID, false).
		Scan(&out).Error
	return out, err
}

// MarkBlockRead reports whether a row was updated so the caller can
// fall back to the removals table.
func (r *ModerationRepository) MarkBlockRead(id, userID uint) (bool, error) {
	res := r.db.Model(&models.BlockRecord{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("notification_read", true)
	return res.RowsAffected > 0, res.Error
}

func (r *ModerationRepository) MarkRemovalRead(id, userID uint) (bool, error) {
	res := r.db.Model(&models.RemovalRecord{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("notification_read", true)
	return res.RowsAffected > 0, res.Error
}
