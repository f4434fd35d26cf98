package repository

import (
	"github.com/groupup/groupup-backend/internal/models"
	"gorm.io/gorm"
)

type JoinRequestRepository struct {
	db *gorm.DB
}

func NewJoinRequestRepository(db *gorm.DB) *JoinRequestRepository {
	return &JoinRequestRepository{db: db}
}

func (r *JoinRequestRepository) Create(req *models.JoinRequest) error {
	return r.db.Create(req).Error
}

func (r *JoinRequestRepository) FindByID(id uint) (*models.JoinRequest, error) {
	var req models.JoinRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *JoinRequestRepository) HasPending(groupID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.JoinRequest{}).
		Where("group_id = ? AND user_id = ? AND status = ?", groupID, userID, models.RequestPending).
		Count(&count).Error
	return count > 0, err
}

func (r *JoinRequestRepository) ListPending(groupID uint) ([]models.JoinRequestRow, error) {
	var rows []models.JoinRequestRow
	err := r.db.Model(&models.JoinRequest{}).
		Select("join_requests.id, join_requests.group_id, join_requests.user_id, users.username, users.full_name, users.avatar, join_requests.created_at").
		Joins("JOIN users ON users.id = join_requests.user_id").
		Where("join_requests.group_id = ? AND join_requests.status = ?", groupID, models.RequestPending).
		Order("join_requests.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

// Approve marks the request approved and inserts the active member
// membership in one transaction.
func (r *JoinRequestRepository) Approve(req *models.JoinRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.JoinRequest{}).
			Where("id = ? AND status = ?", req.ID, models.RequestPending).
			Update("status", models.RequestApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		member := models.GroupMember{
			GroupID: req.GroupID,
			UserID:  req.UserID,
			Role:    models.RoleMember,
			Status:  models.StatusActive,
		}
		return tx.Create(&member).Error
	})
}

func (r *JoinRequestRepository) Reject(requestID uint) error {
	res := r.db.Model(&models.JoinRequest{}).
		Where("id = ? AND status = ?", requestID, models.RequestPending).
		Update("status", models.RequestRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
