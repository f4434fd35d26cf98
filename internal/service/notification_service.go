package service

import (
	"sort"

	"github.com/groupup/groupup-backend/internal/models"
	"github.com/groupup/groupup-backend/internal/repository"
)

type NotificationService struct {
	moderationRepo repository.ModerationRepositoryInterface
}

func NewNotificationService(moderationRepo repository.ModerationRepositoryInterface) *NotificationService {
	return &NotificationService{moderationRepo: moderationRepo}
}

// ListNotifications merges the user's unread block and removal events
// into one feed, newest first. The sort is stable so ties keep their
// source-table order.
func (s *NotificationService) ListNotifications(userID uint) ([]models.Notification, error) {
	blocks, err := s.moderationRepo.ListUnreadBlocks(userID)
	if err != nil {
		return nil, err
	}
	removals, err := s.moderationRepo.ListUnreadRemovals(userID)
	if err != nil {
		return nil, err
	}
	merged := make([]models.Notification, 0, len(blocks)+len(removals))
	merged = append(merged, blocks...)
	merged = append(merged, removals...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}

// Dismiss marks one notification read. Notification ids are scoped to
// their source table, so the block table is tried first and the
// removal table only when no block row matched. The order matters:
// changing it would dismiss a different event when ids collide.
func (s *NotificationService) Dismiss(id, userID uint) error {
	updated, err := s.moderationRepo.MarkBlockRead(id, userID)
	if err != nil {
		return err
	}
	if updated {
		return nil
	}
	updated, err = s.moderationRepo.MarkRemovalRead(id, userID)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}
