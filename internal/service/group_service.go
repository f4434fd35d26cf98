package service

import (
	"crypto/rand"
	"errors"

	"github.com/groupup/groupup-backend/internal/cache"
	"github.com/groupup/groupup-backend/internal/models"
	"github.com/groupup/groupup-backend/internal/repository"
	"gorm.io/gorm"
)

const codeAttempts = 5

type GroupService struct {
	groupRepo  repository.GroupRepositoryInterface
	groupCache *cache.GroupCache
}

func NewGroupService(groupRepo repository.GroupRepositoryInterface, groupCache *cache.GroupCache) *GroupService {
	return &GroupService{
		groupRepo:  groupRepo,
		groupCache: groupCache,
	}
}

// CreateGroup inserts the group and the creator's admin membership
// atomically. The generated code can collide with an existing group;
// creation is retried with a fresh code a bounded number of times
// before giving up.
func (s *GroupService) CreateGroup(name string, creatorID uint) (*models.Group, error) {
	for i := 0; i < codeAttempts; i++ {
		group := &models.Group{
			Name:      name,
			Code:      generateGroupCode(),
			CreatedBy: creatorID,
		}
		err := s.groupRepo.CreateWithAdmin(group)
		if err == nil {
			return group, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, ErrCodeCollision
}

func (s *GroupService) GetGroup(groupID uint) (*models.Group, error) {
	group, err := s.groupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return group, nil
}

// GetGroupByCode resolves a join code, consulting the cache first.
// Groups are immutable after creation, so a cached hit never goes
// stale until the group is deleted.
func (s *GroupService) GetGroupByCode(code string) (*models.Group, error) {
	if group := s.groupCache.GetByCode(code); group != nil {
		return group, nil
	}
	group, err := s.groupRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.groupCache.SetByCode(group)
	return group, nil
}

func (s *GroupService) GroupExists(groupID uint) (bool, error) {
	return s.groupRepo.Exists(groupID)
}

func (s *GroupService) GetUserGroups(userID uint) ([]models.Group, error) {
	return s.groupRepo.GetUserGroups(userID)
}

// DeleteGroup removes the group and all dependent rows. Admin-only.
func (s *GroupService) DeleteGroup(groupID, callerID uint) error {
	member, err := s.groupRepo.GetMember(groupID, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		return err
	}
	if member.Role != models.RoleAdmin {
		return ErrForbidden
	}
	group, err := s.groupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.groupRepo.DeleteCascade(groupID); err != nil {
		return err
	}
	s.groupCache.InvalidateCode(group.Code)
	return nil
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateGroupCode returns a 6-character uppercase alphanumeric join
// code. Uniqueness is enforced by the database, not here.
func generateGroupCode() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b)
}
