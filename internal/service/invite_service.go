package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/groupup/groupup-backend/internal/models"
	"github.com/groupup/groupup-backend/internal/repository"
	"gorm.io/gorm"
)

type InviteService struct {
	inviteRepo repository.InviteRepositoryInterface
	membership *MembershipService
}

func NewInviteService(inviteRepo repository.InviteRepositoryInterface, membership *MembershipService) *InviteService {
	return &InviteService{
		inviteRepo: inviteRepo,
		membership: membership,
	}
}

// CreateInvite issues an invitation to a specific user. Admin-only;
// the invitee must have no standing in the group.
func (s *InviteService) CreateInvite(groupID, inviterID, inviteeID uint) (*models.GroupInvite, error) {
	if err := s.membership.requireAdmin(groupID, inviterID); err != nil {
		return nil, err
	}
	state, err := s.membership.StateOf(groupID, inviteeID)
	if err != nil {
		return nil, err
	}
	switch state {
	case StateBlocked:
		return nil, ErrBlocked
	case StateActiveMember, StateActiveAdmin:
		return nil, ErrAlreadyMember
	}
	pending, err := s.inviteRepo.HasPending(groupID, inviteeID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrDuplicateInvite
	}

	invite := &models.GroupInvite{
		GroupID:   groupID,
		InviterID: inviterID,
		InviteeID: inviteeID,
		Token:     uuid.NewString(),
		Status:    models.InvitePending,
	}
	if err := s.inviteRepo.Create(invite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateInvite
		}
		return nil, err
	}
	return invite, nil
}

func (s *InviteService) ListPendingInvites(userID uint) ([]models.GroupInvite, error) {
	return s.inviteRepo.ListPendingForUser(userID)
}

// AcceptInvite turns a pending invite into an active membership in one
// transaction. Blocked users cannot accept.
func (s *InviteService) AcceptInvite(inviteID, userID uint) (*models.GroupInvite, error) {
	invite, err := s.inviteRepo.FindByID(inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.accept(invite, userID)
}

// AcceptInviteByToken accepts an invite addressed by its share token
// instead of its id, for invite links delivered outside the app.
func (s *InviteService) AcceptInviteByToken(token string, userID uint) (*models.GroupInvite, error) {
	invite, err := s.inviteRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.accept(invite, userID)
}

func (s *InviteService) accept(invite *models.GroupInvite, userID uint) (*models.GroupInvite, error) {
	if invite.InviteeID != userID || invite.Status != models.InvitePending {
		return nil, ErrNotFound
	}
	state, err := s.membership.StateOf(invite.GroupID, userID)
	if err != nil {
		return nil, err
	}
	switch state {
	case StateBlocked:
		return nil, ErrBlocked
	case StateActiveMember, StateActiveAdmin:
		return nil, ErrAlreadyMember
	}
	if err := s.inviteRepo.Accept(invite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyMember
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return invite, nil
}

// RevokeInvite cancels a pending invite. Admin-only.
func (s *InviteService) RevokeInvite(inviteID, callerID uint) error {
	invite, err := s.inviteRepo.FindByID(inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.membership.requireAdmin(invite.GroupID, callerID); err != nil {
		return err
	}
	if err := s.inviteRepo.Revoke(inviteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
