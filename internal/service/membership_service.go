package service

import (
	"errors"

	"github.com/groupup/groupup-backend/internal/models"
	"github.com/groupup/groupup-backend/internal/repository"
	"gorm.io/gorm"
)

// MembershipState is the lifecycle state of a (group, user) pair.
type MembershipState int

const (
	StateNone MembershipState = iota
	StatePending
	StateActiveMember
	StateActiveAdmin
	StateBlocked
)

func (s MembershipState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateActiveMember:
		return "member"
	case StateActiveAdmin:
		return "admin"
	case StateBlocked:
		return "blocked"
	default:
		return "none"
	}
}

// MembershipVerification is the advisory composite view of a user's
// standing in a group. It is built from two reads with no atomicity
// across them; it exists for display, not for guarding transitions.
type MembershipVerification struct {
	IsMember          bool                `json:"isMember"`
	Role              models.GroupRole    `json:"role,omitempty"`
	Status            models.MemberStatus `json:"status,omitempty"`
	HasPendingRequest bool                `json:"hasPendingRequest"`
}

// MembershipService centralizes every legal transition of the
// membership lifecycle. Handlers never re-derive legality; they call
// in here and translate the returned domain errors.
type MembershipService struct {
	groupRepo      repository.GroupRepositoryInterface
	requestRepo    repository.JoinRequestRepositoryInterface
	moderationRepo repository.ModerationRepositoryInterface
}

func NewMembershipService(
	groupRepo repository.GroupRepositoryInterface,
	requestRepo repository.JoinRequestRepositoryInterface,
	moderationRepo repository.ModerationRepositoryInterface,
) *MembershipService {
	return &MembershipService{
		groupRepo:      groupRepo,
		requestRepo:    requestRepo,
		moderationRepo: moderationRepo,
	}
}

// StateOf derives the lifecycle state from the underlying rows. A
// block record wins over everything else; blocking deletes the
// membership so the two should never coexist.
func (s *MembershipService) StateOf(groupID, userID uint) (MembershipState, error) {
	blocked, err := s.moderationRepo.IsBlocked(groupID, userID)
	if err != nil {
		return StateNone, err
	}
	if blocked {
		return StateBlocked, nil
	}
	member, err := s.groupRepo.GetMember(groupID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return StateNone, err
	}
	if member != nil {
		if member.Role == models.RoleAdmin {
			return StateActiveAdmin, nil
		}
		return StateActiveMember, nil
	}
	pending, err := s.requestRepo.HasPending(groupID, userID)
	if err != nil {
		return StateNone, err
	}
	if pending {
		return StatePending, nil
	}
	return StateNone, nil
}

// SubmitJoinRequest handles NONE→PENDING. The pending-request partial
// unique index is the race-safety mechanism; a concurrent duplicate
// insert comes back as gorm.ErrDuplicatedKey.
func (s *MembershipService) SubmitJoinRequest(group *models.Group, userID uint) (*models.JoinRequest, error) {
	state, err := s.StateOf(group.ID, userID)
	if err != nil {
		return nil, err
	}
	switch state {
	case StateBlocked:
		return nil, ErrBlocked
	case StateActiveMember, StateActiveAdmin:
		return nil, ErrAlreadyMember
	case StatePending:
		return nil, ErrDuplicateRequest
	}

	req := &models.JoinRequest{
		GroupID: group.ID,
		UserID:  userID,
		Status:  models.RequestPending,
	}
	if err := s.requestRepo.Create(req); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}
	return req, nil
}

// ApproveRequest handles PENDING→ACTIVE_MEMBER. The membership insert
// and the request status change commit together or not at all.
func (s *MembershipService) ApproveRequest(groupID, requestID, callerID uint) error {
	if err := s.requireAdmin(groupID, callerID); err != nil {
		return err
	}
	req, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if req.GroupID != groupID || req.Status != models.RequestPending {
		return ErrNotFound
	}
	if err := s.requestRepo.Approve(req); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyMember
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// RejectRequest handles PENDING→NONE.
func (s *MembershipService) RejectRequest(groupID, requestID, callerID uint) error {
	if err := s.requireAdmin(groupID, callerID); err != nil {
		return err
	}
	req, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if req.GroupID != groupID || req.Status != models.RequestPending {
		return ErrNotFound
	}
	if err := s.requestRepo.Reject(requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// BlockMember handles ACTIVE_MEMBER→BLOCKED. Admins cannot block
// themselves or other admins.
func (s *MembershipService) BlockMember(groupID, targetID, callerID uint, reason string) error {
	if err := s.requireAdmin(groupID, callerID); err != nil {
		return err
	}
	if targetID == callerID {
		return ErrForbidden
	}
	target, err := s.groupRepo.GetMember(groupID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if target.Role == models.RoleAdmin {
		return ErrForbidden
	}
	block := &models.BlockRecord{
		GroupID:   groupID,
		UserID:    targetID,
		BlockedBy: callerID,
		Reason:    reason,
	}
	return s.moderationRepo.Block(block)
}

// UnblockMember handles BLOCKED→NONE. It clears only the block; the
// user does not get their membership back.
func (s *MembershipService) UnblockMember(groupID, targetID, callerID uint) error {
	if err := s.requireAdmin(groupID, callerID); err != nil {
		return err
	}
	if err := s.moderationRepo.Unblock(groupID, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// RemoveMember handles ACTIVE_*→NONE. An admin may remove any regular
// member or themselves; removing another admin is rejected. Nothing
// stops the last admin from leaving, so a group can end up with no
// admin at all.
func (s *MembershipService) RemoveMember(groupID, targetID, callerID uint, reason string) error {
	if err := s.requireAdmin(groupID, callerID); err != nil {
		return err
	}
	target, err := s.groupRepo.GetMember(groupID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if target.Role == models.RoleAdmin && targetID != callerID {
		return ErrForbidden
	}
	removal := &models.RemovalRecord{
		GroupID:   groupID,
		UserID:    targetID,
		RemovedBy: callerID,
		Reason:    reason,
	}
	return s.moderationRepo.Remove(removal)
}

func (s *MembershipService) IsMember(groupID, userID uint) (bool, error) {
	return s.groupRepo.IsMember(groupID, userID)
}

func (s *MembershipService) IsAdmin(groupID, userID uint) (bool, error) {
	member, err := s.groupRepo.GetMember(groupID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return member.Role == models.RoleAdmin, nil
}

func (s *MembershipService) ListMembers(groupID uint) ([]models.MemberRow, error) {
	return s.groupRepo.GetMembers(groupID)
}

func (s *MembershipService) ListPendingRequests(groupID, callerID uint) ([]models.JoinRequestRow, error) {
	if err := s.requireAdmin(groupID, callerID); err != nil {
		return nil, err
	}
	return s.requestRepo.ListPending(groupID)
}

func (s *MembershipService) ListBlocked(groupID, callerID uint) ([]models.BlockedMemberRow, error) {
	if err := s.requireAdmin(groupID, callerID); err != nil {
		return nil, err
	}
	return s.moderationRepo.ListBlocked(groupID)
}

// VerifyMembership combines the membership row and any pending request
// into one display view. Two reads, no transaction.
func (s *MembershipService) VerifyMembership(groupID, userID uint) (*MembershipVerification, error) {
	v := &MembershipVerification{}
	member, err := s.groupRepo.GetMember(groupID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if member != nil {
		v.IsMember = true
		v.Role = member.Role
		v.Status = member.Status
		return v, nil
	}
	pending, err := s.requestRepo.HasPending(groupID, userID)
	if err != nil {
		return nil, err
	}
	v.HasPendingRequest = pending
	return v, nil
}

// CheckBlocked reports whether the user is blocked from the group
// behind a join code, with the block reason if so.
func (s *MembershipService) CheckBlocked(group *models.Group, userID uint) (bool, string, error) {
	block, err := s.moderationRepo.FindBlock(group.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, "", nil
		}
		return false, "", err
	}
	return true, block.Reason, nil
}

func (s *MembershipService) requireAdmin(groupID, callerID uint) error {
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
	return nil
}
