package service

import (
	"sort"
	"time"

	"github.com/groupup/groupup-backend/internal/models"
	"gorm.io/gorm"
)

type memberKey struct {
	groupID uint
	userID  uint
}

// MockGroupRepository is an in-memory implementation of
// repository.GroupRepositoryInterface. The optional sibling mocks let
// DeleteCascade clear dependent rows the way the real transaction does.
type MockGroupRepository struct {
	groups  map[uint]*models.Group
	codes   map[string]uint
	members map[memberKey]*models.GroupMember
	nextID  uint

	requests   *MockJoinRequestRepository
	moderation *MockModerationRepository
	invites    *MockInviteRepository

	// failCreates forces the next N CreateWithAdmin calls to report a
	// duplicate key, simulating join-code collisions.
	failCreates int
}

func NewMockGroupRepository() *MockGroupRepository {
	return &MockGroupRepository{
		groups:  make(map[uint]*models.Group),
		codes:   make(map[string]uint),
		members: make(map[memberKey]*models.GroupMember),
		nextID:  1,
	}
}

func (m *MockGroupRepository) CreateWithAdmin(group *models.Group) error {
	if m.failCreates > 0 {
		m.failCreates--
		return gorm.ErrDuplicatedKey
	}
	if _, ok := m.codes[group.Code]; ok {
		return gorm.ErrDuplicatedKey
	}
	if group.ID == 0 {
		group.ID = m.nextID
		m.nextID++
	}
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now()
	}
	m.groups[group.ID] = group
	m.codes[group.Code] = group.ID
	m.members[memberKey{group.ID, group.CreatedBy}] = &models.GroupMember{
		GroupID:  group.ID,
		UserID:   group.CreatedBy,
		Role:     models.RoleAdmin,
		Status:   models.StatusActive,
		JoinedAt: time.Now(),
	}
	return nil
}

func (m *MockGroupRepository) FindByID(id uint) (*models.Group, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockGroupRepository) FindByCode(code string) (*models.Group, error) {
	if id, ok := m.codes[code]; ok {
		return m.groups[id], nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockGroupRepository) Exists(id uint) (bool, error) {
	_, ok := m.groups[id]
	return ok, nil
}

func (m *MockGroupRepository) DeleteCascade(groupID uint) error {
	group, ok := m.groups[groupID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.codes, group.Code)
	delete(m.groups, groupID)
	for k := range m.members {
		if k.groupID == groupID {
			delete(m.members, k)
		}
	}
	if m.requests != nil {
		for id, req := range m.requests.requests {
			if req.GroupID == groupID {
				delete(m.requests.requests, id)
			}
		}
	}
	if m.moderation != nil {
		for k, b := range m.moderation.blocks {
			if b.GroupID == groupID {
				delete(m.moderation.blocks, k)
			}
		}
		kept := m.moderation.removals[:0]
		for _, r := range m.moderation.removals {
			if r.GroupID != groupID {
				kept = append(kept, r)
			}
		}
		m.moderation.removals = kept
	}
	if m.invites != nil {
		for id, inv := range m.invites.invites {
			if inv.GroupID == groupID {
				delete(m.invites.invites, id)
			}
		}
	}
	return nil
}

func (m *MockGroupRepository) AddMember(groupID, userID uint, role models.GroupRole, status models.MemberStatus) error {
	key := memberKey{groupID, userID}
	if _, ok := m.members[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.members[key] = &models.GroupMember{
		GroupID:  groupID,
		UserID:   userID,
		Role:     role,
		Status:   status,
		JoinedAt: time.Now(),
	}
	return nil
}

func (m *MockGroupRepository) RemoveMember(groupID, userID uint) error {
	delete(m.members, memberKey{groupID, userID})
	return nil
}

func (m *MockGroupRepository) GetMembers(groupID uint) ([]models.MemberRow, error) {
	var rows []models.MemberRow
	for k, member := range m.members {
		if k.groupID == groupID {
			rows = append(rows, models.MemberRow{
				UserID:   member.UserID,
				Role:     member.Role,
				Status:   member.Status,
				JoinedAt: member.JoinedAt,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UserID < rows[j].UserID })
	return rows, nil
}

func (m *MockGroupRepository) IsMember(groupID, userID uint) (bool, error) {
	_, ok := m.members[memberKey{groupID, userID}]
	return ok, nil
}

func (m *MockGroupRepository) GetMember(groupID, userID uint) (*models.GroupMember, error) {
	if member, ok := m.members[memberKey{groupID, userID}]; ok {
		return member, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockGroupRepository) GetUserGroups(userID uint) ([]models.Group, error) {
	var out []models.Group
	for k, member := range m.members {
		if member.UserID != userID {
			continue
		}
		if g, ok := m.groups[k.groupID]; ok {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// MockJoinRequestRepository implements
// repository.JoinRequestRepositoryInterface. Approve inserts the
// membership through the group mock, mirroring the real transaction.
type MockJoinRequestRepository struct {
	requests map[uint]*models.JoinRequest
	nextID   uint
	groups   *MockGroupRepository
}

func NewMockJoinRequestRepository(groups *MockGroupRepository) *MockJoinRequestRepository {
	m := &MockJoinRequestRepository{
		requests: make(map[uint]*models.JoinRequest),
		nextID:   1,
		groups:   groups,
	}
	if groups != nil {
		groups.requests = m
	}
	return m
}

func (m *MockJoinRequestRepository) Create(req *models.JoinRequest) error {
	for _, existing := range m.requests {
		if existing.GroupID == req.GroupID && existing.UserID == req.UserID &&
			existing.Status == models.RequestPending {
			return gorm.ErrDuplicatedKey
		}
	}
	req.ID = m.nextID
	m.nextID++
	req.CreatedAt = time.Now()
	m.requests[req.ID] = req
	return nil
}

func (m *MockJoinRequestRepository) FindByID(id uint) (*models.JoinRequest, error) {
	if req, ok := m.requests[id]; ok {
		return req, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockJoinRequestRepository) HasPending(groupID, userID uint) (bool, error) {
	for _, req := range m.requests {
		if req.GroupID == groupID && req.UserID == userID && req.Status == models.RequestPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockJoinRequestRepository) ListPending(groupID uint) ([]models.JoinRequestRow, error) {
	var rows []models.JoinRequestRow
	for _, req := range m.requests {
		if req.GroupID == groupID && req.Status == models.RequestPending {
			rows = append(rows, models.JoinRequestRow{
				ID:        req.ID,
				GroupID:   req.GroupID,
				UserID:    req.UserID,
				CreatedAt: req.CreatedAt,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (m *MockJoinRequestRepository) Approve(req *models.JoinRequest) error {
	stored, ok := m.requests[req.ID]
	if !ok || stored.Status != models.RequestPending {
		return gorm.ErrRecordNotFound
	}
	if err := m.groups.AddMember(req.GroupID, req.UserID, models.RoleMember, models.StatusActive); err != nil {
		return err
	}
	stored.Status = models.RequestApproved
	return nil
}

func (m *MockJoinRequestRepository) Reject(requestID uint) error {
	stored, ok := m.requests[requestID]
	if !ok || stored.Status != models.RequestPending {
		return gorm.ErrRecordNotFound
	}
	stored.Status = models.RequestRejected
	return nil
}

// MockModerationRepository implements
// repository.ModerationRepositoryInterface.
type MockModerationRepository struct {
	blocks        map[memberKey]*models.BlockRecord
	removals      []*models.RemovalRecord
	nextBlockID   uint
	nextRemovalID uint
	groups        *MockGroupRepository
}

func NewMockModerationRepository(groups *MockGroupRepository) *MockModerationRepository {
	m := &MockModerationRepository{
		blocks:        make(map[memberKey]*models.BlockRecord),
		nextBlockID:   1,
		nextRemovalID: 1,
		groups:        groups,
	}
	if groups != nil {
		groups.moderation = m
	}
	return m
}

func (m *MockModerationRepository) Block(block *models.BlockRecord) error {
	key := memberKey{block.GroupID, block.UserID}
	if _, ok := m.blocks[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.groups.RemoveMember(block.GroupID, block.UserID)
	block.ID = m.nextBlockID
	m.nextBlockID++
	if block.CreatedAt.IsZero() {
		block.CreatedAt = time.Now()
	}
	m.blocks[key] = block
	return nil
}

func (m *MockModerationRepository) Unblock(groupID, userID uint) error {
	key := memberKey{groupID, userID}
	if _, ok := m.blocks[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.blocks, key)
	return nil
}

func (m *MockModerationRepository) FindBlock(groupID, userID uint) (*models.BlockRecord, error) {
	if block, ok := m.blocks[memberKey{groupID, userID}]; ok {
		return block, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockModerationRepository) IsBlocked(groupID, userID uint) (bool, error) {
	_, ok := m.blocks[memberKey{groupID, userID}]
	return ok, nil
}

func (m *MockModerationRepository) ListBlocked(groupID uint) ([]models.BlockedMemberRow, error) {
	var rows []models.BlockedMemberRow
	for _, block := range m.blocks {
		if block.GroupID == groupID {
			rows = append(rows, models.BlockedMemberRow{
				ID:        block.ID,
				UserID:    block.UserID,
				Reason:    block.Reason,
				BlockedBy: block.BlockedBy,
				BlockedAt: block.CreatedAt,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (m *MockModerationRepository) Remove(removal *models.RemovalRecord) error {
	removal.ID = m.nextRemovalID
	m.nextRemovalID++
	if removal.CreatedAt.IsZero() {
		removal.CreatedAt = time.Now()
	}
	m.removals = append(m.removals, removal)
	m.groups.RemoveMember(removal.GroupID, removal.UserID)
	return nil
}

func (m *MockModerationRepository) groupName(groupID uint) string {
	if m.groups != nil {
		if g, ok := m.groups.groups[groupID]; ok {
			return g.Name
		}
	}
	return ""
}

func (m *MockModerationRepository) ListUnreadBlocks(userID uint) ([]models.Notification, error) {
	var out []models.Notification
	for _, block := range m.blocks {
		if block.UserID == userID && !block.NotificationRead {
			out = append(out, models.Notification{
				ID:        block.ID,
				Kind:      models.NotificationBlocked,
				GroupID:   block.GroupID,
				GroupName: m.groupName(block.GroupID),
				Reason:    block.Reason,
				CreatedAt: block.CreatedAt,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockModerationRepository) ListUnreadRemovals(userID uint) ([]models.Notification, error) {
	var out []models.Notification
	for _, removal := range m.removals {
		if removal.UserID == userID && !removal.NotificationRead {
			out = append(out, models.Notification{
				ID:        removal.ID,
				Kind:      models.NotificationRemoved,
				GroupID:   removal.GroupID,
				GroupName: m.groupName(removal.GroupID),
				Reason:    removal.Reason,
				CreatedAt: removal.CreatedAt,
			})
		}
	}
	return out, nil
}

func (m *MockModerationRepository) MarkBlockRead(id, userID uint) (bool, error) {
	for _, block := range m.blocks {
		if block.ID == id && block.UserID == userID && !block.NotificationRead {
			block.NotificationRead = true
			return true, nil
		}
	}
	return false, nil
}

func (m *MockModerationRepository) MarkRemovalRead(id, userID uint) (bool, error) {
	for _, removal := range m.removals {
		if removal.ID == id && removal.UserID == userID && !removal.NotificationRead {
			removal.NotificationRead = true
			return true, nil
		}
	}
	return false, nil
}

// MockInviteRepository implements repository.InviteRepositoryInterface.
type MockInviteRepository struct {
	invites map[uint]*models.GroupInvite
	nextID  uint
	groups  *MockGroupRepository
}

func NewMockInviteRepository(groups *MockGroupRepository) *MockInviteRepository {
	m := &MockInviteRepository{
		invites: make(map[uint]*models.GroupInvite),
		nextID:  1,
		groups:  groups,
	}
	if groups != nil {
		groups.invites = m
	}
	return m
}

func (m *MockInviteRepository) Create(invite *models.GroupInvite) error {
	for _, existing := range m.invites {
		if existing.Token == invite.Token {
			return gorm.ErrDuplicatedKey
		}
	}
	invite.ID = m.nextID
	m.nextID++
	invite.CreatedAt = time.Now()
	m.invites[invite.ID] = invite
	return nil
}

func (m *MockInviteRepository) FindByID(id uint) (*models.GroupInvite, error) {
	if invite, ok := m.invites[id]; ok {
		return invite, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockInviteRepository) FindByToken(token string) (*models.GroupInvite, error) {
	for _, invite := range m.invites {
		if invite.Token == token {
			return invite, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockInviteRepository) HasPending(groupID, inviteeID uint) (bool, error) {
	for _, invite := range m.invites {
		if invite.GroupID == groupID && invite.InviteeID == inviteeID &&
			invite.Status == models.InvitePending {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockInviteRepository) ListPendingForUser(userID uint) ([]models.GroupInvite, error) {
	var out []models.GroupInvite
	for _, invite := range m.invites {
		if invite.InviteeID == userID && invite.Status == models.InvitePending {
			out = append(out, *invite)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MockInviteRepository) Accept(invite *models.GroupInvite) error {
	stored, ok := m.invites[invite.ID]
	if !ok || stored.Status != models.InvitePending {
		return gorm.ErrRecordNotFound
	}
	if err := m.groups.AddMember(invite.GroupID, invite.InviteeID, models.RoleMember, models.StatusActive); err != nil {
		return err
	}
	if m.groups.requests != nil {
		for _, req := range m.groups.requests.requests {
			if req.GroupID == invite.GroupID && req.UserID == invite.InviteeID && req.Status == models.RequestPending {
				req.Status = models.RequestApproved
			}
		}
	}
	stored.Status = models.InviteAccepted
	return nil
}

func (m *MockInviteRepository) Revoke(inviteID uint) error {
	stored, ok := m.invites[inviteID]
	if !ok || stored.Status != models.InvitePending {
		return gorm.ErrRecordNotFound
	}
	stored.Status = models.InviteRevoked
	return nil
}

// MockUserRepository implements repository.UserRepositoryInterface.
type MockUserRepository struct {
	users  map[uint]*models.User
	nextID uint
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func (m *MockUserRepository) Create(user *models.User) error {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}
