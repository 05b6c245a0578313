package service

import (
	"context"
	"net/url"
	"strings"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/mailer"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/contract"
	"brand-dashboard-be/internal/repository/unitofwork"
	"brand-dashboard-be/pkg/events"

	"github.com/google/uuid"
)

const (
	msgMemberNotFound  = "Team member not found"
	msgDuplicateMember = "A team member with this email already exists"
	msgOnlyInvitedSend = "Only invited members can be sent a new invitation"
	msgOwnRoleChange   = "You cannot change your own role"
	msgOwnerRoleChange = "The owner's role cannot be changed"
	msgRemoveSelf      = "You cannot remove yourself"
	msgRemoveOwner     = "The owner cannot be removed"
	msgInvalidTeamRole = "Role must be one of admin, manager, viewer"
	acceptInvitePath   = "/accept-invite?token="
)

var (
	// teamRoles are the brand roles. Platform admins are operators, never team members.
	teamRoles    = []entity.UserRole{entity.UserRoleOwner, entity.UserRoleAdmin, entity.UserRoleManager, entity.UserRoleViewer}
	userStatuses = []entity.UserStatus{entity.UserStatusInvited, entity.UserStatusActive, entity.UserStatusRemoved}
)

type ITeamService interface {
	Members(ctx context.Context, p serverutils.Principal, query dto.TeamListQuery, page pagination.Params) (*pagination.Page[dto.TeamMemberResponse], error)
	Invite(ctx context.Context, p serverutils.Principal, req *dto.InviteMemberRequest) (*dto.TeamMemberResponse, error)
	ResendInvite(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.TeamMemberResponse, error)
	UpdateRole(ctx context.Context, p serverutils.Principal, id uuid.UUID, req *dto.UpdateMemberRoleRequest) (*dto.TeamMemberResponse, error)
	Remove(ctx context.Context, p serverutils.Principal, id uuid.UUID) error
}

type teamService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	publisher    events.Publisher
	logger       logger.ILogger
	appURL       string
}

// NewTeamService builds invitation links from appURL, the dashboard's public base URL.
func NewTeamService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, publisher events.Publisher, log logger.ILogger, appURL string) ITeamService {
	return &teamService{
		uowFactory:   uowFactory,
		emailService: emailService,
		publisher:    publisher,
		logger:       log,
		appURL:       strings.TrimRight(appURL, "/"),
	}
}

func (s *teamService) Members(ctx context.Context, p serverutils.Principal, query dto.TeamListQuery, page pagination.Params) (*pagination.Page[dto.TeamMemberResponse], error) {
	filter := contract.UserFilter{
		OrganizationId: p.OrganizationId,
		Search:         strings.TrimSpace(query.Search),
		Page:           page,
	}

	roles, err := parseEnum(query.Role, "role", teamRoles)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = teamRoles
	}
	filter.Roles = roles

	statuses, err := parseEnum(query.Status, "status", userStatuses)
	if err != nil {
		return nil, err
	}
	if statuses == nil {
		statuses = []entity.UserStatus{entity.UserStatusInvited, entity.UserStatusActive}
	}
	filter.Statuses = statuses

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, total, err := uow.UserRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TeamMemberResponse, len(users))
	for i, u := range users {
		items[i] = toTeamMemberResponse(u)
	}
	return pagination.NewPage(items, page, total), nil
}

func newInviteToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *teamService) acceptURL(token string) string {
	return s.appURL + acceptInvitePath + url.QueryEscape(token)
}

func (s *teamService) Invite(ctx context.Context, p serverutils.Principal, req *dto.InviteMemberRequest) (*dto.TeamMemberResponse, error) {
	if !p.Role.CanManageTeam() {
		return nil, serverutils.Forbidden(serverutils.MsgForbidden)
	}
	role := entity.UserRole(req.Role)
	if !role.IsInvitable() {
		return nil, serverutils.BadRequest(msgInvalidTeamRole)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	users := uow.UserRepository()
	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	token := newInviteToken()
	inviterId := p.UserId
	member := existing
	switch {
	case existing == nil:
		member = &entity.User{
			Id:             uuid.New(),
			OrganizationId: p.OrganizationId,
			Email:          email,
			CreatedAt:      now,
		}
	case existing.OrganizationId == p.OrganizationId && existing.Status == entity.UserStatusRemoved:
		// A removed member can be invited back; the record is reused.
		member.PasswordHash = nil
	default:
		return nil, serverutils.Conflict(msgDuplicateMember)
	}

	member.FullName = strings.TrimSpace(req.FullName)
	member.Role = role
	member.Status = entity.UserStatusInvited
	member.InviteToken = &token
	member.InvitedBy = &inviterId
	member.InvitedAt = &now
	member.UpdatedAt = now

	if existing == nil {
		err = users.Create(ctx, member)
	} else {
		err = users.Update(ctx, member)
	}
	if err != nil {
		return nil, err
	}

	inviter, err := users.FindByID(ctx, p.UserId)
	if err != nil {
		return nil, err
	}
	org, err := uow.OrganizationRepository().FindByID(ctx, p.OrganizationId)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.sendInvite(member, inviter, org)
	s.logger.Info("TeamService", "Team member invited", map[string]interface{}{
		"member_id":  member.Id.String(),
		"role":       string(role),
		"invited_by": p.UserId.String(),
	})
	publishEvent(ctx, s.publisher, s.logger, events.TeamMemberInvited, map[string]interface{}{
		"organization_id": p.OrganizationId.String(),
		"member_id":       member.Id.String(),
		"email":           member.Email,
		"role":            string(role),
		"actor_id":        p.UserId.String(),
		"entity_type":     "user",
		"entity_id":       member.Id.String(),
	})

	res := toTeamMemberResponse(member)
	return &res, nil
}

// sendInvite does not fail the request; the invite can be resent.
func (s *teamService) sendInvite(member, inviter *entity.User, org *entity.Organization) {
	invite := mailer.InviteEmail{
		To:          member.Email,
		InviteeName: member.FullName,
		Role:        string(member.Role),
		AcceptURL:   s.acceptURL(*member.InviteToken),
	}
	if inviter != nil {
		invite.InviterName = inviter.FullName
	}
	if org != nil {
		invite.OrganizationName = org.Name
	}
	if err := s.emailService.SendInvite(invite); err != nil {
		s.logger.Warn("TeamService", "Invitation email not delivered", map[string]interface{}{
			"member_id": member.Id.String(),
			"error":     err.Error(),
		})
	}
}

// findMember returns a non-removed member of the caller's organization.
func findMember(ctx context.Context, users contract.UserRepository, organizationId, id uuid.UUID) (*entity.User, error) {
	member, err := users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil || member.OrganizationId != organizationId || member.Status == entity.UserStatusRemoved || member.Role == entity.UserRolePlatformAdmin {
		return nil, serverutils.NotFound(msgMemberNotFound)
	}
	return member, nil
}

func (s *teamService) ResendInvite(ctx context.Context, p serverutils.Principal, id uuid.UUID) (*dto.TeamMemberResponse, error) {
	if !p.Role.CanManageTeam() {
		return nil, serverutils.Forbidden(serverutils.MsgForbidden)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	users := uow.UserRepository()
	member, err := findMember(ctx, users, p.OrganizationId, id)
	if err != nil {
		return nil, err
	}
	if member.Status != entity.UserStatusInvited {
		return nil, serverutils.BadRequest(msgOnlyInvitedSend)
	}

	now := timeNow()
	token := newInviteToken()
	inviterId := p.UserId
	member.InviteToken = &token
	member.InvitedBy = &inviterId
	member.InvitedAt = &now
	member.UpdatedAt = now
	if err := users.Update(ctx, member); err != nil {
		return nil, err
	}

	inviter, err := users.FindByID(ctx, p.UserId)
	if err != nil {
		return nil, err
	}
	org, err := uow.OrganizationRepository().FindByID(ctx, p.OrganizationId)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.sendInvite(member, inviter, org)
	res := toTeamMemberResponse(member)
	return &res, nil
}

func (s *teamService) UpdateRole(ctx context.Context, p serverutils.Principal, id uuid.UUID, req *dto.UpdateMemberRoleRequest) (*dto.TeamMemberResponse, error) {
	if !p.Role.CanManageTeam() {
		return nil, serverutils.Forbidden(serverutils.MsgForbidden)
	}
	role := entity.UserRole(req.Role)
	if !role.IsInvitable() {
		return nil, serverutils.BadRequest(msgInvalidTeamRole)
	}
	if id == p.UserId {
		return nil, serverutils.BadRequest(msgOwnRoleChange)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	users := uow.UserRepository()
	member, err := findMember(ctx, users, p.OrganizationId, id)
	if err != nil {
		return nil, err
	}
	if member.Role == entity.UserRoleOwner {
		return nil, serverutils.BadRequest(msgOwnerRoleChange)
	}

	previous := member.Role
	member.Role = role
	member.UpdatedAt = timeNow()
	if err := users.Update(ctx, member); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("TeamService", "Team member role changed", map[string]interface{}{
		"member_id": member.Id.String(),
		"from":      string(previous),
		"to":        string(role),
		"actor_id":  p.UserId.String(),
	})
	res := toTeamMemberResponse(member)
	return &res, nil
}

func (s *teamService) Remove(ctx context.Context, p serverutils.Principal, id uuid.UUID) error {
	if !p.Role.CanManageTeam() {
		return serverutils.Forbidden(serverutils.MsgForbidden)
	}
	if id == p.UserId {
		return serverutils.BadRequest(msgRemoveSelf)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	users := uow.UserRepository()
	member, err := findMember(ctx, users, p.OrganizationId, id)
	if err != nil {
		return err
	}
	if member.Role == entity.UserRoleOwner {
		return serverutils.BadRequest(msgRemoveOwner)
	}

	member.Status = entity.UserStatusRemoved
	member.InviteToken = nil
	member.UpdatedAt = timeNow()
	if err := users.Update(ctx, member); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("TeamService", "Team member removed", map[string]interface{}{
		"member_id": member.Id.String(),
		"actor_id":  p.UserId.String(),
	})
	return nil
}
