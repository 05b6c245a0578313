package service

import (
	"context"
	"strings"
	"time"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/repository/unitofwork"

	"golang.org/x/crypto/bcrypt"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgAccountInactive    = "Account is not active"
	msgInviteNotFound     = "Invitation not found or already used"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	AcceptInvite(ctx context.Context, req *dto.AcceptInviteRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, p serverutils.Principal) (*dto.MeResponse, error)
	Authenticate(ctx context.Context, p serverutils.Principal) (serverutils.Principal, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  string
	tokenTTL   time.Duration
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, tokenTTL time.Duration, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		logger:     log,
	}
}

func (s *authService) issue(user *entity.User) (*dto.LoginResponse, error) {
	token, expiresAt, err := serverutils.IssueToken(s.jwtSecret, serverutils.Principal{
		UserId:         user.Id,
		OrganizationId: user.OrganizationId,
		Role:           user.Role,
	}, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
		User:      toTeamMemberResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users := uow.UserRepository()

	user, err := users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, serverutils.Unauthorized(msgInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.Unauthorized(msgInvalidCredentials)
	}
	if user.Status != entity.UserStatusActive {
		return nil, serverutils.Unauthorized(msgAccountInactive)
	}

	now := timeNow()
	user.LastLoginAt = &now
	if err := users.Update(ctx, user); err != nil {
		s.logger.Warn("AuthService", "Failed to record last login", map[string]interface{}{
			"user_id": user.Id.String(),
			"error":   err.Error(),
		})
	}

	s.logger.Info("AuthService", "User logged in", map[string]interface{}{
		"user_id":         user.Id.String(),
		"organization_id": user.OrganizationId.String(),
	})
	return s.issue(user)
}

func (s *authService) AcceptInvite(ctx context.Context, req *dto.AcceptInviteRequest) (*dto.LoginResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	users := uow.UserRepository()
	user, err := users.FindByInviteToken(ctx, strings.TrimSpace(req.Token))
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != entity.UserStatusInvited {
		return nil, serverutils.NotFound(msgInviteNotFound)
	}

	now := timeNow()
	hashed := string(hash)
	user.FullName = strings.TrimSpace(req.FullName)
	user.PasswordHash = &hashed
	user.Status = entity.UserStatusActive
	user.InviteToken = nil
	user.LastLoginAt = &now
	user.UpdatedAt = now
	if err := users.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("AuthService", "Invitation accepted", map[string]interface{}{
		"user_id":         user.Id.String(),
		"organization_id": user.OrganizationId.String(),
	})
	return s.issue(user)
}

// Authenticate rejects tokens whose account was removed or moved since issue.
// The stored role wins over the one in the token.
func (s *authService) Authenticate(ctx context.Context, p serverutils.Principal) (serverutils.Principal, error) {
	user, err := s.uowFactory.NewUnitOfWork(ctx).UserRepository().FindByID(ctx, p.UserId)
	if err != nil {
		return serverutils.Principal{}, err
	}
	if user == nil || user.Status != entity.UserStatusActive || user.OrganizationId != p.OrganizationId {
		return serverutils.Principal{}, serverutils.Unauthorized(msgAccountInactive)
	}
	return serverutils.Principal{UserId: user.Id, OrganizationId: user.OrganizationId, Role: user.Role}, nil
}

func (s *authService) Me(ctx context.Context, p serverutils.Principal) (*dto.MeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByID(ctx, p.UserId)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != entity.UserStatusActive {
		return nil, serverutils.Unauthorized(msgAccountInactive)
	}

	res := &dto.MeResponse{
		User:         toTeamMemberResponse(user),
		Organization: dto.OrganizationSummary{Id: user.OrganizationId},
	}
	org, err := uow.OrganizationRepository().FindByID(ctx, user.OrganizationId)
	if err != nil {
		return nil, err
	}
	if org != nil {
		res.Organization.Name = org.Name
		res.Organization.OnboardingStatus = string(org.OnboardingStatus)
	}
	return res, nil
}
