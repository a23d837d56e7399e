package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/SscSPs/remittance_app/internal/utils"
	"github.com/google/uuid"
)

// phoneEmailDomain backs the sign-in email of customers onboarded by phone only.
const phoneEmailDomain = "venecambio.app"

type userService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewUserService creates the profile and authentication service.
func NewUserService(profileRepo portsrepo.ProfileRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		BaseService: newBaseService(profileRepo),
		profileRepo: profileRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) AuthenticateUser(ctx context.Context, identifier, password string) (*domain.Profile, error) {
	identifier = strings.TrimSpace(identifier)

	var (
		profile *domain.Profile
		err     error
	)
	if strings.HasPrefix(identifier, "+") {
		profile, err = s.profileRepo.FindProfileByPhone(ctx, normalizePhone(identifier))
	} else {
		profile, err = s.profileRepo.FindProfileByEmail(ctx, strings.ToLower(identifier))
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile.PasswordHash == "" || !utils.CheckPasswordHash(password, profile.PasswordHash) {
		s.LogWarn(ctx, "Login failed", slog.String("user_id", profile.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	return profile, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *userService) ListUsers(ctx context.Context, operatorID string, params dto.ListUsersParams) ([]domain.Profile, error) {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	profiles, err := s.profileRepo.ListProfiles(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Profile, error) {
	profile, err := s.newProfile(strings.ToLower(strings.TrimSpace(req.Email)), req.Phone, req.FullName, "", domain.RoleUser, req.Password, "")
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, profile); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Customer registered", slog.String("user_id", profile.UserID))
	return profile, nil
}

func (s *userService) CreateUser(ctx context.Context, operatorID string, req dto.CreateUserRequest) (*domain.Profile, error) {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		email = strings.TrimPrefix(normalizePhone(req.Phone), "+") + "@" + phoneEmailDomain
	}
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	profile, err := s.newProfile(email, req.Phone, req.FullName, req.ClientCode, role, req.Password, operatorID)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, profile); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User created by operator", slog.String("user_id", profile.UserID), slog.String("role", string(role)))
	return profile, nil
}

func (s *userService) UpdateUser(ctx context.Context, operatorID, userID string, req dto.UpdateUserRequest) (*domain.Profile, error) {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, err
	}
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidation)
		}
		profile.FullName = name
	}
	if req.ClientCode != nil {
		profile.ClientCode = strings.TrimSpace(*req.ClientCode)
	}
	if req.Role != nil {
		if err := s.checkRoleChange(operatorID, userID, *req.Role); err != nil {
			return nil, err
		}
		profile.Role = *req.Role
	}
	profile.LastUpdatedAt = s.now()
	profile.LastUpdatedBy = operatorID

	if err := s.profileRepo.UpdateProfile(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func (s *userService) SetRole(ctx context.Context, operatorID, userID string, role domain.Role) (*domain.Profile, error) {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, err
	}
	if err := s.checkRoleChange(operatorID, userID, role); err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.profileRepo.UpdateProfileRole(ctx, userID, role, now, operatorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	s.LogInfo(ctx, "Role changed", slog.String("user_id", userID), slog.String("role", string(role)))
	return s.GetProfile(ctx, userID)
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(req.CurrentPassword, profile.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrValidation)
	}
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.profileRepo.UpdatePasswordHash(ctx, userID, hash, s.now()); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// checkRoleChange keeps an operator from demoting themselves, which could
// leave nobody able to run the desk.
func (s *userService) checkRoleChange(operatorID, userID string, role domain.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}
	if operatorID == userID && role != domain.RoleAdmin {
		return fmt.Errorf("%w: operators cannot demote themselves", apperrors.ErrValidation)
	}
	return nil
}

func (s *userService) newProfile(email, phone, fullName, clientCode string, role domain.Role, password, createdBy string) (*domain.Profile, error) {
	fullName = strings.TrimSpace(fullName)
	if email == "" || fullName == "" {
		return nil, fmt.Errorf("%w: email and full name are required", apperrors.ErrValidation)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	id := uuid.NewString()
	if createdBy == "" {
		createdBy = id
	}
	return &domain.Profile{
		UserID:       id,
		Email:        email,
		FullName:     fullName,
		Phone:        normalizePhone(phone),
		ClientCode:   strings.TrimSpace(clientCode),
		Role:         role,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}, nil
}

func (s *userService) save(ctx context.Context, profile *domain.Profile) error {
	if err := s.profileRepo.SaveProfile(ctx, *profile); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return apperrors.NewAppError(http.StatusConflict, "email or phone already registered", err)
		}
		s.LogError(ctx, err, "Failed to save profile")
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func normalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r == '+' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, strings.TrimSpace(phone))
}
