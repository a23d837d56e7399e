package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Profiles portsrepo.ProfileReader
	Now      func() time.Time
}

func newBaseService(profiles portsrepo.ProfileReader) BaseService {
	return BaseService{Profiles: profiles, Now: time.Now}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// now returns the service clock in UTC.
func (s *BaseService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// RequireOperator loads the actor and fails with apperrors.ErrNotAuthorized
// unless it is an operator. Storage failures are returned unchanged.
func (s *BaseService) RequireOperator(ctx context.Context, actorID string) (*domain.Profile, error) {
	if actorID == "" {
		return nil, apperrors.ErrNotAuthorized
	}
	profile, err := s.Profiles.FindProfileByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown actor", apperrors.ErrNotAuthorized)
		}
		return nil, fmt.Errorf("failed to load actor profile: %w", err)
	}
	if !profile.IsOperator() {
		s.LogWarn(ctx, "Operator capability required", slog.String("actor_id", actorID))
		return nil, fmt.Errorf("%w: operator role required", apperrors.ErrNotAuthorized)
	}
	return profile, nil
}

// isOperator reports whether actorID is an operator, treating an unknown actor
// as a non-operator.
func (s *BaseService) isOperator(ctx context.Context, actorID string) (bool, error) {
	_, err := s.RequireOperator(ctx, actorID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperrors.ErrNotAuthorized) {
		return false, nil
	}
	return false, err
}
