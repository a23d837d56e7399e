package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/google/uuid"
)

type paymentMethodService struct {
	BaseService
	repo portsrepo.PaymentMethodRepositoryFacade
}

// NewPaymentMethodService creates the collection account service.
func NewPaymentMethodService(repo portsrepo.PaymentMethodRepositoryFacade, profiles portsrepo.ProfileReader) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{BaseService: newBaseService(profiles), repo: repo}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

func (s *paymentMethodService) ListPaymentMethods(ctx context.Context, actorID string, params dto.ListPaymentMethodsParams) ([]domain.PaymentMethod, error) {
	var region *domain.Region
	if params.Region != nil && *params.Region != "" {
		r, ok := domain.ParseRegion(*params.Region)
		if !ok {
			return nil, fmt.Errorf("%w: unknown region %q", apperrors.ErrValidation, *params.Region)
		}
		region = &r
	}
	if params.IncludeHidden {
		if _, err := s.RequireOperator(ctx, actorID); err != nil {
			return nil, err
		}
	}

	pms, err := s.repo.ListPaymentMethods(ctx, region, !params.IncludeHidden)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return pms, nil
}

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, operatorID string, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, err
	}
	region, ok := domain.ParseRegion(req.Region)
	if !ok {
		return nil, fmt.Errorf("%w: unknown region %q", apperrors.ErrValidation, req.Region)
	}

	now := s.now()
	pm := domain.PaymentMethod{
		PaymentMethodID: uuid.NewString(),
		Region:          region,
		MethodType:      strings.ToUpper(strings.TrimSpace(req.MethodType)),
		BankName:        strings.TrimSpace(req.BankName),
		AccountNumber:   strings.TrimSpace(req.AccountNumber),
		HolderName:      strings.TrimSpace(req.HolderName),
		HolderID:        strings.TrimSpace(req.HolderID),
		IsActive:        req.IsActive == nil || *req.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}
	if pm.MethodType == "" || pm.AccountNumber == "" || pm.HolderName == "" {
		return nil, fmt.Errorf("%w: method type, account number and holder name are required", apperrors.ErrValidation)
	}

	if err := s.repo.SavePaymentMethod(ctx, pm); err != nil {
		s.LogError(ctx, err, "Failed to save payment method")
		return nil, fmt.Errorf("failed to save payment method: %w", err)
	}
	s.LogInfo(ctx, "Payment method created", slog.String("payment_method_id", pm.PaymentMethodID), slog.String("region", string(region)))
	return &pm, nil
}

func (s *paymentMethodService) UpdatePaymentMethod(ctx context.Context, operatorID, paymentMethodID string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, err
	}
	pm, err := s.repo.FindPaymentMethodByID(ctx, paymentMethodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("payment method not found")
		}
		return nil, fmt.Errorf("failed to load payment method: %w", err)
	}

	setIfPresent := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	if req.MethodType != nil {
		pm.MethodType = strings.ToUpper(strings.TrimSpace(*req.MethodType))
	}
	setIfPresent(&pm.BankName, req.BankName)
	setIfPresent(&pm.AccountNumber, req.AccountNumber)
	setIfPresent(&pm.HolderName, req.HolderName)
	setIfPresent(&pm.HolderID, req.HolderID)
	if req.IsActive != nil {
		pm.IsActive = *req.IsActive
	}
	if pm.MethodType == "" || pm.AccountNumber == "" || pm.HolderName == "" {
		return nil, fmt.Errorf("%w: method type, account number and holder name are required", apperrors.ErrValidation)
	}
	pm.LastUpdatedAt = s.now()
	pm.LastUpdatedBy = operatorID

	if err := s.repo.UpdatePaymentMethod(ctx, *pm); err != nil {
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}
	return pm, nil
}

func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, operatorID, paymentMethodID string) error {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return err
	}
	if err := s.repo.DeletePaymentMethod(ctx, paymentMethodID); err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	s.LogInfo(ctx, "Payment method deleted", slog.String("payment_method_id", paymentMethodID))
	return nil
}
