package services

import (
	"context"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/dto"
)

// PaymentMethodSvcFacade manages the operator's collection accounts
type PaymentMethodSvcFacade interface {
	// ListPaymentMethods lists accounts customers can pay into. Inactive
	// accounts are only shown to operators that ask for them.
	ListPaymentMethods(ctx context.Context, actorID string, params dto.ListPaymentMethodsParams) ([]domain.PaymentMethod, error)

	CreatePaymentMethod(ctx context.Context, operatorID string, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, operatorID, paymentMethodID string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, operatorID, paymentMethodID string) error
}

// DashboardSvc builds the operator overview
type DashboardSvc interface {
	GetDashboard(ctx context.Context, operatorID string) (*domain.Dashboard, error)
}
