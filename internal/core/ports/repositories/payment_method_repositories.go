package repositories

import (
	"context"

	"github.com/SscSPs/remittance_app/internal/core/domain"
)

// PaymentMethodReader defines read operations for operator collection accounts
type PaymentMethodReader interface {
	FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error)

	// ListPaymentMethods lists accounts, optionally for one region and only active ones.
	ListPaymentMethods(ctx context.Context, region *domain.Region, activeOnly bool) ([]domain.PaymentMethod, error)
}

// PaymentMethodWriter defines write operations for operator collection accounts
type PaymentMethodWriter interface {
	SavePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error
	UpdatePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, paymentMethodID string) error
}

// PaymentMethodRepositoryFacade combines all payment method repository interfaces
type PaymentMethodRepositoryFacade interface {
	PaymentMethodReader
	PaymentMethodWriter
}
