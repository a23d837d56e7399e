package handlers_test

import (
	"context"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetLatestConfiguration(ctx context.Context) (*domain.RateConfiguration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfiguration), args.Error(1)
}

func (m *MockRateService) Quote(ctx context.Context, req dto.QuoteRequest) (*domain.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockRateService) Board(ctx context.Context, operatorID string) (*domain.RateConfiguration, []domain.BoardEntry, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.RateConfiguration), args.Get(1).([]domain.BoardEntry), args.Error(2)
}

func (m *MockRateService) UpdateConfiguration(ctx context.Context, operatorID string, req dto.UpdateRateConfigRequest) (*domain.RateConfiguration, error) {
	args := m.Called(ctx, operatorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfiguration), args.Error(1)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, actorID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, actorID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListMyTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, ownerID, params)
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}

func (m *MockTransactionService) ListAllTransactions(ctx context.Context, operatorID string, params dto.ListTransactionsParams) ([]domain.TransactionOverview, *string, error) {
	args := m.Called(ctx, operatorID, params)
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.TransactionOverview), next, args.Error(2)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) AttachPaymentProof(ctx context.Context, actorID, transactionID, proofURL string) (*domain.Transaction, error) {
	args := m.Called(ctx, actorID, transactionID, proofURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UploadPaymentProof(ctx context.Context, actorID, transactionID string, artifact portssvc.Artifact) (*domain.Transaction, error) {
	args := m.Called(ctx, actorID, transactionID, artifact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Transition(ctx context.Context, transactionID string, newStatus domain.TransactionStatus, operatorID string, completionProofURL *string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, newStatus, operatorID, completionProofURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CompleteWithArtifact(ctx context.Context, transactionID, operatorID string, artifact portssvc.Artifact) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, operatorID, artifact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, operatorID string, params dto.ListUsersParams) ([]domain.Profile, error) {
	args := m.Called(ctx, operatorID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Profile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, operatorID string, req dto.CreateUserRequest) (*domain.Profile, error) {
	args := m.Called(ctx, operatorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, operatorID, userID string, req dto.UpdateUserRequest) (*domain.Profile, error) {
	args := m.Called(ctx, operatorID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserService) SetRole(ctx context.Context, operatorID, userID string, role domain.Role) (*domain.Profile, error) {
	args := m.Called(ctx, operatorID, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, identifier, password string) (*domain.Profile, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock PaymentMethodService ---
type MockPaymentMethodService struct {
	mock.Mock
}

func (m *MockPaymentMethodService) ListPaymentMethods(ctx context.Context, actorID string, params dto.ListPaymentMethodsParams) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, actorID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) CreatePaymentMethod(ctx context.Context, operatorID string, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, operatorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) UpdatePaymentMethod(ctx context.Context, operatorID, paymentMethodID string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, operatorID, paymentMethodID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) DeletePaymentMethod(ctx context.Context, operatorID, paymentMethodID string) error {
	args := m.Called(ctx, operatorID, paymentMethodID)
	return args.Error(0)
}

var _ portssvc.PaymentMethodSvcFacade = (*MockPaymentMethodService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, operatorID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)
