package services_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindProfileByPhone(ctx context.Context, phone string) (*domain.Profile, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListProfiles(ctx context.Context, limit int, offset int) ([]domain.Profile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) UpdateProfileRole(ctx context.Context, userID string, role domain.Role, updatedAt time.Time, updatedBy string) error {
	return m.Called(ctx, userID, role, updatedAt, updatedBy).Error(0)
}

func (m *MockProfileRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error {
	return m.Called(ctx, userID, passwordHash, updatedAt).Error(0)
}

// --- Mock RateConfigRepository ---
type MockRateConfigRepository struct {
	mock.Mock
}

func (m *MockRateConfigRepository) FindLatestRateConfiguration(ctx context.Context) (*domain.RateConfiguration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfiguration), args.Error(1)
}

func (m *MockRateConfigRepository) SaveRateConfiguration(ctx context.Context, cfg domain.RateConfiguration) error {
	return m.Called(ctx, cfg).Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// return a copy so the service cannot mutate the fixture between calls
	txn := *args.Get(0).(*domain.Transaction)
	return &txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}

func (m *MockTransactionRepository) ListTransactionOverviews(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.TransactionOverview, *string, error) {
	args := m.Called(ctx, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.TransactionOverview), next, args.Error(2)
}

func (m *MockTransactionRepository) CountTransactionsByStatus(ctx context.Context) (map[domain.TransactionStatus]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.TransactionStatus]int), args.Error(1)
}

func (m *MockTransactionRepository) SumOpenVolume(ctx context.Context) (map[domain.CurrencyCode]decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.CurrencyCode]decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, upd domain.StatusUpdate) error {
	return m.Called(ctx, upd).Error(0)
}

func (m *MockTransactionRepository) UpdatePaymentProof(ctx context.Context, transactionID, proofURL string, updatedAt time.Time, updatedBy string) error {
	return m.Called(ctx, transactionID, proofURL, updatedAt, updatedBy).Error(0)
}

// --- Mock PaymentMethodRepository ---
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) ListPaymentMethods(ctx context.Context, region *domain.Region, activeOnly bool) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, region, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) SavePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error {
	return m.Called(ctx, pm).Error(0)
}

func (m *MockPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error {
	return m.Called(ctx, pm).Error(0)
}

func (m *MockPaymentMethodRepository) DeletePaymentMethod(ctx context.Context, paymentMethodID string) error {
	return m.Called(ctx, paymentMethodID).Error(0)
}

// --- Mock ProofStorage ---
type MockProofStorage struct {
	mock.Mock
}

func (m *MockProofStorage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}

// --- fixtures ---

const (
	operatorID = "op-1"
	customerID = "user-1"
	strangerID = "user-2"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// expectProfiles registers the three standard actors.
func expectProfiles(m *MockProfileRepository) {
	m.On("FindProfileByID", mock.Anything, operatorID).Return(&domain.Profile{UserID: operatorID, Role: domain.RoleAdmin}, nil).Maybe()
	m.On("FindProfileByID", mock.Anything, customerID).Return(&domain.Profile{UserID: customerID, Role: domain.RoleUser}, nil).Maybe()
	m.On("FindProfileByID", mock.Anything, strangerID).Return(&domain.Profile{UserID: strangerID, Role: domain.RoleUser}, nil).Maybe()
}

func peruVenezuelaConfig() *domain.RateConfiguration {
	return &domain.RateConfiguration{
		ID: "cfg-1",
		BasePrices: map[domain.Region]decimal.Decimal{
			domain.RegionPeru:      d("3.75"),
			domain.RegionColombia:  d("3900"),
			domain.RegionVenezuela: d("38.5"),
		},
		Margins: map[string]decimal.Decimal{
			"PERU_VES":     d("5"),
			"COLOMBIA_VES": d("10"),
		},
	}
}
