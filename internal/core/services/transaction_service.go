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
	"github.com/SscSPs/remittance_app/internal/core/rates"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/SscSPs/remittance_app/internal/platform/metrics"
	"github.com/google/uuid"
)

const defaultPageSize = 20

type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	configRepo portsrepo.RateConfigReader
	storage    portssvc.ProofStorage
	newID      func() string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithProofStorage enables artifact uploads.
func WithProofStorage(storage portssvc.ProofStorage) TransactionServiceOption {
	return func(s *transactionService) {
		s.storage = storage
	}
}

// WithIDGenerator replaces uuid generation, for tests.
func WithIDGenerator(newID func() string) TransactionServiceOption {
	return func(s *transactionService) {
		s.newID = newID
	}
}

// NewTransactionService creates the transaction lifecycle service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	configRepo portsrepo.RateConfigReader,
	profiles portsrepo.ProfileReader,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		BaseService: newBaseService(profiles),
		txnRepo:     txnRepo,
		configRepo:  configRepo,
		newID:       uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction reads the configuration once, prices once and persists
// once. The stored rate is the one that was quoted.
func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	source, target, err := parseQuotablePair(req.Source, req.Target)
	if err != nil {
		return nil, err
	}
	amount := rates.ParseAmount(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	cfg, err := s.configRepo.FindLatestRateConfiguration(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no quote available", apperrors.ErrValidation)
		}
		s.LogError(ctx, err, "Failed to load rate configuration")
		return nil, fmt.Errorf("failed to load rate configuration: %w", err)
	}

	quote := rates.NewQuote(*cfg, source, target, amount, parseDirection(req.Direction))
	pairKey := domain.PairKey(source, target)
	if !quote.Available() || !quote.AmountSent.IsPositive() {
		s.LogWarn(ctx, "Transaction rejected, no quote available", slog.String("pair", pairKey))
		return nil, fmt.Errorf("%w: no quote available for %s", apperrors.ErrValidation, pairKey)
	}
	if req.QuotedRate != nil && !req.QuotedRate.Equal(quote.ExchangeRate) {
		s.LogInfo(ctx, "Quoted rate is stale",
			slog.String("pair", pairKey),
			slog.String("quoted", req.QuotedRate.String()),
			slog.String("current", quote.ExchangeRate.String()))
		return nil, apperrors.ErrRateChanged
	}

	txn := domain.NewTransaction(s.newID(), ownerID, quote, s.now())
	if req.ReferenceID != nil {
		if ref := strings.TrimSpace(*req.ReferenceID); ref != "" {
			txn.ReferenceID = &ref
		}
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	metrics.TransactionsCreated.WithLabelValues(pairKey).Inc()
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("pair", pairKey),
		slog.String("rate", txn.ExchangeRate.String()),
		slog.String("configuration_id", cfg.ID))
	return &txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, actorID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.findTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwnerOrOperator(ctx, actorID, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListMyTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	txns, next, err := s.txnRepo.ListTransactionsByUser(ctx, ownerID, pageSize(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, next, nil
}

func (s *transactionService) ListAllTransactions(ctx context.Context, operatorID string, params dto.ListTransactionsParams) ([]domain.TransactionOverview, *string, error) {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, nil, err
	}

	filter := portsrepo.TransactionListFilter{Limit: pageSize(params.Limit), NextToken: params.NextToken}
	if params.Status != nil && *params.Status != "" {
		status := domain.TransactionStatus(*params.Status)
		if !status.IsValid() {
			return nil, nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *params.Status)
		}
		filter.Status = &status
	}

	overviews, next, err := s.txnRepo.ListTransactionOverviews(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transaction queue")
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return overviews, next, nil
}

func (s *transactionService) AttachPaymentProof(ctx context.Context, actorID, transactionID, proofURL string) (*domain.Transaction, error) {
	proofURL = strings.TrimSpace(proofURL)
	if proofURL == "" {
		return nil, fmt.Errorf("%w: payment proof reference is required", apperrors.ErrValidation)
	}

	txn, err := s.checkPaymentProofAllowed(ctx, actorID, transactionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.txnRepo.UpdatePaymentProof(ctx, transactionID, proofURL, now, actorID); err != nil {
		s.LogError(ctx, err, "Failed to attach payment proof", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to attach payment proof: %w", err)
	}

	txn.PaymentProofURL = &proofURL
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = actorID
	s.LogInfo(ctx, "Payment proof attached", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) UploadPaymentProof(ctx context.Context, actorID, transactionID string, artifact portssvc.Artifact) (*domain.Transaction, error) {
	if s.storage == nil {
		return nil, errUploadsDisabled
	}
	if err := validateArtifact(artifact); err != nil {
		return nil, err
	}
	if _, err := s.checkPaymentProofAllowed(ctx, actorID, transactionID); err != nil {
		return nil, err
	}

	url, err := s.storage.Put(ctx, ProofObjectKey(paymentProofPrefix, transactionID, artifact), artifact.ContentType, artifact.Body)
	if err != nil {
		s.LogError(ctx, err, "Failed to store payment proof", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to store payment proof: %w", err)
	}
	return s.AttachPaymentProof(ctx, actorID, transactionID, url)
}

// Transition checks, in order: operator capability, a known status, the
// same-status no-op, the graph edge, the completion proof, and finally the
// optimistic status guard in storage.
func (s *transactionService) Transition(ctx context.Context, transactionID string, newStatus domain.TransactionStatus, operatorID string, completionProofURL *string) (*domain.Transaction, error) {
	txn, err := s.transition(ctx, transactionID, newStatus, operatorID, completionProofURL)
	metrics.TransitionsTotal.WithLabelValues(string(newStatus), transitionOutcome(err)).Inc()
	return txn, err
}

func (s *transactionService) transition(ctx context.Context, transactionID string, newStatus domain.TransactionStatus, operatorID string, completionProofURL *string) (*domain.Transaction, error) {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, err
	}
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, newStatus)
	}

	txn, err := s.findTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status == newStatus {
		return txn, nil
	}
	if !txn.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, txn.Status, newStatus)
	}

	var proof *string
	if completionProofURL != nil {
		if ref := strings.TrimSpace(*completionProofURL); ref != "" {
			proof = &ref
		}
	}
	if newStatus == domain.StatusCompleted && proof == nil && !txn.HasCompletionProof() {
		return nil, apperrors.ErrMissingCompletionProof
	}

	upd := domain.StatusUpdate{
		TransactionID:      transactionID,
		ExpectedStatus:     txn.Status,
		NewStatus:          newStatus,
		CompletionProofURL: proof,
		UpdatedAt:          s.now(),
		UpdatedBy:          operatorID,
	}
	if err := s.txnRepo.UpdateTransactionStatus(ctx, upd); err != nil {
		s.LogError(ctx, err, "Failed to update transaction status",
			slog.String("transaction_id", transactionID),
			slog.String("from", string(txn.Status)),
			slog.String("to", string(newStatus)))
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	s.LogInfo(ctx, "Transaction status changed",
		slog.String("transaction_id", transactionID),
		slog.String("from", string(txn.Status)),
		slog.String("to", string(newStatus)))

	txn.Status = newStatus
	if proof != nil {
		txn.CompletionProofURL = proof
	}
	txn.LastUpdatedAt = upd.UpdatedAt
	txn.LastUpdatedBy = operatorID
	return txn, nil
}

// CompleteWithArtifact never marks a transfer completed before the payout
// proof has been stored. A retry on a completed transfer uploads nothing.
func (s *transactionService) CompleteWithArtifact(ctx context.Context, transactionID, operatorID string, artifact portssvc.Artifact) (*domain.Transaction, error) {
	if s.storage == nil {
		return nil, errUploadsDisabled
	}
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, err
	}
	if err := validateArtifact(artifact); err != nil {
		return nil, err
	}

	txn, err := s.findTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status == domain.StatusCompleted {
		return txn, nil
	}
	if !txn.Status.CanTransitionTo(domain.StatusCompleted) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, txn.Status, domain.StatusCompleted)
	}

	url, err := s.storage.Put(ctx, ProofObjectKey(settlementProofPrefix, transactionID, artifact), artifact.ContentType, artifact.Body)
	if err != nil {
		s.LogError(ctx, err, "Failed to store settlement proof", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to store settlement proof: %w", err)
	}
	return s.Transition(ctx, transactionID, domain.StatusCompleted, operatorID, &url)
}

// checkPaymentProofAllowed returns the transaction when actorID may attach a
// payment proof to it right now.
func (s *transactionService) checkPaymentProofAllowed(ctx context.Context, actorID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.findTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwnerOrOperator(ctx, actorID, txn); err != nil {
		return nil, err
	}
	if txn.Status != domain.StatusVerifying {
		return nil, fmt.Errorf("%w: payment proof can only be attached while %s, transaction is %s",
			apperrors.ErrInvalidTransition, domain.StatusVerifying, txn.Status)
	}
	return txn, nil
}

func (s *transactionService) findTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
		}
		s.LogError(ctx, err, "Failed to load transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) authorizeOwnerOrOperator(ctx context.Context, actorID string, txn *domain.Transaction) error {
	if actorID != "" && txn.OwnedBy(actorID) {
		return nil
	}
	ok, err := s.isOperator(ctx, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: transaction belongs to another customer", apperrors.ErrNotAuthorized)
	}
	return nil
}

var errUploadsDisabled = apperrors.NewAppError(http.StatusServiceUnavailable, "proof uploads are not configured", nil)

func transitionOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperrors.ErrInvalidTransition):
		return "invalid"
	case errors.Is(err, apperrors.ErrMissingCompletionProof):
		return "missing_proof"
	case errors.Is(err, apperrors.ErrNotAuthorized):
		return "not_authorized"
	case errors.Is(err, apperrors.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

func pageSize(limit int) int {
	if limit <= 0 || limit > 100 {
		return defaultPageSize
	}
	return limit
}
