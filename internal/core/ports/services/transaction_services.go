package services

import (
	"context"
	"io"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/dto"
)

// Artifact is an uploaded proof image or document.
type Artifact struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ProofStorage stores proof artifacts and returns a durable reference to them.
type ProofStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// GetTransaction returns a transaction visible to actorID (its owner or an operator).
	GetTransaction(ctx context.Context, actorID, transactionID string) (*domain.Transaction, error)

	// ListMyTransactions returns the owner's history, newest first.
	ListMyTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)

	// ListAllTransactions returns the operator queue.
	ListAllTransactions(ctx context.Context, operatorID string, params dto.ListTransactionsParams) ([]domain.TransactionOverview, *string, error)
}

// TransactionLifecycleSvc defines the state-changing operations of a transfer
type TransactionLifecycleSvc interface {
	// CreateTransaction quotes and persists a new transfer in the verifying state.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// AttachPaymentProof records the customer's proof reference without changing status.
	AttachPaymentProof(ctx context.Context, actorID, transactionID, proofURL string) (*domain.Transaction, error)

	// UploadPaymentProof stores the artifact and attaches its reference.
	UploadPaymentProof(ctx context.Context, actorID, transactionID string, artifact Artifact) (*domain.Transaction, error)

	// Transition moves a transfer along the lifecycle graph.
	Transition(ctx context.Context, transactionID string, newStatus domain.TransactionStatus, operatorID string, completionProofURL *string) (*domain.Transaction, error)

	// CompleteWithArtifact stores the payout proof and then completes the transfer.
	CompleteWithArtifact(ctx context.Context, transactionID, operatorID string, artifact Artifact) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionLifecycleSvc
}
