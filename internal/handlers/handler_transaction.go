package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/core/rates"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/SscSPs/remittance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// artifactFormField is the multipart field carrying an uploaded proof.
const artifactFormField = "file"

// transactionHandler handles the customer side of the transaction lifecycle.
type transactionHandler struct {
	txnService     portssvc.TransactionSvcFacade
	maxUploadBytes int64
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, maxUploadBytes int64) *transactionHandler {
	return &transactionHandler{txnService: ts, maxUploadBytes: maxUploadBytes}
}

func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade, maxUploadBytes int64) {
	registerValidators()
	h := newTransactionHandler(txnService, maxUploadBytes)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listMyTransactions)
		txns.GET("/:id", h.getTransaction)
		txns.PUT("/:id/payment-proof", h.attachPaymentProof)
		txns.POST("/:id/payment-proof/upload", h.uploadPaymentProof)
	}
}

// createTransaction godoc
// @Summary Open a transfer
// @Description Quotes the amount against the latest configuration and freezes the rate on a new transaction in status verifying.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Pair and amount"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Quoted rate no longer current"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.txnService.CreateTransaction(c.Request.Context(), ownerID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, toTransactionResponse(txn))
}

// listMyTransactions godoc
// @Summary List own transactions
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listMyTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, next, err := h.txnService.ListMyTransactions(c.Request.Context(), ownerID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	resp := dto.ListTransactionsResponse{Transactions: make([]dto.TransactionResponse, len(txns)), NextToken: next}
	for i := range txns {
		resp.Transactions[i] = toTransactionResponse(&txns[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Visible to its owner and to operators.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.txnService.GetTransaction(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// attachPaymentProof godoc
// @Summary Attach a payment proof reference
// @Description Records where the customer's payment receipt is stored. Only while the transaction is verifying.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param proof body dto.AttachPaymentProofRequest true "Proof reference"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/payment-proof [put]
func (h *transactionHandler) attachPaymentProof(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AttachPaymentProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.txnService.AttachPaymentProof(c.Request.Context(), actorID, c.Param("id"), req.PaymentProofURL)
	if err != nil {
		respondWithError(c, logger, err, "Failed to attach payment proof")
		return
	}
	c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// uploadPaymentProof godoc
// @Summary Upload a payment proof
// @Description Stores the uploaded receipt and attaches it to the transaction.
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Transaction ID"
// @Param file formData file true "Receipt image or PDF"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Uploads are not configured"
// @Security BearerAuth
// @Router /transactions/{id}/payment-proof/upload [post]
func (h *transactionHandler) uploadPaymentProof(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	artifact, closeFn, ok := readArtifact(c, logger, h.maxUploadBytes)
	if !ok {
		return
	}
	defer closeFn()

	txn, err := h.txnService.UploadPaymentProof(c.Request.Context(), actorID, c.Param("id"), artifact)
	if err != nil {
		respondWithError(c, logger, err, "Failed to upload payment proof")
		return
	}
	c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// readArtifact pulls the proof file out of a multipart request. On failure the
// response has already been written.
func readArtifact(c *gin.Context, logger *slog.Logger, maxBytes int64) (portssvc.Artifact, func(), bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	file, header, err := c.Request.FormFile(artifactFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Proof upload too large", slog.Int64("limit", tooLarge.Limit))
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File is too large"})
			return portssvc.Artifact{}, nil, false
		}
		logger.Warn("Missing proof file in upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A file is required in the '" + artifactFormField + "' field"})
		return portssvc.Artifact{}, nil, false
	}

	return portssvc.Artifact{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, func() { _ = file.Close() }, true
}

func toTransactionResponse(txn *domain.Transaction) dto.TransactionResponse {
	formatted := rates.FormatRate(txn.ExchangeRate, txn.CurrencySent.Region(), txn.CurrencyReceived.Region())
	return dto.ToTransactionResponse(txn, formatted)
}

func toTransactionOverviewResponse(o *domain.TransactionOverview) dto.TransactionResponse {
	resp := toTransactionResponse(&o.Transaction)
	resp.OwnerEmail = o.OwnerEmail
	resp.OwnerFullName = o.OwnerFullName
	return resp
}
