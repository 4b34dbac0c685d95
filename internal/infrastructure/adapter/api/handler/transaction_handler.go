package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/votequest/coin-service/internal/domain/entity"
	domainerr "github.com/votequest/coin-service/internal/domain/error"
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/api/dto"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles ledger-related HTTP requests
type TransactionHandler struct {
	ledger portuse.LedgerUseCase
	logger coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledger portuse.LedgerUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledger: ledger,
		logger: logger,
	}
}

// ApplyTransaction handles POST /user/:userId/transaction
func (h *TransactionHandler) ApplyTransaction(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.ledger.ApplyTransaction(c.Request.Context(), portuse.ApplyRequest{
		UserID:      userID,
		Amount:      req.Amount,
		Type:        entity.TransactionType(req.Type),
		Reason:      req.Reason,
		ReferenceID: req.ReferenceID,
		Metadata:    req.Metadata,
	})
	if err != nil {
		h.respondApplyError(c, userID, err)
		return
	}

	if result.Duplicate {
		metrics.DuplicatesSuppressed.Inc()
	} else {
		metrics.TransactionsApplied.WithLabelValues(string(result.Transaction.Type)).Inc()
	}

	c.JSON(http.StatusOK, dto.ApplyTransactionResponse{
		Transaction: dto.ToTransactionBody(result.Transaction),
		NewBalance:  result.NewBalance,
		Duplicate:   result.Duplicate,
	})
}

// VerifyReceipt handles GET /transaction/:transactionId/verify
func (h *TransactionHandler) VerifyReceipt(c *gin.Context) {
	idParam := c.Param("transactionId")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid transaction ID format",
		})
		return
	}

	txn, err := h.ledger.GetTransaction(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerr.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Transaction not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to load transaction",
		})
		return
	}

	verification := entity.VerifyReceipt(txn)
	c.JSON(http.StatusOK, dto.VerifyReceiptResponse{
		TransactionID: txn.ID,
		Valid:         verification.Valid,
		StoredHash:    verification.StoredHash,
		ExpectedHash:  verification.ExpectedHash,
	})
}

// respondApplyError maps engine errors onto HTTP responses
func (h *TransactionHandler) respondApplyError(c *gin.Context, userID uint64, err error) {
	status := http.StatusInternalServerError
	cause := "internal"

	switch {
	case domainerr.IsUserNotFoundError(err):
		status = http.StatusNotFound
		cause = "user_not_found"
	case domainerr.IsInsufficientBalanceError(err):
		status = http.StatusBadRequest
		cause = "insufficient_balance"
	case domainerr.IsValidationError(err):
		status = http.StatusBadRequest
		cause = "validation"
	case domainerr.IsUserLockedError(err):
		status = http.StatusConflict
		cause = "user_locked"
	}

	metrics.TransactionsRejected.WithLabelValues(cause).Inc()
	h.logger.Error("Transaction apply failed", map[string]any{
		"user_id": userID,
		"status":  status,
		"error":   err.Error(),
	})

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}

// parseUserID extracts and validates the :userId path parameter
func parseUserID(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return 0, false
	}
	return userID, true
}
