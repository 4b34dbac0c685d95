package handler

import (
	"crypto/subtle"
	"net/http"

	domainerr "github.com/votequest/coin-service/internal/domain/error"
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/api/dto"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// AuditHandler handles balance audit and integrity scan HTTP requests
type AuditHandler struct {
	audit        portuse.AuditUseCase
	scanSecret   string
	scanPageSize int
	logger       coreport.Logger
}

// NewAuditHandler creates a new audit handler instance
func NewAuditHandler(audit portuse.AuditUseCase, scanSecret string, scanPageSize int, logger coreport.Logger) *AuditHandler {
	return &AuditHandler{
		audit:        audit,
		scanSecret:   scanSecret,
		scanPageSize: scanPageSize,
		logger:       logger,
	}
}

// AuditUser handles GET /user/:userId/audit
func (h *AuditHandler) AuditUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	result, err := h.audit.AuditUser(c.Request.Context(), userID)
	if err != nil {
		if domainerr.IsUserNotFoundError(err) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "User not found",
			})
			return
		}
		h.logger.Error("Audit failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to audit user",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Scan handles POST /internal/scan. The caller must present the shared scan
// secret as the "secret" query parameter.
func (h *AuditHandler) Scan(c *gin.Context) {
	secret := c.Query("secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.scanSecret)) != 1 {
		h.logger.Warn("Scan rejected: bad secret", map[string]any{
			"ip": c.ClientIP(),
		})
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorizedScan),
			Message: "Invalid scan secret",
		})
		return
	}

	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = h.scanPageSize
	}

	report, err := h.audit.Scan(c.Request.Context(), portuse.ScanOptions{
		AutoCorrect: req.AutoCorrect,
		PageSize:    pageSize,
	})
	if err != nil {
		h.logger.Error("Integrity scan failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Integrity scan failed",
		})
		return
	}

	metrics.ScansRun.Inc()
	metrics.UsersFlagged.Add(float64(report.TotalFlagged))
	metrics.UsersCorrected.Add(float64(report.CorrectedCount))

	c.JSON(http.StatusOK, report)
}
