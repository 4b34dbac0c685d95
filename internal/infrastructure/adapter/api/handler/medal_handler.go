package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/votequest/coin-service/internal/domain/error"
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// MedalHandler handles medal store HTTP requests
type MedalHandler struct {
	medals portuse.MedalUseCase
	logger coreport.Logger
}

// NewMedalHandler creates a new medal handler instance
func NewMedalHandler(medals portuse.MedalUseCase, logger coreport.Logger) *MedalHandler {
	return &MedalHandler{
		medals: medals,
		logger: logger,
	}
}

// PurchaseMedal handles POST /user/:userId/medal/:medalName/purchase
func (h *MedalHandler) PurchaseMedal(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	medalName := c.Param("medalName")

	result, err := h.medals.PurchaseMedal(c.Request.Context(), userID, medalName)
	if err != nil {
		h.respondMedalError(c, userID, medalName, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GiftMedal handles POST /user/:userId/medal/:medalName/gift
func (h *MedalHandler) GiftMedal(c *gin.Context) {
	senderID, ok := parseUserID(c)
	if !ok {
		return
	}
	medalName := c.Param("medalName")

	var req dto.GiftMedalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}
	if req.RecipientID == senderID {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Cannot gift a medal to yourself",
		})
		return
	}

	result, err := h.medals.GiftMedal(c.Request.Context(), senderID, req.RecipientID, medalName)
	if err != nil {
		h.respondMedalError(c, senderID, medalName, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *MedalHandler) respondMedalError(c *gin.Context, userID uint64, medalName string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domainerr.ErrMedalNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainerr.ErrMedalNotOwned):
		status = http.StatusConflict
	case domainerr.IsUserNotFoundError(err):
		status = http.StatusNotFound
	case domainerr.IsInsufficientBalanceError(err):
		status = http.StatusBadRequest
	case domainerr.IsValidationError(err):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("Medal operation failed", map[string]any{
			"user_id": userID,
			"medal":   medalName,
			"error":   err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}
