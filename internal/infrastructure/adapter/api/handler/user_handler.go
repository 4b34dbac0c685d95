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

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users        portuse.UserUseCase
	initialCoins int64
	logger       coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(users portuse.UserUseCase, initialCoins int64, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		users:        users,
		initialCoins: initialCoins,
		logger:       logger,
	}
}

// GetBalance handles GET /user/:userId/balance
func (h *UserHandler) GetBalance(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	balance, err := h.users.GetUserBalance(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerr.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "User not found",
			})
			return
		}
		h.logger.Error("Failed to get balance", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to get balance",
		})
		return
	}

	c.JSON(http.StatusOK, balance)
}

// CreateUser handles POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	coins := h.initialCoins
	if req.InitialCoins != nil {
		coins = *req.InitialCoins
	}

	user, err := h.users.CreateUser(c.Request.Context(), req.UserID, coins)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domainerr.ErrDuplicateUser) {
			status = http.StatusConflict
		} else if domainerr.IsValidationError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, portuse.UserBalanceResponse{
		UserID:  user.ID,
		Balance: user.Coins(),
	})
}
