package ledger

import (
	"testing"

	"github.com/votequest/coin-service/internal/domain/entity"
	errs "github.com/votequest/coin-service/internal/domain/error"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
	coremocks "github.com/votequest/coin-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func relaxedLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func validRequest() portuse.ApplyRequest {
	return portuse.ApplyRequest{
		UserID:      42,
		Amount:      25,
		Type:        entity.TypeEarn,
		Reason:      entity.ReasonDebateWon,
		ReferenceID: "debate-991",
	}
}

func TestValidateApplyRequest(t *testing.T) {
	t.Run("Valid request passes", func(t *testing.T) {
		v := NewValidator(relaxedLogger(t))

		assert.NoError(t, v.ValidateApplyRequest(validRequest()))
	})

	t.Run("Rejections", func(t *testing.T) {
		tests := []struct {
			name        string
			mutate      func(*portuse.ApplyRequest)
			expectedErr error
		}{
			{"zero user ID", func(r *portuse.ApplyRequest) { r.UserID = 0 }, errs.ErrInvalidUserID},
			{"zero amount", func(r *portuse.ApplyRequest) { r.Amount = 0 }, errs.ErrInvalidAmount},
			{"unknown type", func(r *portuse.ApplyRequest) { r.Type = "TRANSFER" }, errs.ErrInvalidTransactionType},
			{"sign mismatch", func(r *portuse.ApplyRequest) { r.Amount = -25 }, errs.ErrAmountTypeMismatch},
			{"empty reason", func(r *portuse.ApplyRequest) { r.Reason = "" }, errs.ErrInvalidReason},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				v := NewValidator(relaxedLogger(t))
				req := validRequest()
				tc.mutate(&req)

				assert.ErrorIs(t, v.ValidateApplyRequest(req), tc.expectedErr)
			})
		}
	})

	t.Run("Non-standard reason accepted with warning", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Warn("Non-standard reason code accepted", mock.Anything).Once()
		v := NewValidator(logger)

		req := validRequest()
		req.Reason = "seasonal_event_2024"

		assert.NoError(t, v.ValidateApplyRequest(req))
	})

	t.Run("Admin adjustment allows both signs", func(t *testing.T) {
		v := NewValidator(relaxedLogger(t))

		req := validRequest()
		req.Type = entity.TypeAdminAdjustment
		req.Reason = entity.ReasonReconciliation

		req.Amount = 450
		assert.NoError(t, v.ValidateApplyRequest(req))

		req.Amount = -450
		assert.NoError(t, v.ValidateApplyRequest(req))
	})
}
