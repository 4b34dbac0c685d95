package ledger

import (
	"fmt"

	"github.com/votequest/coin-service/internal/domain/entity"
	errs "github.com/votequest/coin-service/internal/domain/error"
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
)

// Validator provides validation for apply requests
type Validator struct {
	logger coreport.Logger
}

// NewValidator creates a new Validator
func NewValidator(logger coreport.Logger) *Validator {
	return &Validator{logger: logger}
}

// ValidateApplyRequest validates all fields of an apply request. Unknown
// reason codes pass validation; the taxonomy is open and grows with the
// product, so they are logged as non-standard instead of rejected.
func (v *Validator) ValidateApplyRequest(req portuse.ApplyRequest) error {
	if req.UserID == 0 {
		return errs.ErrInvalidUserID
	}

	if req.Amount == 0 {
		return errs.ErrInvalidAmount
	}

	if !entity.IsValidTransactionType(string(req.Type)) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, req.Type)
	}

	if err := entity.ValidateAmountSign(req.Amount, req.Type); err != nil {
		return err
	}

	if req.Reason == "" {
		return errs.ErrInvalidReason
	}

	if !entity.IsStandardReason(req.Reason) {
		v.logger.Warn("Non-standard reason code accepted", map[string]any{
			"user_id": req.UserID,
			"reason":  req.Reason,
			"type":    string(req.Type),
		})
	}

	return nil
}
