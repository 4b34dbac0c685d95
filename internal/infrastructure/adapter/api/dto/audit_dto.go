package dto

// ScanRequest is the body of POST /internal/scan. The shared secret travels
// as a query parameter so cron triggers can stay body-less if they prefer.
type ScanRequest struct {
	AutoCorrect bool `json:"autoCorrect"`
	PageSize    int  `json:"pageSize"`
}

// CreateUserRequest is the body of POST /user. InitialCoins is a pointer so
// an omitted field falls back to the configured default while an explicit 0
// stays 0.
type CreateUserRequest struct {
	UserID       uint64 `json:"userId" binding:"required"`
	InitialCoins *int64 `json:"initialCoins"`
}

// GiftMedalRequest is the body of POST /user/:userId/medal/:medalName/gift
type GiftMedalRequest struct {
	RecipientID uint64 `json:"recipientId" binding:"required"`
}
