package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseReceiptInput() ReceiptInput {
	return ReceiptInput{
		UserID:      42,
		Amount:      25,
		Type:        TypeEarn,
		Reason:      ReasonDebateWon,
		ReferenceID: "debate-991",
		Timestamp:   time.Date(2024, 3, 15, 10, 30, 0, 123456789, time.UTC),
	}
}

func TestComputeReceiptHash(t *testing.T) {
	t.Run("Deterministic for identical input", func(t *testing.T) {
		in := baseReceiptInput()

		first := ComputeReceiptHash(in)
		second := ComputeReceiptHash(in)

		assert.Equal(t, first, second)
		assert.Len(t, first, 64) // hex-encoded SHA-256
	})

	t.Run("Timestamp is normalized to UTC", func(t *testing.T) {
		in := baseReceiptInput()
		utcHash := ComputeReceiptHash(in)

		zone := time.FixedZone("UTC+3", 3*60*60)
		in.Timestamp = in.Timestamp.In(zone)
		zonedHash := ComputeReceiptHash(in)

		assert.Equal(t, utcHash, zonedHash)
	})

	t.Run("Every covered field changes the hash", func(t *testing.T) {
		base := ComputeReceiptHash(baseReceiptInput())

		mutations := map[string]func(*ReceiptInput){
			"userID":      func(in *ReceiptInput) { in.UserID = 43 },
			"amount":      func(in *ReceiptInput) { in.Amount = 26 },
			"type":        func(in *ReceiptInput) { in.Type = TypeGift },
			"reason":      func(in *ReceiptInput) { in.Reason = ReasonDailyLogin },
			"referenceID": func(in *ReceiptInput) { in.ReferenceID = "debate-992" },
			"timestamp":   func(in *ReceiptInput) { in.Timestamp = in.Timestamp.Add(time.Nanosecond) },
		}

		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				in := baseReceiptInput()
				mutate(&in)
				assert.NotEqual(t, base, ComputeReceiptHash(in))
			})
		}
	})

	t.Run("Sign of amount is covered", func(t *testing.T) {
		in := baseReceiptInput()
		positive := ComputeReceiptHash(in)

		in.Amount = -in.Amount
		negative := ComputeReceiptHash(in)

		assert.NotEqual(t, positive, negative)
	})
}

func TestVerifyReceipt(t *testing.T) {
	t.Run("Untampered transaction verifies", func(t *testing.T) {
		txn := &Transaction{
			UserID:      7,
			Amount:      -30,
			Type:        TypeSpend,
			Reason:      ReasonQuadraticVote,
			ReferenceID: "room-55:vote-3",
			CreatedAt:   time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		}
		txn.ReceiptHash = ComputeReceiptHash(txn.ReceiptInput())

		v := VerifyReceipt(txn)

		assert.True(t, v.Valid)
		assert.Equal(t, txn.ReceiptHash, v.StoredHash)
		assert.Equal(t, txn.ReceiptHash, v.ExpectedHash)
	})

	t.Run("Tampered amount fails verification", func(t *testing.T) {
		txn := &Transaction{
			UserID:    7,
			Amount:    -30,
			Type:      TypeSpend,
			Reason:    ReasonQuadraticVote,
			CreatedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		}
		txn.ReceiptHash = ComputeReceiptHash(txn.ReceiptInput())

		txn.Amount = -3 // someone shaved the debit after the fact

		v := VerifyReceipt(txn)

		require.False(t, v.Valid)
		assert.Equal(t, txn.ReceiptHash, v.StoredHash)
		assert.NotEqual(t, v.StoredHash, v.ExpectedHash)
	})

	t.Run("Metadata does not affect verification", func(t *testing.T) {
		txn := &Transaction{
			UserID:    7,
			Amount:    10,
			Type:      TypeEarn,
			Reason:    ReasonDailyLogin,
			CreatedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		}
		txn.ReceiptHash = ComputeReceiptHash(txn.ReceiptInput())

		txn.Metadata = map[string]string{"streak": "12"}

		assert.True(t, VerifyReceipt(txn).Valid)
	})
}
