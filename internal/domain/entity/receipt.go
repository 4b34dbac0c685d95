package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// receiptVersion tags the canonical serialization. The serialization is part
// of the public verification contract: any change requires a new version tag
// so previously issued receipts remain verifiable.
const receiptVersion = "vq1"

// ReceiptInput is the canonical tuple a receipt hash covers. Metadata is
// deliberately excluded: it is descriptive only and must not affect
// tamper-evidence.
type ReceiptInput struct {
	UserID      uint64
	Amount      int64
	Type        TransactionType
	Reason      string
	ReferenceID string
	Timestamp   time.Time
}

// ComputeReceiptHash returns the hex-encoded SHA-256 digest of the canonical
// serialization of the input. It is deterministic: identical inputs always
// produce the identical digest, and any third party can recompute it from a
// stored transaction's fields. It never fails for well-formed input.
//
// Canonical serialization (fixed field order, pipe-delimited):
//
//	vq1|<userID>|<amount>|<type>|<reason>|<referenceID>|<RFC3339Nano UTC>
func ComputeReceiptHash(in ReceiptInput) string {
	payload := receiptVersion + "|" +
		strconv.FormatUint(in.UserID, 10) + "|" +
		strconv.FormatInt(in.Amount, 10) + "|" +
		string(in.Type) + "|" +
		in.Reason + "|" +
		in.ReferenceID + "|" +
		in.Timestamp.UTC().Format(time.RFC3339Nano)

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// ReceiptVerification is the outcome of recomputing a stored transaction's
// receipt hash against the stored value.
type ReceiptVerification struct {
	Valid        bool
	StoredHash   string
	ExpectedHash string
}

// VerifyReceipt recomputes the receipt hash from the transaction's fields and
// compares it with the stored hash. This is the tamper-evidence contract: a
// mismatch proves the row was altered after creation.
func VerifyReceipt(t *Transaction) ReceiptVerification {
	expected := ComputeReceiptHash(t.ReceiptInput())
	return ReceiptVerification{
		Valid:        expected == t.ReceiptHash,
		StoredHash:   t.ReceiptHash,
		ExpectedHash: expected,
	}
}
