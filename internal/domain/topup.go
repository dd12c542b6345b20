package domain

import (
	"errors"
	"time"
)

var (
	// ErrTopUpNotFound indicates that the top-up is not found.
	ErrTopUpNotFound = errors.New("top-up not found")
	// ErrTopUpNotPending indicates a transition attempt on a settled top-up.
	ErrTopUpNotPending = errors.New("top-up is not pending")
)

// TopUp is a client request to add credits, settled by a manual bank
// transfer and approved by an instructor.
//
// CreditedAt is the idempotency marker: it is set in the same
// transaction that applies the credit, so a repeated approval can
// never credit twice.
type TopUp struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Amount         string     `json:"amount"`
	VariableSymbol string     `json:"variable_symbol"`
	Message        string     `json:"message,omitempty"`
	Status         Status     `json:"status"`
	QRPayload      string     `json:"qr_payload"`
	CreditedAt     *time.Time `json:"credited_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// CreateTopUpParams is the input data to create a top-up.
type CreateTopUpParams struct {
	Username       string `json:"username"`
	Amount         string `json:"amount"`
	VariableSymbol string `json:"variable_symbol"`
	Message        string `json:"message"`
	QRPayload      string `json:"qr_payload"`
}

// TopUpTxResult is the result of the top-up approval transaction.
type TopUpTxResult struct {
	TopUp TopUp `json:"topup"`
	User  User  `json:"user"`
}
