package domain

import (
	"errors"
	"time"
)

var (
	// ErrPaymentNotFound indicates that the payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentNotPending indicates a transition attempt on a settled payment.
	ErrPaymentNotPending = errors.New("payment is not pending")
	// ErrPaymentRecipientMismatch indicates that the payment is addressed to another instructor.
	ErrPaymentRecipientMismatch = errors.New("payment is addressed to another instructor")
)

// Payment is a direct client-to-instructor credit transfer awaiting
// the instructor's confirmation. Confirming credits the instructor;
// CreditedAt guards the credit the same way it does for top-ups.
type Payment struct {
	ID         int64      `json:"id"`
	Client     string     `json:"client"`
	Instructor string     `json:"instructor"`
	Amount     string     `json:"amount"`
	Status     Status     `json:"status"`
	QRPayload  string     `json:"qr_payload"`
	CreditedAt *time.Time `json:"credited_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CreatePaymentParams is the input data to create a payment.
type CreatePaymentParams struct {
	Client     string `json:"client"`
	Instructor string `json:"instructor"`
	Amount     string `json:"amount"`
	QRPayload  string `json:"qr_payload"`
}

// PaymentTxResult is the result of the payment confirmation transaction.
type PaymentTxResult struct {
	Payment    Payment `json:"payment"`
	Instructor User    `json:"instructor"`
}
