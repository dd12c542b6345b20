package domain

// Status describes the lifecycle state shared by bookings, top-ups and payments.
type Status string

// Lifecycle states. Confirmed and cancelled are terminal for top-ups
// and payments; a confirmed booking may still transition to cancelled.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)
