package domain

import (
	"errors"
	"time"
)

var (
	// ErrBookingNotFound indicates that the booking is not found.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrBookingNotPending indicates a confirm attempt on a booking that is not pending.
	ErrBookingNotPending = errors.New("booking is not pending")
	// ErrCancellationWindowExpired indicates a cancel attempt after the deadline.
	ErrCancellationWindowExpired = errors.New("booking can no longer be cancelled")
)

// CancellationNotice is how long before the slot start a confirmed
// booking can still be cancelled for a refund.
const CancellationNotice = 2 * time.Hour

// Booking links a client to a time slot.
//
// StartTime, LessonTitle and Price are denormalized from the slot's
// lesson by the repository for deadline checks and display.
type Booking struct {
	ID          int64     `json:"id"`
	Client      string    `json:"client"`
	TimeSlotID  int32     `json:"time_slot_id"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	StartTime   time.Time `json:"start_time"`
	LessonTitle string    `json:"lesson_title"`
	Price       string    `json:"price"`
}

// CancellationDeadline returns the instant after which the booking is locked in.
func (b Booking) CancellationDeadline() time.Time {
	return b.StartTime.Add(-CancellationNotice)
}

// CanCancel reports whether the booking may still be cancelled at the given time.
func (b Booking) CanCancel(now time.Time) bool {
	if b.Status == StatusCancelled {
		return false
	}

	return !now.After(b.CancellationDeadline())
}

// BookingTxResult is the result of a booking transaction.
type BookingTxResult struct {
	Booking Booking  `json:"booking"`
	Client  User     `json:"client"`
	Slot    TimeSlot `json:"slot"`
}
