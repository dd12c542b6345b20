// Package bookingrepo manages repository layer of bookings.
//
// The booking, the client's credit balance and the slot availability
// flag always move together inside a single database transaction.
package bookingrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/internal/lessonrepo"
	"github.com/go-hanka/fit-studio/internal/userrepo"
	"github.com/go-hanka/fit-studio/pkg/dbpkg"
	"github.com/go-hanka/fit-studio/pkg/errorspkg"
)

// RepoPGS facilitates booking repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns booking RepoPGS bound to an existing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns booking RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO bookings (
    client,
    time_slot_id,
    status
) VALUES (
    $1, $2, $3
) RETURNING id, client, time_slot_id, status, created_at
`

// Create inserts a booking with the given status and returns it.
// No balance or slot side effects happen here.
func (r *RepoPGS) Create(ctx context.Context, client string, timeSlotID int32, status domain.Status) (domain.Booking, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, client, timeSlotID, status)

	var b domain.Booking

	err := row.Scan(&b.ID, &b.Client, &b.TimeSlotID, &b.Status, &b.CreatedAt)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "bookings_client_fkey":
				return b, domain.ErrUserNotFound
			case "bookings_time_slot_id_fkey":
				return b, domain.ErrSlotNotFound
			}
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const getQuery = `
SELECT
	b.id,
	b.client,
	b.time_slot_id,
	b.status,
	b.created_at,
	ts.start_time,
	l.title,
	l.price
FROM bookings b
JOIN time_slots ts ON ts.id = b.time_slot_id
JOIN lessons l ON l.id = ts.lesson_id
WHERE b.id = $1
`

// Get returns the booking with the given id joined with its slot and lesson.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Booking, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var b domain.Booking

	err := row.Scan(
		&b.ID,
		&b.Client,
		&b.TimeSlotID,
		&b.Status,
		&b.CreatedAt,
		&b.StartTime,
		&b.LessonTitle,
		&b.Price,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return b, domain.ErrBookingNotFound
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const listQuery = `
SELECT
	b.id,
	b.client,
	b.time_slot_id,
	b.status,
	b.created_at,
	ts.start_time,
	l.title,
	l.price
FROM bookings b
JOIN time_slots ts ON ts.id = b.time_slot_id
JOIN lessons l ON l.id = ts.lesson_id
WHERE b.client = $1
ORDER BY b.created_at DESC
`

// List returns the client's bookings, newest first.
func (r *RepoPGS) List(ctx context.Context, client string) ([]domain.Booking, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, client)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Booking{}

	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID,
			&b.Client,
			&b.TimeSlotID,
			&b.Status,
			&b.CreatedAt,
			&b.StartTime,
			&b.LessonTitle,
			&b.Price,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, b)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

// BookTx books a slot for a client.
//
// It locks the slot, debits the client by the lesson price and inserts
// a confirmed booking within a single database transaction. A taken
// slot surfaces as ErrSlotUnavailable, an over-debit as
// ErrInsufficientCredits, and the whole transaction rolls back.
func (r *RepoPGS) BookTx(ctx context.Context, client string, timeSlotID int32) (domain.BookingTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.BookingTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	lessonRepo := lessonrepo.NewRepoPGS(tx)
	userRepo := userrepo.NewRepoPGS(tx)
	bookingRepo := NewTxRepoPGS(tx)

	result.Slot, err = lessonRepo.LockSlot(ctx, timeSlotID)
	if err != nil {
		return result, err
	}

	lesson, err := lessonRepo.GetLesson(ctx, result.Slot.LessonID)
	if err != nil {
		return result, err
	}

	result.Client, err = userRepo.AddCredits(ctx, "-"+lesson.Price, client)
	if err != nil {
		return result, err
	}

	result.Booking, err = bookingRepo.Create(ctx, client, timeSlotID, domain.StatusConfirmed)
	if err != nil {
		return result, err
	}

	result.Booking.StartTime = result.Slot.StartTime
	result.Booking.LessonTitle = lesson.Title
	result.Booking.Price = lesson.Price

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

const confirmQuery = `
UPDATE bookings
SET status = 'confirmed'
WHERE id = $1 AND status = 'pending'
RETURNING id, client, time_slot_id, status, created_at
`

// ConfirmTx flips a pending booking to confirmed and applies the
// debit and slot lock, all in one transaction.
//
// The status guard in the UPDATE makes the side effects fire exactly
// once: re-confirming an already confirmed booking matches zero rows
// and nothing is debited.
func (r *RepoPGS) ConfirmTx(ctx context.Context, id int64) (domain.BookingTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.BookingTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	row := tx.QueryRowContext(ctx, confirmQuery, id)

	var b domain.Booking

	err = row.Scan(&b.ID, &b.Client, &b.TimeSlotID, &b.Status, &b.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return result, domain.ErrBookingNotPending
		}

		l.Error().Err(err).Send()

		return result, errorspkg.ErrInternal
	}

	lessonRepo := lessonrepo.NewRepoPGS(tx)
	userRepo := userrepo.NewRepoPGS(tx)

	result.Slot, err = lessonRepo.LockSlot(ctx, b.TimeSlotID)
	if err != nil {
		return result, err
	}

	lesson, err := lessonRepo.GetLesson(ctx, result.Slot.LessonID)
	if err != nil {
		return result, err
	}

	result.Client, err = userRepo.AddCredits(ctx, "-"+lesson.Price, b.Client)
	if err != nil {
		return result, err
	}

	b.StartTime = result.Slot.StartTime
	b.LessonTitle = lesson.Title
	b.Price = lesson.Price
	result.Booking = b

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

const cancelConfirmedQuery = `
UPDATE bookings
SET status = 'cancelled'
WHERE id = $1 AND status = 'confirmed'
RETURNING id, client, time_slot_id, status, created_at
`

const cancelPendingQuery = `
UPDATE bookings
SET status = 'cancelled'
WHERE id = $1 AND status = 'pending'
RETURNING id, client, time_slot_id, status, created_at
`

// CancelTx cancels a booking in one transaction.
//
// Cancelling a confirmed booking refunds the lesson price and unlocks
// the slot; cancelling a pending booking only flips the status since
// nothing was debited. An already cancelled booking surfaces as
// ErrBookingNotFound.
func (r *RepoPGS) CancelTx(ctx context.Context, id int64) (domain.BookingTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.BookingTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	var (
		b            domain.Booking
		wasConfirmed = true
	)

	err = tx.QueryRowContext(ctx, cancelConfirmedQuery, id).
		Scan(&b.ID, &b.Client, &b.TimeSlotID, &b.Status, &b.CreatedAt)

	if err == sql.ErrNoRows {
		wasConfirmed = false
		err = tx.QueryRowContext(ctx, cancelPendingQuery, id).
			Scan(&b.ID, &b.Client, &b.TimeSlotID, &b.Status, &b.CreatedAt)
	}

	if err != nil {
		if err == sql.ErrNoRows {
			return result, domain.ErrBookingNotFound
		}

		l.Error().Err(err).Send()

		return result, errorspkg.ErrInternal
	}

	lessonRepo := lessonrepo.NewRepoPGS(tx)
	userRepo := userrepo.NewRepoPGS(tx)

	result.Slot, err = lessonRepo.GetSlot(ctx, b.TimeSlotID)
	if err != nil {
		return result, err
	}

	lesson, err := lessonRepo.GetLesson(ctx, result.Slot.LessonID)
	if err != nil {
		return result, err
	}

	if wasConfirmed {
		result.Client, err = userRepo.AddCredits(ctx, lesson.Price, b.Client)
		if err != nil {
			return result, err
		}

		result.Slot, err = lessonRepo.SetAvailability(ctx, b.TimeSlotID, true)
		if err != nil {
			return result, err
		}
	}

	b.StartTime = result.Slot.StartTime
	b.LessonTitle = lesson.Title
	b.Price = lesson.Price
	result.Booking = b

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}
