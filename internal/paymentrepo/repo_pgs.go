// Package paymentrepo manages repository layer of direct client-to-instructor payments.
package paymentrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/internal/userrepo"
	"github.com/go-hanka/fit-studio/pkg/dbpkg"
	"github.com/go-hanka/fit-studio/pkg/errorspkg"
)

// RepoPGS facilitates payment repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns payment RepoPGS bound to an existing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns payment RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const paymentColumns = `id, client, instructor, amount, status, qr_payload, credited_at, created_at`

const createQuery = `
INSERT INTO payments (
    client,
    instructor,
    amount,
    qr_payload
) VALUES (
    $1, $2, $3, $4
) RETURNING ` + paymentColumns

// Create creates a pending payment and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreatePaymentParams) (domain.Payment, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Client,
		arg.Instructor,
		arg.Amount,
		arg.QRPayload,
	)

	var p domain.Payment

	err := scanPayment(row, &p)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "payments_client_fkey":
				return p, domain.ErrUserNotFound
			case "payments_instructor_fkey":
				return p, domain.ErrInstructorNotFound
			case "payments_amount_check":
				return p, domain.ErrInvalidAmount
			}
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const getQuery = `
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1
`

// Get returns the payment with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Payment, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var p domain.Payment

	err := scanPayment(row, &p)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return p, domain.ErrPaymentNotFound
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const listByClientQuery = `
SELECT ` + paymentColumns + `
FROM payments
WHERE client = $1
ORDER BY created_at DESC
`

// ListByClient returns the payments made by the client, newest first.
func (r *RepoPGS) ListByClient(ctx context.Context, client string) ([]domain.Payment, error) {
	return r.list(ctx, listByClientQuery, client)
}

const listByInstructorQuery = `
SELECT ` + paymentColumns + `
FROM payments
WHERE instructor = $1
ORDER BY created_at DESC
`

// ListByInstructor returns the payments addressed to the instructor, newest first.
func (r *RepoPGS) ListByInstructor(ctx context.Context, instructor string) ([]domain.Payment, error) {
	return r.list(ctx, listByInstructorQuery, instructor)
}

const confirmQuery = `
UPDATE payments
SET status = 'confirmed', credited_at = now()
WHERE id = $1 AND status = 'pending' AND credited_at IS NULL
RETURNING ` + paymentColumns

// ConfirmTx confirms a pending payment and credits the instructor in
// one transaction, guarded by credited_at exactly like top-ups.
func (r *RepoPGS) ConfirmTx(ctx context.Context, id int64) (domain.PaymentTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.PaymentTxResult

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

	err = scanPayment(row, &result.Payment)
	if err != nil {
		if err == sql.ErrNoRows {
			return result, domain.ErrPaymentNotPending
		}

		l.Error().Err(err).Send()

		return result, errorspkg.ErrInternal
	}

	userRepo := userrepo.NewRepoPGS(tx)

	result.Instructor, err = userRepo.AddCredits(ctx, result.Payment.Amount, result.Payment.Instructor)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

const rejectQuery = `
UPDATE payments
SET status = 'cancelled'
WHERE id = $1 AND status = 'pending'
RETURNING ` + paymentColumns

// Reject cancels a pending payment. No balance effect.
func (r *RepoPGS) Reject(ctx context.Context, id int64) (domain.Payment, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, rejectQuery, id)

	var p domain.Payment

	err := scanPayment(row, &p)
	if err != nil {
		if err == sql.ErrNoRows {
			return p, domain.ErrPaymentNotPending
		}

		l.Error().Err(err).Send()

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...interface{}) ([]domain.Payment, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Payment{}

	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(
			&p.ID,
			&p.Client,
			&p.Instructor,
			&p.Amount,
			&p.Status,
			&p.QRPayload,
			&p.CreditedAt,
			&p.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

func scanPayment(row *sql.Row, p *domain.Payment) error {
	return row.Scan(
		&p.ID,
		&p.Client,
		&p.Instructor,
		&p.Amount,
		&p.Status,
		&p.QRPayload,
		&p.CreditedAt,
		&p.CreatedAt,
	)
}
