// Package topuprepo manages repository layer of credit top-ups.
package topuprepo

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

// RepoPGS facilitates top-up repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns top-up RepoPGS bound to an existing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns top-up RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const topUpColumns = `id, username, amount, variable_symbol, message, status, qr_payload, credited_at, created_at`

const createQuery = `
INSERT INTO topups (
    username,
    amount,
    variable_symbol,
    message,
    qr_payload
) VALUES (
    $1, $2, $3, $4, $5
) RETURNING ` + topUpColumns

// Create creates a pending top-up and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTopUpParams) (domain.TopUp, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Username,
		arg.Amount,
		arg.VariableSymbol,
		arg.Message,
		arg.QRPayload,
	)

	var t domain.TopUp

	err := scanTopUp(row, &t)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "topups_username_fkey":
				return t, domain.ErrUserNotFound
			case "topups_amount_check":
				return t, domain.ErrInvalidAmount
			}
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getQuery = `
SELECT ` + topUpColumns + `
FROM topups
WHERE id = $1
`

// Get returns the top-up with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.TopUp, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var t domain.TopUp

	err := scanTopUp(row, &t)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return t, domain.ErrTopUpNotFound
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listByUserQuery = `
SELECT ` + topUpColumns + `
FROM topups
WHERE username = $1
ORDER BY created_at DESC
`

// ListByUser returns the user's top-ups, newest first.
func (r *RepoPGS) ListByUser(ctx context.Context, username string) ([]domain.TopUp, error) {
	return r.list(ctx, listByUserQuery, username)
}

const listPendingQuery = `
SELECT ` + topUpColumns + `
FROM topups
WHERE status = 'pending'
ORDER BY created_at
`

// ListPending returns all pending top-ups, oldest first.
func (r *RepoPGS) ListPending(ctx context.Context) ([]domain.TopUp, error) {
	return r.list(ctx, listPendingQuery)
}

const confirmQuery = `
UPDATE topups
SET status = 'confirmed', credited_at = now()
WHERE id = $1 AND status = 'pending' AND credited_at IS NULL
RETURNING ` + topUpColumns

// ConfirmTx confirms a pending top-up and credits the user in one transaction.
//
// The credited_at guard in the WHERE clause makes the credit
// idempotent: a repeated confirmation matches zero rows and surfaces
// as ErrTopUpNotPending without touching the balance.
func (r *RepoPGS) ConfirmTx(ctx context.Context, id int64) (domain.TopUpTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TopUpTxResult

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

	err = scanTopUp(row, &result.TopUp)
	if err != nil {
		if err == sql.ErrNoRows {
			return result, domain.ErrTopUpNotPending
		}

		l.Error().Err(err).Send()

		return result, errorspkg.ErrInternal
	}

	userRepo := userrepo.NewRepoPGS(tx)

	result.User, err = userRepo.AddCredits(ctx, result.TopUp.Amount, result.TopUp.Username)
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
UPDATE topups
SET status = 'cancelled'
WHERE id = $1 AND status = 'pending'
RETURNING ` + topUpColumns

// Reject cancels a pending top-up. No balance effect.
func (r *RepoPGS) Reject(ctx context.Context, id int64) (domain.TopUp, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, rejectQuery, id)

	var t domain.TopUp

	err := scanTopUp(row, &t)
	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrTopUpNotPending
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...interface{}) ([]domain.TopUp, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.TopUp{}

	for rows.Next() {
		var t domain.TopUp
		if err := rows.Scan(
			&t.ID,
			&t.Username,
			&t.Amount,
			&t.VariableSymbol,
			&t.Message,
			&t.Status,
			&t.QRPayload,
			&t.CreditedAt,
			&t.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

func scanTopUp(row *sql.Row, t *domain.TopUp) error {
	return row.Scan(
		&t.ID,
		&t.Username,
		&t.Amount,
		&t.VariableSymbol,
		&t.Message,
		&t.Status,
		&t.QRPayload,
		&t.CreditedAt,
		&t.CreatedAt,
	)
}
