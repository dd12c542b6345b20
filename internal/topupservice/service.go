// Package topupservice manages business logic layer of credit top-ups.
package topupservice

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/internal/userdelivery"
	"github.com/go-hanka/fit-studio/pkg/configpkg"
	"github.com/go-hanka/fit-studio/pkg/qrpaypkg"
)

// maxMessageLen matches the topups.message column width.
const maxMessageLen = 70

// Repo provides data access layer interface needed by top-up service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package topupservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTopUpParams) (domain.TopUp, error)
	Get(ctx context.Context, id int64) (domain.TopUp, error)
	ListByUser(ctx context.Context, username string) ([]domain.TopUp, error)
	ListPending(ctx context.Context) ([]domain.TopUp, error)
	ConfirmTx(ctx context.Context, id int64) (domain.TopUpTxResult, error)
	Reject(ctx context.Context, id int64) (domain.TopUp, error)
}

// Service facilitates top-up service layer logic.
type Service struct {
	repo        Repo
	userService userdelivery.Service
	config      configpkg.Config
}

// New returns top-up service struct to manage top-up business logic.
func New(tr Repo, us userdelivery.Service, config configpkg.Config) *Service {
	return &Service{
		repo:        tr,
		userService: us,
		config:      config,
	}
}

// Create opens a pending top-up for the user and attaches the QR Platba
// payload for the bank transfer.
//
// The variable symbol defaults to the user's numeric id and the message
// to the user's full name, so incoming transfers can be matched by hand.
func (s *Service) Create(ctx context.Context, username, amount string) (domain.TopUp, error) {
	l := zerolog.Ctx(ctx)

	value, err := domain.PositiveAmount(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return domain.TopUp{}, err
	}

	user, err := s.userService.Get(ctx, username)
	if err != nil {
		return domain.TopUp{}, err
	}

	vs := strconv.FormatInt(int64(user.ID), 10)

	// The message column holds 70 characters; longer full names would
	// otherwise fail the insert.
	msg := qrpaypkg.TruncateRunes(user.FullName, maxMessageLen)

	arg := domain.CreateTopUpParams{
		Username:       username,
		Amount:         qrpaypkg.FormatAmount(value),
		VariableSymbol: vs,
		Message:        msg,
		QRPayload:      qrpaypkg.SPD(s.config.PaymentBankIBAN, value, vs, msg),
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the user's top-up with the given id.
func (s *Service) Get(ctx context.Context, username string, id int64) (domain.TopUp, error) {
	topUp, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.TopUp{}, err
	}

	if topUp.Username != username {
		return domain.TopUp{}, domain.ErrTopUpNotFound
	}

	return topUp, nil
}

// List returns the user's top-ups, newest first.
func (s *Service) List(ctx context.Context, username string) ([]domain.TopUp, error) {
	return s.repo.ListByUser(ctx, username)
}

// ListPending returns all pending top-ups awaiting manual approval.
func (s *Service) ListPending(ctx context.Context) ([]domain.TopUp, error) {
	return s.repo.ListPending(ctx)
}

// Approve confirms a pending top-up after the bank transfer arrived,
// crediting the user's balance exactly once.
func (s *Service) Approve(ctx context.Context, id int64) (domain.TopUpTxResult, error) {
	l := zerolog.Ctx(ctx)

	result, err := s.repo.ConfirmTx(ctx, id)
	if err != nil {
		return domain.TopUpTxResult{}, err
	}

	l.Info().Int64("topup_id", id).Str("username", result.TopUp.Username).Str("amount", result.TopUp.Amount).Msg("top-up credited")

	return result, nil
}

// Reject cancels a pending top-up without crediting anything.
func (s *Service) Reject(ctx context.Context, id int64) (domain.TopUp, error) {
	return s.repo.Reject(ctx, id)
}
