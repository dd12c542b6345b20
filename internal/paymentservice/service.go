// Package paymentservice manages business logic layer of direct payments.
package paymentservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/internal/userdelivery"
	"github.com/go-hanka/fit-studio/pkg/qrpaypkg"
)

// Repo provides data access layer interface needed by payment service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package paymentservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreatePaymentParams) (domain.Payment, error)
	Get(ctx context.Context, id int64) (domain.Payment, error)
	ListByClient(ctx context.Context, client string) ([]domain.Payment, error)
	ListByInstructor(ctx context.Context, instructor string) ([]domain.Payment, error)
	ConfirmTx(ctx context.Context, id int64) (domain.PaymentTxResult, error)
	Reject(ctx context.Context, id int64) (domain.Payment, error)
}

// Service facilitates payment service layer logic.
type Service struct {
	repo        Repo
	userService userdelivery.Service
}

// New returns payment service struct to manage payment business logic.
func New(pr Repo, us userdelivery.Service) *Service {
	return &Service{
		repo:        pr,
		userService: us,
	}
}

// Create opens a pending payment from the client to the instructor and
// attaches the QR payload the instructor scans to verify the handover.
func (s *Service) Create(ctx context.Context, client, instructor, amount string) (domain.Payment, error) {
	l := zerolog.Ctx(ctx)

	value, err := domain.PositiveAmount(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return domain.Payment{}, err
	}

	recipient, err := s.userService.Get(ctx, instructor)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.Payment{}, domain.ErrInstructorNotFound
		}

		return domain.Payment{}, err
	}

	if recipient.Role != domain.RoleInstructor {
		return domain.Payment{}, domain.ErrInstructorNotFound
	}

	arg := domain.CreatePaymentParams{
		Client:     client,
		Instructor: instructor,
		Amount:     qrpaypkg.FormatAmount(value),
		QRPayload:  qrpaypkg.PaymentNote(value, client, instructor),
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the payment with the given id if the caller is its client
// or its instructor.
func (s *Service) Get(ctx context.Context, username string, id int64) (domain.Payment, error) {
	payment, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}

	if payment.Client != username && payment.Instructor != username {
		return domain.Payment{}, domain.ErrPaymentNotFound
	}

	return payment, nil
}

// ListByClient returns payments the client initiated, newest first.
func (s *Service) ListByClient(ctx context.Context, client string) ([]domain.Payment, error) {
	return s.repo.ListByClient(ctx, client)
}

// ListByInstructor returns payments addressed to the instructor, newest first.
func (s *Service) ListByInstructor(ctx context.Context, instructor string) ([]domain.Payment, error) {
	return s.repo.ListByInstructor(ctx, instructor)
}

// Confirm settles a pending payment addressed to the instructor,
// crediting the instructor's balance exactly once.
func (s *Service) Confirm(ctx context.Context, instructor string, id int64) (domain.PaymentTxResult, error) {
	l := zerolog.Ctx(ctx)

	payment, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.PaymentTxResult{}, err
	}

	if payment.Instructor != instructor {
		return domain.PaymentTxResult{}, domain.ErrPaymentRecipientMismatch
	}

	result, err := s.repo.ConfirmTx(ctx, id)
	if err != nil {
		return domain.PaymentTxResult{}, err
	}

	l.Info().Int64("payment_id", id).Str("client", result.Payment.Client).Str("instructor", instructor).Str("amount", result.Payment.Amount).Msg("payment credited")

	return result, nil
}

// Reject cancels a pending payment addressed to the instructor.
func (s *Service) Reject(ctx context.Context, instructor string, id int64) (domain.Payment, error) {
	payment, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}

	if payment.Instructor != instructor {
		return domain.Payment{}, domain.ErrPaymentRecipientMismatch
	}

	return s.repo.Reject(ctx, id)
}
