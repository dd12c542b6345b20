// Package bookingservice manages business logic layer of bookings.
package bookingservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/internal/lessondelivery"
	"github.com/go-hanka/fit-studio/internal/userdelivery"
	"github.com/go-hanka/fit-studio/pkg/errorspkg"
)

// Repo provides data access layer interface needed by booking service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package bookingservice
type Repo interface {
	Create(ctx context.Context, client string, timeSlotID int32, status domain.Status) (domain.Booking, error)
	Get(ctx context.Context, id int64) (domain.Booking, error)
	List(ctx context.Context, client string) ([]domain.Booking, error)
	BookTx(ctx context.Context, client string, timeSlotID int32) (domain.BookingTxResult, error)
	ConfirmTx(ctx context.Context, id int64) (domain.BookingTxResult, error)
	CancelTx(ctx context.Context, id int64) (domain.BookingTxResult, error)
}

// Service facilitates booking service layer logic.
type Service struct {
	repo          Repo
	lessonService lessondelivery.Service
	userService   userdelivery.Service
}

// New returns booking service struct to manage booking business logic.
func New(br Repo, ls lessondelivery.Service, us userdelivery.Service) *Service {
	return &Service{
		repo:          br,
		lessonService: ls,
		userService:   us,
	}
}

// Book reserves the time slot for the client, debiting the lesson price
// and locking the slot in one transaction.
//
// Availability and balance are checked up front for friendly errors;
// the same conditions are enforced again inside the transaction, so a
// concurrent booking of the last spot still fails cleanly.
//
// With hold set the booking is only created pending: nothing is debited
// and the slot stays open until the client confirms.
func (s *Service) Book(ctx context.Context, client string, timeSlotID int32, hold bool) (domain.BookingTxResult, error) {
	l := zerolog.Ctx(ctx)

	slot, lesson, user, err := s.precheck(ctx, client, timeSlotID)
	if err != nil {
		l.Info().Err(err).Str("client", client).Int32("time_slot_id", timeSlotID).Msg("booking rejected")
		return domain.BookingTxResult{}, err
	}

	if !hold {
		return s.repo.BookTx(ctx, client, timeSlotID)
	}

	booking, err := s.repo.Create(ctx, client, timeSlotID, domain.StatusPending)
	if err != nil {
		return domain.BookingTxResult{}, err
	}

	booking.StartTime = slot.StartTime
	booking.LessonTitle = lesson.Title
	booking.Price = lesson.Price

	return domain.BookingTxResult{
		Booking: booking,
		Client:  domain.User{Username: user.Username, Credits: user.Credits},
		Slot:    slot,
	}, nil
}

// Confirm settles a pending booking, debiting the client and locking
// the slot exactly once.
func (s *Service) Confirm(ctx context.Context, client string, id int64) (domain.BookingTxResult, error) {
	booking, err := s.getOwned(ctx, client, id)
	if err != nil {
		return domain.BookingTxResult{}, err
	}

	if _, _, _, err := s.precheck(ctx, client, booking.TimeSlotID); err != nil {
		return domain.BookingTxResult{}, err
	}

	return s.repo.ConfirmTx(ctx, id)
}

// Cancel reverses the client's booking before the cancellation
// deadline, crediting the price back and unlocking the slot.
func (s *Service) Cancel(ctx context.Context, client string, id int64) (domain.BookingTxResult, error) {
	l := zerolog.Ctx(ctx)

	booking, err := s.getOwned(ctx, client, id)
	if err != nil {
		return domain.BookingTxResult{}, err
	}

	if !booking.CanCancel(time.Now()) {
		if booking.Status == domain.StatusCancelled {
			return domain.BookingTxResult{}, domain.ErrBookingNotFound
		}

		l.Info().Int64("booking_id", id).Time("deadline", booking.CancellationDeadline()).Msg("cancellation window expired")

		return domain.BookingTxResult{}, domain.ErrCancellationWindowExpired
	}

	return s.repo.CancelTx(ctx, id)
}

// Get returns the client's booking with the given id.
func (s *Service) Get(ctx context.Context, client string, id int64) (domain.Booking, error) {
	return s.getOwned(ctx, client, id)
}

// List returns the client's bookings, newest first.
func (s *Service) List(ctx context.Context, client string) ([]domain.Booking, error) {
	return s.repo.List(ctx, client)
}

func (s *Service) getOwned(ctx context.Context, client string, id int64) (domain.Booking, error) {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}

	// Bookings are scoped to their owner.
	if booking.Client != client {
		return domain.Booking{}, domain.ErrBookingNotFound
	}

	return booking, nil
}

func (s *Service) precheck(ctx context.Context, client string, timeSlotID int32) (domain.TimeSlot, domain.Lesson, domain.UserWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var (
		slot   domain.TimeSlot
		lesson domain.Lesson
		user   domain.UserWithoutPassword
	)

	slot, err := s.lessonService.GetSlot(ctx, timeSlotID)
	if err != nil {
		return slot, lesson, user, err
	}

	if !slot.IsAvailable {
		return slot, lesson, user, domain.ErrSlotUnavailable
	}

	lesson, err = s.lessonService.GetLesson(ctx, slot.LessonID)
	if err != nil {
		return slot, lesson, user, err
	}

	user, err = s.userService.Get(ctx, client)
	if err != nil {
		return slot, lesson, user, err
	}

	credits, err := decimal.NewFromString(user.Credits)
	if err != nil {
		l.Error().Err(err).Str("credits", user.Credits).Send()
		return slot, lesson, user, errorspkg.ErrInternal
	}

	price, err := decimal.NewFromString(lesson.Price)
	if err != nil {
		l.Error().Err(err).Str("price", lesson.Price).Send()
		return slot, lesson, user, errorspkg.ErrInternal
	}

	if credits.LessThan(price) {
		return slot, lesson, user, domain.ErrInsufficientCredits
	}

	return slot, lesson, user, nil
}
