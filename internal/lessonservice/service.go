// Package lessonservice manages business logic layer of lessons and time slots.
package lessonservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-hanka/fit-studio/internal/domain"
)

// Repo provides data access layer interface needed by lesson service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package lessonservice
type Repo interface {
	CreateLesson(ctx context.Context, arg domain.CreateLessonParams) (domain.Lesson, error)
	GetLesson(ctx context.Context, id int32) (domain.Lesson, error)
	ListLessons(ctx context.Context, instructor string) ([]domain.Lesson, error)
	UpdateLesson(ctx context.Context, arg domain.UpdateLessonParams) (domain.Lesson, error)
	DeleteLesson(ctx context.Context, id int32) error
	CreateSlot(ctx context.Context, lessonID int32, startTime time.Time) (domain.TimeSlot, error)
	GetSlot(ctx context.Context, id int32) (domain.TimeSlot, error)
	DeleteSlot(ctx context.Context, id int32) error
	SetAvailability(ctx context.Context, id int32, available bool) (domain.TimeSlot, error)
	ListUpcoming(ctx context.Context, from, to time.Time) ([]domain.SlotEvent, error)
}

// Service facilitates lesson service layer logic.
type Service struct {
	repo Repo
}

// New returns lesson service struct to manage lesson business logic.
func New(lr Repo) *Service {
	return &Service{
		repo: lr,
	}
}

// CreateLesson creates a lesson owned by the instructor.
func (s *Service) CreateLesson(ctx context.Context, arg domain.CreateLessonParams) (domain.Lesson, error) {
	l := zerolog.Ctx(ctx)

	if _, err := domain.PositiveAmount(arg.Price); err != nil {
		l.Info().Err(err).Send()
		return domain.Lesson{}, err
	}

	return s.repo.CreateLesson(ctx, arg)
}

// GetLesson returns the lesson with the given id.
func (s *Service) GetLesson(ctx context.Context, id int32) (domain.Lesson, error) {
	return s.repo.GetLesson(ctx, id)
}

// ListLessons returns the instructor's lessons.
func (s *Service) ListLessons(ctx context.Context, instructor string) ([]domain.Lesson, error) {
	return s.repo.ListLessons(ctx, instructor)
}

// UpdateLesson updates the instructor's own lesson.
func (s *Service) UpdateLesson(ctx context.Context, instructor string, arg domain.UpdateLessonParams) (domain.Lesson, error) {
	l := zerolog.Ctx(ctx)

	if _, err := domain.PositiveAmount(arg.Price); err != nil {
		l.Info().Err(err).Send()
		return domain.Lesson{}, err
	}

	if err := s.checkOwner(ctx, instructor, arg.ID); err != nil {
		return domain.Lesson{}, err
	}

	return s.repo.UpdateLesson(ctx, arg)
}

// DeleteLesson removes the instructor's own lesson together with its slots.
func (s *Service) DeleteLesson(ctx context.Context, instructor string, id int32) error {
	if err := s.checkOwner(ctx, instructor, id); err != nil {
		return err
	}

	return s.repo.DeleteLesson(ctx, id)
}

// CreateSlot schedules a bookable time slot for the instructor's own lesson.
// Slots cannot start in the past.
func (s *Service) CreateSlot(ctx context.Context, instructor string, lessonID int32, startTime time.Time) (domain.TimeSlot, error) {
	l := zerolog.Ctx(ctx)

	if startTime.Before(time.Now()) {
		l.Info().Time("start_time", startTime).Msg("rejected past time slot")
		return domain.TimeSlot{}, domain.ErrPastTimeSlot
	}

	if err := s.checkOwner(ctx, instructor, lessonID); err != nil {
		return domain.TimeSlot{}, err
	}

	return s.repo.CreateSlot(ctx, lessonID, startTime)
}

// GetSlot returns the time slot with the given id.
func (s *Service) GetSlot(ctx context.Context, id int32) (domain.TimeSlot, error) {
	return s.repo.GetSlot(ctx, id)
}

// DeleteSlot removes a slot of the instructor's own lesson.
func (s *Service) DeleteSlot(ctx context.Context, instructor string, id int32) error {
	slot, err := s.repo.GetSlot(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkOwner(ctx, instructor, slot.LessonID); err != nil {
		return err
	}

	return s.repo.DeleteSlot(ctx, id)
}

// ListUpcoming returns the calendar feed of slots starting within [from, to).
func (s *Service) ListUpcoming(ctx context.Context, from, to time.Time) ([]domain.SlotEvent, error) {
	return s.repo.ListUpcoming(ctx, from, to)
}

func (s *Service) checkOwner(ctx context.Context, instructor string, lessonID int32) error {
	lesson, err := s.repo.GetLesson(ctx, lessonID)
	if err != nil {
		return err
	}

	if lesson.Instructor != instructor {
		return domain.ErrLessonOwnerMismatch
	}

	return nil
}
