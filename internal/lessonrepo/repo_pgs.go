// Package lessonrepo manages repository layer of lessons and their time slots.
package lessonrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/pkg/dbpkg"
	"github.com/go-hanka/fit-studio/pkg/errorspkg"
)

// RepoPGS facilitates lesson repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns lesson RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createLessonQuery = `
INSERT INTO lessons (
    instructor,
    title,
    description,
    price,
    duration_min,
    capacity
) VALUES (
    $1, $2, $3, $4, $5, $6
) RETURNING id, instructor, title, description, price, duration_min, capacity, created_at
`

// CreateLesson creates the lesson and then returns it.
func (r *RepoPGS) CreateLesson(ctx context.Context, arg domain.CreateLessonParams) (domain.Lesson, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createLessonQuery,
		arg.Instructor,
		arg.Title,
		arg.Description,
		arg.Price,
		arg.DurationMin,
		arg.Capacity,
	)

	var lesson domain.Lesson

	err := scanLesson(row, &lesson)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "lessons_instructor_fkey":
				return lesson, domain.ErrUserNotFound
			case "lessons_price_check":
				return lesson, domain.ErrInvalidAmount
			}
		}

		return lesson, errorspkg.ErrInternal
	}

	return lesson, nil
}

const getLessonQuery = `
SELECT
	id, instructor, title, description, price, duration_min, capacity, created_at
FROM lessons
WHERE id = $1
`

// GetLesson returns the lesson with the given id.
func (r *RepoPGS) GetLesson(ctx context.Context, id int32) (domain.Lesson, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getLessonQuery, id)

	var lesson domain.Lesson

	err := scanLesson(row, &lesson)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return lesson, domain.ErrLessonNotFound
		}

		return lesson, errorspkg.ErrInternal
	}

	return lesson, nil
}

const listLessonsQuery = `
SELECT
	id, instructor, title, description, price, duration_min, capacity, created_at
FROM lessons
WHERE instructor = $1
ORDER BY id
`

// ListLessons returns all lessons of the given instructor.
func (r *RepoPGS) ListLessons(ctx context.Context, instructor string) ([]domain.Lesson, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listLessonsQuery, instructor)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Lesson{}

	for rows.Next() {
		var lesson domain.Lesson
		if err := rows.Scan(
			&lesson.ID,
			&lesson.Instructor,
			&lesson.Title,
			&lesson.Description,
			&lesson.Price,
			&lesson.DurationMin,
			&lesson.Capacity,
			&lesson.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, lesson)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateLessonQuery = `
UPDATE lessons
SET title = $2, description = $3, price = $4, duration_min = $5, capacity = $6
WHERE id = $1
RETURNING id, instructor, title, description, price, duration_min, capacity, created_at
`

// UpdateLesson updates the lesson's catalog fields and returns it.
func (r *RepoPGS) UpdateLesson(ctx context.Context, arg domain.UpdateLessonParams) (domain.Lesson, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateLessonQuery,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.Price,
		arg.DurationMin,
		arg.Capacity,
	)

	var lesson domain.Lesson

	err := scanLesson(row, &lesson)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return lesson, domain.ErrLessonNotFound
		}

		return lesson, errorspkg.ErrInternal
	}

	return lesson, nil
}

const deleteLessonQuery = `
DELETE FROM lessons
WHERE id = $1
`

// DeleteLesson removes the lesson with the given id.
func (r *RepoPGS) DeleteLesson(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, deleteLessonQuery, id)
	return err
}

const createSlotQuery = `
INSERT INTO time_slots (
    lesson_id,
    start_time
) VALUES (
    $1, $2
) RETURNING id, lesson_id, start_time, is_available
`

// CreateSlot creates an available time slot for the lesson.
func (r *RepoPGS) CreateSlot(ctx context.Context, lessonID int32, startTime time.Time) (domain.TimeSlot, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createSlotQuery, lessonID, startTime)

	var s domain.TimeSlot

	err := row.Scan(&s.ID, &s.LessonID, &s.StartTime, &s.IsAvailable)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "time_slots_lesson_id_fkey" {
				return s, domain.ErrLessonNotFound
			}
		}

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const getSlotQuery = `
SELECT
	id, lesson_id, start_time, is_available
FROM time_slots
WHERE id = $1
`

// GetSlot returns the time slot with the given id.
func (r *RepoPGS) GetSlot(ctx context.Context, id int32) (domain.TimeSlot, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getSlotQuery, id)

	var s domain.TimeSlot

	err := row.Scan(&s.ID, &s.LessonID, &s.StartTime, &s.IsAvailable)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return s, domain.ErrSlotNotFound
		}

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const deleteSlotQuery = `
DELETE FROM time_slots
WHERE id = $1
`

// DeleteSlot removes the time slot with the given id.
func (r *RepoPGS) DeleteSlot(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, deleteSlotQuery, id)
	return err
}

const setAvailabilityQuery = `
UPDATE time_slots
SET is_available = $2
WHERE id = $1
RETURNING id, lesson_id, start_time, is_available
`

// SetAvailability flips the slot's availability flag and returns the slot.
func (r *RepoPGS) SetAvailability(ctx context.Context, id int32, available bool) (domain.TimeSlot, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setAvailabilityQuery, id, available)

	var s domain.TimeSlot

	err := row.Scan(&s.ID, &s.LessonID, &s.StartTime, &s.IsAvailable)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return s, domain.ErrSlotNotFound
		}

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const lockSlotQuery = `
UPDATE time_slots
SET is_available = false
WHERE id = $1 AND is_available = true
RETURNING id, lesson_id, start_time, is_available
`

// LockSlot marks an available slot unavailable.
//
// The WHERE clause makes the lock race safe: a slot taken by a
// concurrent booking matches zero rows and the caller gets
// ErrSlotUnavailable instead of a silent double booking.
func (r *RepoPGS) LockSlot(ctx context.Context, id int32) (domain.TimeSlot, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, lockSlotQuery, id)

	var s domain.TimeSlot

	err := row.Scan(&s.ID, &s.LessonID, &s.StartTime, &s.IsAvailable)
	if err != nil {
		if err == sql.ErrNoRows {
			return s, domain.ErrSlotUnavailable
		}

		l.Error().Err(err).Send()

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const listUpcomingQuery = `
SELECT
	ts.id,
	ts.lesson_id,
	l.title,
	u.full_name,
	ts.start_time,
	l.duration_min,
	l.price,
	l.capacity,
	l.capacity - COUNT(b.id) FILTER (WHERE b.status = 'confirmed') AS available_spots,
	ts.is_available
FROM time_slots ts
JOIN lessons l ON l.id = ts.lesson_id
JOIN users u ON u.username = l.instructor
LEFT JOIN bookings b ON b.time_slot_id = ts.id
WHERE ts.start_time >= $1 AND ts.start_time < $2
GROUP BY ts.id, ts.lesson_id, l.title, u.full_name, ts.start_time, l.duration_min, l.price, l.capacity, ts.is_available
ORDER BY ts.start_time
`

// ListUpcoming returns the calendar feed of slots starting within [from, to).
func (r *RepoPGS) ListUpcoming(ctx context.Context, from, to time.Time) ([]domain.SlotEvent, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listUpcomingQuery, from, to)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.SlotEvent{}

	for rows.Next() {
		var (
			e           domain.SlotEvent
			durationMin int32
		)

		if err := rows.Scan(
			&e.SlotID,
			&e.LessonID,
			&e.Title,
			&e.Instructor,
			&e.StartTime,
			&durationMin,
			&e.Price,
			&e.Capacity,
			&e.AvailableSpots,
			&e.IsAvailable,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		e.EndTime = e.StartTime.Add(time.Duration(durationMin) * time.Minute)
		e.IsAvailable = e.IsAvailable && e.AvailableSpots > 0

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

func scanLesson(row *sql.Row, lesson *domain.Lesson) error {
	return row.Scan(
		&lesson.ID,
		&lesson.Instructor,
		&lesson.Title,
		&lesson.Description,
		&lesson.Price,
		&lesson.DurationMin,
		&lesson.Capacity,
		&lesson.CreatedAt,
	)
}
