package domain

import (
	"errors"
	"time"
)

var (
	// ErrLessonNotFound indicates that the lesson is not found.
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrLessonOwnerMismatch indicates that the lesson belongs to another instructor.
	ErrLessonOwnerMismatch = errors.New("lesson belongs to another instructor")
	// ErrSlotNotFound indicates that the time slot is not found.
	ErrSlotNotFound = errors.New("time slot not found")
	// ErrSlotUnavailable indicates that the time slot is no longer available.
	ErrSlotUnavailable = errors.New("time slot is no longer available")
	// ErrPastTimeSlot indicates an attempt to schedule a time slot in the past.
	ErrPastTimeSlot = errors.New("time slot cannot start in the past")
)

// Lesson describes a bookable lesson type offered by an instructor.
type Lesson struct {
	ID          int32     `json:"id"`
	Instructor  string    `json:"instructor"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	DurationMin int32     `json:"duration_min"`
	Capacity    int32     `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateLessonParams is the input data to create a lesson.
type CreateLessonParams struct {
	Instructor  string `json:"instructor"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	DurationMin int32  `json:"duration_min"`
	Capacity    int32  `json:"capacity"`
}

// UpdateLessonParams is the input data to update a lesson's catalog fields.
type UpdateLessonParams struct {
	ID          int32  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	DurationMin int32  `json:"duration_min"`
	Capacity    int32  `json:"capacity"`
}

// TimeSlot is a single bookable instance of a lesson at a specific start time.
type TimeSlot struct {
	ID          int32     `json:"id"`
	LessonID    int32     `json:"lesson_id"`
	StartTime   time.Time `json:"start_time"`
	IsAvailable bool      `json:"is_available"`
}

// SlotEvent is a calendar feed item, a time slot joined with its lesson.
type SlotEvent struct {
	SlotID         int32     `json:"slot_id"`
	LessonID       int32     `json:"lesson_id"`
	Title          string    `json:"title"`
	Instructor     string    `json:"instructor"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Price          string    `json:"price"`
	Capacity       int32     `json:"capacity"`
	AvailableSpots int32     `json:"available_spots"`
	IsAvailable    bool      `json:"is_available"`
}
