// Package lessondelivery manages delivery layer of lessons and time slots.
package lessondelivery

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/internal/middleware"
	"github.com/go-hanka/fit-studio/pkg/errorspkg"
	"github.com/go-hanka/fit-studio/pkg/tokenpkg"
	"github.com/go-hanka/fit-studio/pkg/web"
)

// Service provides service layer interface needed by lesson delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package lessondelivery
type Service interface {
	CreateLesson(ctx context.Context, arg domain.CreateLessonParams) (domain.Lesson, error)
	GetLesson(ctx context.Context, id int32) (domain.Lesson, error)
	ListLessons(ctx context.Context, instructor string) ([]domain.Lesson, error)
	UpdateLesson(ctx context.Context, instructor string, arg domain.UpdateLessonParams) (domain.Lesson, error)
	DeleteLesson(ctx context.Context, instructor string, id int32) error
	CreateSlot(ctx context.Context, instructor string, lessonID int32, startTime time.Time) (domain.TimeSlot, error)
	GetSlot(ctx context.Context, id int32) (domain.TimeSlot, error)
	DeleteSlot(ctx context.Context, instructor string, id int32) error
	ListUpcoming(ctx context.Context, from, to time.Time) ([]domain.SlotEvent, error)
}

// Handler facilitates lesson delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns lesson handler.
func NewHandler(ls Service) *Handler {
	return &Handler{
		service: ls,
	}
}

type lessonData struct {
	Lesson domain.Lesson `json:"lesson"`
}

type createLessonRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	DurationMin int32  `json:"duration_min" binding:"required,gt=0"`
	Capacity    int32  `json:"capacity" binding:"required,gt=0"`
}

// CreateLesson handles http request to create a lesson owned by the
// authenticated instructor.
func (h *Handler) CreateLesson(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createLessonRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	arg := domain.CreateLessonParams{
		Instructor:  authPayload.Username,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Capacity:    req.Capacity,
	}

	lesson, err := h.service.CreateLesson(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrUserNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: lessonData{lesson}})
}

type lessonsData struct {
	Lessons []domain.Lesson `json:"lessons"`
}

// ListLessons handles http request to list the instructor's lessons.
func (h *Handler) ListLessons(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	lessons, err := h.service.ListLessons(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: lessonsData{lessons}})
}

type updateLessonRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	DurationMin int32  `json:"duration_min" binding:"required,gt=0"`
	Capacity    int32  `json:"capacity" binding:"required,gt=0"`
}

// UpdateLesson handles http request to update the instructor's own lesson.
func (h *Handler) UpdateLesson(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, err := parseID(gctx.Param("id"))
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var req updateLessonRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	arg := domain.UpdateLessonParams{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Capacity:    req.Capacity,
	}

	lesson, err := h.service.UpdateLesson(ctx, authPayload.Username, arg)
	if err != nil {
		switch err {
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrLessonNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrLessonOwnerMismatch:
			gctx.JSON(http.StatusForbidden, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: lessonData{lesson}})
}

// DeleteLesson handles http request to delete the instructor's own lesson.
func (h *Handler) DeleteLesson(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, err := parseID(gctx.Param("id"))
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	if err := h.service.DeleteLesson(ctx, authPayload.Username, id); err != nil {
		switch err {
		case domain.ErrLessonNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrLessonOwnerMismatch:
			gctx.JSON(http.StatusForbidden, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}

type slotData struct {
	TimeSlot domain.TimeSlot `json:"time_slot"`
}

type createSlotRequest struct {
	LessonID  int32     `json:"lesson_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
}

// CreateSlot handles http request to schedule a bookable time slot.
func (h *Handler) CreateSlot(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createSlotRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	slot, err := h.service.CreateSlot(ctx, authPayload.Username, req.LessonID, req.StartTime)
	if err != nil {
		switch err {
		case domain.ErrPastTimeSlot:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrLessonNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrLessonOwnerMismatch:
			gctx.JSON(http.StatusForbidden, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: slotData{slot}})
}

// DeleteSlot handles http request to remove a slot of the instructor's
// own lesson.
func (h *Handler) DeleteSlot(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, err := parseID(gctx.Param("id"))
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	if err := h.service.DeleteSlot(ctx, authPayload.Username, id); err != nil {
		switch err {
		case domain.ErrSlotNotFound, domain.ErrLessonNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrLessonOwnerMismatch:
			gctx.JSON(http.StatusForbidden, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}

type slotEventsData struct {
	Slots []domain.SlotEvent `json:"slots"`
}

type listUpcomingRequest struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

// ListUpcoming handles http request for the public calendar feed of
// upcoming slots. Defaults to the two weeks from now.
func (h *Handler) ListUpcoming(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listUpcomingRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	if req.From.IsZero() {
		req.From = time.Now()
	}

	if req.To.IsZero() {
		req.To = req.From.Add(14 * 24 * time.Hour)
	}

	slots, err := h.service.ListUpcoming(ctx, req.From, req.To)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: slotEventsData{slots}})
}

func parseID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	return int32(id), nil
}
