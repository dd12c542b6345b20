// Package bookingdelivery manages delivery layer of bookings.
package bookingdelivery

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/internal/middleware"
	"github.com/go-hanka/fit-studio/pkg/errorspkg"
	"github.com/go-hanka/fit-studio/pkg/tokenpkg"
	"github.com/go-hanka/fit-studio/pkg/web"
)

// Service provides service layer interface needed by booking delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package bookingdelivery
type Service interface {
	Book(ctx context.Context, client string, timeSlotID int32, hold bool) (domain.BookingTxResult, error)
	Confirm(ctx context.Context, client string, id int64) (domain.BookingTxResult, error)
	Cancel(ctx context.Context, client string, id int64) (domain.BookingTxResult, error)
	Get(ctx context.Context, client string, id int64) (domain.Booking, error)
	List(ctx context.Context, client string) ([]domain.Booking, error)
}

// Handler facilitates booking delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns booking handler.
func NewHandler(bs Service) *Handler {
	return &Handler{
		service: bs,
	}
}

type bookingData struct {
	Booking domain.Booking `json:"booking"`
	Credits string         `json:"credits"`
}

type createBookingRequest struct {
	TimeSlotID int32 `json:"time_slot_id" binding:"required"`
	Pending    bool  `json:"pending"`
}

// Create handles http request to book a time slot for the
// authenticated client. With pending set the slot is only held and
// must be confirmed before it is paid for.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createBookingRequest
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

	result, err := h.service.Book(ctx, authPayload.Username, req.TimeSlotID, req.Pending)
	if err != nil {
		handleBookingErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: bookingData{result.Booking, result.Client.Credits}})
}

// Confirm handles http request to settle the client's pending booking.
func (h *Handler) Confirm(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, err := parseID(gctx.Param("id"))
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.Confirm(ctx, authPayload.Username, id)
	if err != nil {
		handleBookingErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: bookingData{result.Booking, result.Client.Credits}})
}

// Cancel handles http request to cancel the client's booking before the
// cancellation deadline.
func (h *Handler) Cancel(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, err := parseID(gctx.Param("id"))
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.Cancel(ctx, authPayload.Username, id)
	if err != nil {
		handleBookingErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: bookingData{result.Booking, result.Client.Credits}})
}

type singleBookingData struct {
	Booking domain.Booking `json:"booking"`
}

// Get handles http request to get one of the client's bookings.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, err := parseID(gctx.Param("id"))
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	booking, err := h.service.Get(ctx, authPayload.Username, id)
	if err != nil {
		handleBookingErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: singleBookingData{booking}})
}

type bookingsData struct {
	Bookings []domain.Booking `json:"bookings"`
}

// List handles http request to list the client's bookings.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	bookings, err := h.service.List(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: bookingsData{bookings}})
}

func handleBookingErr(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrSlotUnavailable,
		domain.ErrInsufficientCredits,
		domain.ErrBookingNotPending,
		domain.ErrCancellationWindowExpired:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	case domain.ErrSlotNotFound,
		domain.ErrLessonNotFound,
		domain.ErrBookingNotFound,
		domain.ErrUserNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
		return
	}

	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	return id, nil
}
