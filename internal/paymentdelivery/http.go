// Package paymentdelivery manages delivery layer of direct payments.
package paymentdelivery

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
	"github.com/go-hanka/fit-studio/pkg/qrpaypkg"
	"github.com/go-hanka/fit-studio/pkg/tokenpkg"
	"github.com/go-hanka/fit-studio/pkg/web"
)

// Service provides service layer interface needed by payment delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package paymentdelivery
type Service interface {
	Create(ctx context.Context, client, instructor, amount string) (domain.Payment, error)
	Get(ctx context.Context, username string, id int64) (domain.Payment, error)
	ListByClient(ctx context.Context, client string) ([]domain.Payment, error)
	ListByInstructor(ctx context.Context, instructor string) ([]domain.Payment, error)
	Confirm(ctx context.Context, instructor string, id int64) (domain.PaymentTxResult, error)
	Reject(ctx context.Context, instructor string, id int64) (domain.Payment, error)
}

// Handler facilitates payment delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns payment handler.
func NewHandler(ps Service) *Handler {
	return &Handler{
		service: ps,
	}
}

type paymentData struct {
	Payment domain.Payment `json:"payment"`
}

type createPaymentRequest struct {
	Instructor string `json:"instructor" binding:"required,alphanum"`
	Amount     string `json:"amount" binding:"required"`
}

// Create handles http request to open a pending payment from the
// authenticated client to an instructor.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createPaymentRequest
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

	payment, err := h.service.Create(ctx, authPayload.Username, req.Instructor, req.Amount)
	if err != nil {
		handlePaymentErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: paymentData{payment}})
}

type paymentsData struct {
	Payments []domain.Payment `json:"payments"`
}

// List handles http request to list payments of the authenticated user,
// sent ones for clients and received ones for instructors.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	var (
		payments []domain.Payment
		err      error
	)

	if gctx.Query("received") == "true" {
		payments, err = h.service.ListByInstructor(ctx, authPayload.Username)
	} else {
		payments, err = h.service.ListByClient(ctx, authPayload.Username)
	}

	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: paymentsData{payments}})
}

// QR handles http request to render the payment's QR code as PNG.
func (h *Handler) QR(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, err := parseID(gctx.Param("id"))
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	payment, err := h.service.Get(ctx, authPayload.Username, id)
	if err != nil {
		handlePaymentErr(gctx, err)

		return
	}

	png, err := qrpaypkg.EncodePNG(payment.QRPayload)
	if err != nil {
		l.Error().Err(err).Int64("payment_id", id).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Data(http.StatusOK, "image/png", png)
}

type paymentResultData struct {
	Payment domain.Payment `json:"payment"`
	Credits string         `json:"credits"`
}

// Confirm handles http request by the recipient instructor to settle a
// pending payment.
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
		handlePaymentErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: paymentResultData{result.Payment, result.Instructor.Credits}})
}

// Reject handles http request by the recipient instructor to cancel a
// pending payment.
func (h *Handler) Reject(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, err := parseID(gctx.Param("id"))
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	payment, err := h.service.Reject(ctx, authPayload.Username, id)
	if err != nil {
		handlePaymentErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: paymentData{payment}})
}

func handlePaymentErr(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrInvalidAmount,
		domain.ErrNegativeAmount,
		domain.ErrPaymentNotPending:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	case domain.ErrPaymentNotFound,
		domain.ErrInstructorNotFound,
		domain.ErrUserNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
		return
	case domain.ErrPaymentRecipientMismatch:
		gctx.JSON(http.StatusForbidden, web.Error(err))
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
