// Package topupdelivery manages delivery layer of credit top-ups.
package topupdelivery

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

// Service provides service layer interface needed by top-up delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package topupdelivery
type Service interface {
	Create(ctx context.Context, username, amount string) (domain.TopUp, error)
	Get(ctx context.Context, username string, id int64) (domain.TopUp, error)
	List(ctx context.Context, username string) ([]domain.TopUp, error)
	ListPending(ctx context.Context) ([]domain.TopUp, error)
	Approve(ctx context.Context, id int64) (domain.TopUpTxResult, error)
	Reject(ctx context.Context, id int64) (domain.TopUp, error)
}

// Handler facilitates top-up delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns top-up handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type topUpData struct {
	TopUp domain.TopUp `json:"topup"`
}

type createTopUpRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// Create handles http request to open a pending top-up for the
// authenticated user.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createTopUpRequest
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

	topUp, err := h.service.Create(ctx, authPayload.Username, req.Amount)
	if err != nil {
		handleTopUpErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: topUpData{topUp}})
}

type topUpsData struct {
	TopUps []domain.TopUp `json:"topups"`
}

// List handles http request to list the authenticated user's top-ups.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	topUps, err := h.service.List(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: topUpsData{topUps}})
}

// QR handles http request to render the top-up's QR Platba code as PNG.
func (h *Handler) QR(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, err := parseID(gctx.Param("id"))
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	topUp, err := h.service.Get(ctx, authPayload.Username, id)
	if err != nil {
		handleTopUpErr(gctx, err)

		return
	}

	png, err := qrpaypkg.EncodePNG(topUp.QRPayload)
	if err != nil {
		l.Error().Err(err).Int64("topup_id", id).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Data(http.StatusOK, "image/png", png)
}

// ListPending handles http request to list all pending top-ups for
// manual approval.
func (h *Handler) ListPending(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	topUps, err := h.service.ListPending(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: topUpsData{topUps}})
}

type topUpResultData struct {
	TopUp   domain.TopUp `json:"topup"`
	Credits string       `json:"credits"`
}

// Approve handles http request to confirm a pending top-up and credit
// the user.
func (h *Handler) Approve(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, err := parseID(gctx.Param("id"))
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	result, err := h.service.Approve(ctx, id)
	if err != nil {
		handleTopUpErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: topUpResultData{result.TopUp, result.User.Credits}})
}

// Reject handles http request to cancel a pending top-up.
func (h *Handler) Reject(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, err := parseID(gctx.Param("id"))
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	topUp, err := h.service.Reject(ctx, id)
	if err != nil {
		handleTopUpErr(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: topUpData{topUp}})
}

func handleTopUpErr(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrInvalidAmount,
		domain.ErrNegativeAmount,
		domain.ErrTopUpNotPending:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	case domain.ErrTopUpNotFound, domain.ErrUserNotFound:
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
