package paymentdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/internal/middleware"
	"github.com/go-hanka/fit-studio/pkg/randompkg"
	"github.com/go-hanka/fit-studio/pkg/tokenpkg"
	"github.com/go-hanka/fit-studio/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	client := randompkg.Username()
	instructor := randompkg.Username()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	payment := domain.Payment{
		ID:         1,
		Client:     client,
		Instructor: instructor,
		Amount:     "250.00",
		Status:     domain.StatusPending,
		QRPayload:  fmt.Sprintf("amount:250.00|client:%s|instructor:%s", client, instructor),
		CreatedAt:  time.Now().Truncate(time.Second).UTC(),
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	type requestBody struct {
		Instructor string `json:"instructor"`
		Amount     string `json:"amount"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(paymentService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: requestBody{Instructor: instructor, Amount: "250"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, client, duration)
			},
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().
					Create(gomock.Any(), gomock.Eq(client), gomock.Eq(instructor), gomock.Eq("250")).
					Times(1).
					Return(payment, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*paymentData)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(payment, got.Payment, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "NoAuthorization",
			requestBody: requestBody{Instructor: instructor, Amount: "250"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:        "MissingInstructor",
			requestBody: requestBody{Amount: "250"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, client, duration)
			},
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Instructor is required",
		},
		{
			name:        "InstructorNotFound",
			requestBody: requestBody{Instructor: instructor, Amount: "250"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, client, duration)
			},
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().
					Create(gomock.Any(), gomock.Eq(client), gomock.Eq(instructor), gomock.Eq("250")).
					Times(1).
					Return(domain.Payment{}, domain.ErrInstructorNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrInstructorNotFound.Error(),
		},
		{
			name:        "InvalidAmount",
			requestBody: requestBody{Instructor: instructor, Amount: "!@#$"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, client, duration)
			},
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().
					Create(gomock.Any(), gomock.Eq(client), gomock.Eq(instructor), gomock.Eq("!@#$")).
					Times(1).
					Return(domain.Payment{}, domain.ErrInvalidAmount)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidAmount.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			paymentService := NewMockService(ctrl)
			paymentHandler := NewHandler(paymentService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/payments", paymentHandler.Create)

			tc.buildStubs(paymentService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/payments", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &paymentData{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestList(t *testing.T) {
	username := randompkg.Username()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	payments := []domain.Payment{
		{
			ID:        1,
			Client:    username,
			Amount:    "250.00",
			Status:    domain.StatusPending,
			CreatedAt: time.Now().Truncate(time.Second).UTC(),
		},
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	testCases := []struct {
		name       string
		query      string
		buildStubs func(paymentService *MockService)
	}{
		{
			name:  "Sent",
			query: "",
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().
					ListByClient(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(payments, nil)
			},
		},
		{
			name:  "Received",
			query: "?received=true",
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().
					ListByInstructor(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(payments, nil)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			paymentService := NewMockService(ctrl)
			paymentHandler := NewHandler(paymentService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.GET("/payments", paymentHandler.List)

			tc.buildStubs(paymentService)

			req, err := http.NewRequest(http.MethodGet, "/payments"+tc.query, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = middleware.AddAuthorization(req, tokenMaker, authType, username, duration); err != nil {
				t.Fatalf("AddAuthorization returned error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != http.StatusOK {
				t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
			}

			res := web.Response{Data: &paymentsData{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			got, ok := res.Data.(*paymentsData)
			if !ok {
				t.Errorf(`res.Data=%v, failed type conversion`, res.Data)
			}

			compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
			if diff := cmp.Diff(payments, got.Payments, compareCreatedAt); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	instructor := randompkg.Username()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	creditedAt := time.Now().Truncate(time.Second).UTC()

	txResult := domain.PaymentTxResult{
		Payment: domain.Payment{
			ID:         5,
			Client:     randompkg.Username(),
			Instructor: instructor,
			Amount:     "250.00",
			Status:     domain.StatusConfirmed,
			CreditedAt: &creditedAt,
		},
		Instructor: domain.User{Credits: "250.00"},
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	testCases := []struct {
		name           string
		paymentID      string
		buildStubs     func(paymentService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:      "OK",
			paymentID: "5",
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().
					Confirm(gomock.Any(), gomock.Eq(instructor), gomock.Eq(int64(5))).
					Times(1).
					Return(txResult, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:      "InvalidID",
			paymentID: "abc",
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidID.Error(),
		},
		{
			name:      "RecipientMismatch",
			paymentID: "5",
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().
					Confirm(gomock.Any(), gomock.Eq(instructor), gomock.Eq(int64(5))).
					Times(1).
					Return(domain.PaymentTxResult{}, domain.ErrPaymentRecipientMismatch)
			},
			wantStatusCode: http.StatusForbidden,
			wantError:      domain.ErrPaymentRecipientMismatch.Error(),
		},
		{
			name:      "NotPending",
			paymentID: "5",
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().
					Confirm(gomock.Any(), gomock.Eq(instructor), gomock.Eq(int64(5))).
					Times(1).
					Return(domain.PaymentTxResult{}, domain.ErrPaymentNotPending)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrPaymentNotPending.Error(),
		},
		{
			name:      "NotFound",
			paymentID: "5",
			buildStubs: func(paymentService *MockService) {
				paymentService.EXPECT().
					Confirm(gomock.Any(), gomock.Eq(instructor), gomock.Eq(int64(5))).
					Times(1).
					Return(domain.PaymentTxResult{}, domain.ErrPaymentNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrPaymentNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			paymentService := NewMockService(ctrl)
			paymentHandler := NewHandler(paymentService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/payments/:id/confirm", paymentHandler.Confirm)

			tc.buildStubs(paymentService)

			url := fmt.Sprintf("/payments/%s/confirm", tc.paymentID)

			req, err := http.NewRequest(http.MethodPost, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = middleware.AddAuthorization(req, tokenMaker, authType, instructor, duration); err != nil {
				t.Fatalf("AddAuthorization returned error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &paymentResultData{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got, ok := res.Data.(*paymentResultData)
			if !ok {
				t.Errorf(`res.Data=%v, failed type conversion`, res.Data)
			}

			compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
			if diff := cmp.Diff(txResult.Payment, got.Payment, compareCreatedAt); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}

			if got.Credits != txResult.Instructor.Credits {
				t.Errorf("got.Credits=%q, want %q", got.Credits, txResult.Instructor.Credits)
			}
		})
	}
}
