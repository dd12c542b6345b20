package topupdelivery

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
	username := randompkg.Username()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	topUp := domain.TopUp{
		ID:             1,
		Username:       username,
		Amount:         "500.00",
		VariableSymbol: "42",
		Status:         domain.StatusPending,
		QRPayload:      "SPD*1.0*ACC:CZ6508000000192000145399*AM:500.00*CC:CZK*X-VS:42",
		CreatedAt:      time.Now().Truncate(time.Second).UTC(),
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	type requestBody struct {
		Amount string `json:"amount"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(topUpService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: requestBody{Amount: "500"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(topUpService *MockService) {
				topUpService.EXPECT().
					Create(gomock.Any(), gomock.Eq(username), gomock.Eq("500")).
					Times(1).
					Return(topUp, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					TopUp domain.TopUp `json:"topup"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(topUp, got.TopUp, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "NoAuthorization",
			requestBody: requestBody{Amount: "500"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(topUpService *MockService) {
				topUpService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:        "MissingAmount",
			requestBody: requestBody{},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(topUpService *MockService) {
				topUpService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount is required",
		},
		{
			name:        "InvalidAmount",
			requestBody: requestBody{Amount: "!@#$"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(topUpService *MockService) {
				topUpService.EXPECT().
					Create(gomock.Any(), gomock.Eq(username), gomock.Eq("!@#$")).
					Times(1).
					Return(domain.TopUp{}, domain.ErrInvalidAmount)
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
			topUpService := NewMockService(ctrl)
			topUpHandler := NewHandler(topUpService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/topups", topUpHandler.Create)

			tc.buildStubs(topUpService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/topups", bytes.NewReader(body))
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

			res := web.Response{
				Data: &struct {
					TopUp domain.TopUp `json:"topup"`
				}{},
			}

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

func TestApprove(t *testing.T) {
	instructor := randompkg.Username()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	creditedAt := time.Now().Truncate(time.Second).UTC()

	txResult := domain.TopUpTxResult{
		TopUp: domain.TopUp{
			ID:         3,
			Username:   randompkg.Username(),
			Amount:     "500.00",
			Status:     domain.StatusConfirmed,
			CreditedAt: &creditedAt,
		},
		User: domain.User{Credits: "500.00"},
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	testCases := []struct {
		name           string
		topUpID        string
		buildStubs     func(topUpService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:    "OK",
			topUpID: "3",
			buildStubs: func(topUpService *MockService) {
				topUpService.EXPECT().
					Approve(gomock.Any(), gomock.Eq(int64(3))).
					Times(1).
					Return(txResult, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:    "InvalidID",
			topUpID: "abc",
			buildStubs: func(topUpService *MockService) {
				topUpService.EXPECT().Approve(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidID.Error(),
		},
		{
			name:    "NotPending",
			topUpID: "3",
			buildStubs: func(topUpService *MockService) {
				topUpService.EXPECT().
					Approve(gomock.Any(), gomock.Eq(int64(3))).
					Times(1).
					Return(domain.TopUpTxResult{}, domain.ErrTopUpNotPending)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrTopUpNotPending.Error(),
		},
		{
			name:    "NotFound",
			topUpID: "3",
			buildStubs: func(topUpService *MockService) {
				topUpService.EXPECT().
					Approve(gomock.Any(), gomock.Eq(int64(3))).
					Times(1).
					Return(domain.TopUpTxResult{}, domain.ErrTopUpNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrTopUpNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			topUpService := NewMockService(ctrl)
			topUpHandler := NewHandler(topUpService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/topups/:id/approve", topUpHandler.Approve)

			tc.buildStubs(topUpService)

			url := fmt.Sprintf("/topups/%s/approve", tc.topUpID)

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

			res := web.Response{}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK && res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}
		})
	}
}
