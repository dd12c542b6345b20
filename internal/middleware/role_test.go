package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/pkg/randompkg"
	"github.com/go-hanka/fit-studio/pkg/tokenpkg"
	"github.com/go-hanka/fit-studio/pkg/web"
)

func TestRoleRequired(t *testing.T) {
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	username := randompkg.Username()

	testCases := []struct {
		name           string
		buildStubs     func(users *MockRoleChecker)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "UserLookupError",
			buildStubs: func(users *MockRoleChecker) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(domain.UserWithoutPassword{}, domain.ErrUserNotFound)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      domain.ErrUserNotFound.Error(),
		},
		{
			name: "WrongRole",
			buildStubs: func(users *MockRoleChecker) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(domain.UserWithoutPassword{
						Username: username,
						Role:     domain.RoleClient,
					}, nil)
			},
			wantStatusCode: http.StatusForbidden,
			wantError:      ErrForbidden.Error(),
		},
		{
			name: "OK",
			buildStubs: func(users *MockRoleChecker) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(domain.UserWithoutPassword{
						Username: username,
						Role:     domain.RoleInstructor,
					}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := NewMockRoleChecker(ctrl)
			tc.buildStubs(users)

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()

			handler := func(ctx *gin.Context) {
				ctx.JSON(http.StatusOK, gin.H{})
			}
			server.GET("/instructor",
				AuthMiddleware(tokenMaker),
				RoleRequired(users, domain.RoleInstructor),
				handler,
			)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, "/instructor", nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err := AddAuthorization(request, tokenMaker, AuthTypeBearer, username, time.Minute); err != nil {
				t.Fatalf("AddAuthorization returned error: %v", err)
			}

			server.ServeHTTP(recorder, request)

			if recorder.Code != tc.wantStatusCode {
				t.Errorf("recorder.Code = %v, tc.wantStatusCode = %v, want equal",
					recorder.Code, tc.wantStatusCode)
			}

			got := web.Response{}
			if err := json.NewDecoder(recorder.Body).Decode(&got); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if got.Error != tc.wantError {
				t.Errorf("got.Error = %v, tc.wantError = %v, want equal", got.Error, tc.wantError)
			}
		})
	}
}
