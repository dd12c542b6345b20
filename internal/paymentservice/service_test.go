package paymentservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/internal/userdelivery"
	"github.com/go-hanka/fit-studio/pkg/errorspkg"
)

func TestCreate(t *testing.T) {
	instructor := domain.UserWithoutPassword{
		ID:       5,
		Username: "trainer",
		FullName: "Petra Svobodova",
		Role:     domain.RoleInstructor,
	}

	client := "hanka"

	wantArg := domain.CreatePaymentParams{
		Client:     client,
		Instructor: instructor.Username,
		Amount:     "250.00",
		QRPayload:  "amount:250.00|client:hanka|instructor:trainer",
	}

	wantPayment := domain.Payment{
		ID:         1,
		Client:     wantArg.Client,
		Instructor: wantArg.Instructor,
		Amount:     wantArg.Amount,
		Status:     domain.StatusPending,
		QRPayload:  wantArg.QRPayload,
	}

	testCases := []struct {
		name          string
		amount        string
		buildStubs    func(repo *MockRepo, userService *userdelivery.MockService)
		checkResponse func(res domain.Payment, err error)
	}{
		{
			name:   "Invalid amount",
			amount: "abc",
			buildStubs: func(repo *MockRepo, userService *userdelivery.MockService) {
				userService.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Payment, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInvalidAmount.Error())
			},
		},
		{
			name:   "Recipient not found",
			amount: "250",
			buildStubs: func(repo *MockRepo, userService *userdelivery.MockService) {
				userService.EXPECT().Get(gomock.Any(), gomock.Eq(instructor.Username)).
					Times(1).
					Return(domain.UserWithoutPassword{}, domain.ErrUserNotFound)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Payment, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInstructorNotFound.Error())
			},
		},
		{
			name:   "Recipient is not an instructor",
			amount: "250",
			buildStubs: func(repo *MockRepo, userService *userdelivery.MockService) {
				notInstructor := instructor
				notInstructor.Role = domain.RoleClient

				userService.EXPECT().Get(gomock.Any(), gomock.Eq(instructor.Username)).
					Times(1).
					Return(notInstructor, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Payment, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInstructorNotFound.Error())
			},
		},
		{
			name:   "User service error",
			amount: "250",
			buildStubs: func(repo *MockRepo, userService *userdelivery.MockService) {
				userService.EXPECT().Get(gomock.Any(), gomock.Eq(instructor.Username)).
					Times(1).
					Return(domain.UserWithoutPassword{}, errorspkg.ErrInternal)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Payment, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
		{
			name:   "OK",
			amount: "250",
			buildStubs: func(repo *MockRepo, userService *userdelivery.MockService) {
				userService.EXPECT().Get(gomock.Any(), gomock.Eq(instructor.Username)).
					Times(1).
					Return(instructor, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Eq(wantArg)).
					Times(1).
					Return(wantPayment, nil)
			},
			checkResponse: func(res domain.Payment, err error) {
				require.NoError(t, err)
				require.Equal(t, wantPayment, res)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			paymentRepo := NewMockRepo(ctrl)
			userService := userdelivery.NewMockService(ctrl)
			paymentService := New(paymentRepo, userService)

			tc.buildStubs(paymentRepo, userService)

			tc.checkResponse(paymentService.Create(context.Background(), client, instructor.Username, tc.amount))
		})
	}
}

func TestConfirm(t *testing.T) {
	payment := domain.Payment{
		ID:         9,
		Client:     "hanka",
		Instructor: "trainer",
		Amount:     "250.00",
		Status:     domain.StatusPending,
	}

	testTxResult := domain.PaymentTxResult{
		Payment: domain.Payment{
			ID:         payment.ID,
			Client:     payment.Client,
			Instructor: payment.Instructor,
			Amount:     payment.Amount,
			Status:     domain.StatusConfirmed,
		},
		Instructor: domain.User{Username: payment.Instructor, Credits: "250.00"},
	}

	testCases := []struct {
		name          string
		instructor    string
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.PaymentTxResult, err error)
	}{
		{
			name:       "Payment not found",
			instructor: payment.Instructor,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(payment.ID)).
					Times(1).
					Return(domain.Payment{}, domain.ErrPaymentNotFound)
				repo.EXPECT().ConfirmTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.PaymentTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrPaymentNotFound.Error())
			},
		},
		{
			name:       "Another instructor's payment",
			instructor: "someoneelse",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(payment.ID)).
					Times(1).
					Return(payment, nil)
				repo.EXPECT().ConfirmTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.PaymentTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrPaymentRecipientMismatch.Error())
			},
		},
		{
			name:       "Not pending",
			instructor: payment.Instructor,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(payment.ID)).
					Times(1).
					Return(payment, nil)
				repo.EXPECT().ConfirmTx(gomock.Any(), gomock.Eq(payment.ID)).
					Times(1).
					Return(domain.PaymentTxResult{}, domain.ErrPaymentNotPending)
			},
			checkResponse: func(res domain.PaymentTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrPaymentNotPending.Error())
			},
		},
		{
			name:       "OK",
			instructor: payment.Instructor,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(payment.ID)).
					Times(1).
					Return(payment, nil)
				repo.EXPECT().ConfirmTx(gomock.Any(), gomock.Eq(payment.ID)).
					Times(1).
					Return(testTxResult, nil)
			},
			checkResponse: func(res domain.PaymentTxResult, err error) {
				require.NoError(t, err)
				require.Equal(t, testTxResult, res)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			paymentRepo := NewMockRepo(ctrl)
			userService := userdelivery.NewMockService(ctrl)
			paymentService := New(paymentRepo, userService)

			tc.buildStubs(paymentRepo)

			tc.checkResponse(paymentService.Confirm(context.Background(), tc.instructor, payment.ID))
		})
	}
}

func TestReject(t *testing.T) {
	payment := domain.Payment{
		ID:         9,
		Client:     "hanka",
		Instructor: "trainer",
		Amount:     "250.00",
		Status:     domain.StatusPending,
	}

	cancelled := payment
	cancelled.Status = domain.StatusCancelled

	testCases := []struct {
		name          string
		instructor    string
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.Payment, err error)
	}{
		{
			name:       "Another instructor's payment",
			instructor: "someoneelse",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(payment.ID)).
					Times(1).
					Return(payment, nil)
				repo.EXPECT().Reject(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Payment, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrPaymentRecipientMismatch.Error())
			},
		},
		{
			name:       "OK",
			instructor: payment.Instructor,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(payment.ID)).
					Times(1).
					Return(payment, nil)
				repo.EXPECT().Reject(gomock.Any(), gomock.Eq(payment.ID)).
					Times(1).
					Return(cancelled, nil)
			},
			checkResponse: func(res domain.Payment, err error) {
				require.NoError(t, err)
				require.Equal(t, cancelled, res)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			paymentRepo := NewMockRepo(ctrl)
			userService := userdelivery.NewMockService(ctrl)
			paymentService := New(paymentRepo, userService)

			tc.buildStubs(paymentRepo)

			tc.checkResponse(paymentService.Reject(context.Background(), tc.instructor, payment.ID))
		})
	}
}
