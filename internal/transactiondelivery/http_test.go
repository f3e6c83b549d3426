package transactiondelivery

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("txtype", ValidTransactionType); err != nil {
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

func newTestRouter(h Handler) *gin.Engine {
	router := gin.New()
	router.POST("/users/:id/accounts/:accountId/transactions", h.Create)

	return router
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name           string
		path           string
		form           url.Values
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantLocation   string
	}{
		{
			name: "Deposit",
			path: "/users/7/accounts/3/transactions",
			form: url.Values{"amount": {"100"}, "type": {"D"}},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(int64(3)), gomock.Eq("100"), gomock.Eq(domain.Deposit)).
					Times(1).
					Return(domain.Transaction{ID: 1, Amount: "100", Type: domain.Deposit, AccountID: 3}, nil)
			},
			wantStatusCode: http.StatusSeeOther,
			wantLocation:   "/users/7/accounts/3",
		},
		{
			name: "Withdrawal",
			path: "/users/7/accounts/3/transactions",
			form: url.Values{"amount": {"30.50"}, "type": {"W"}},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(int64(3)), gomock.Eq("30.50"), gomock.Eq(domain.Withdrawal)).
					Times(1).
					Return(domain.Transaction{ID: 2, Amount: "30.50", Type: domain.Withdrawal, AccountID: 3}, nil)
			},
			wantStatusCode: http.StatusSeeOther,
			wantLocation:   "/users/7/accounts/3",
		},
		{
			name: "MissingAmount",
			path: "/users/7/accounts/3/transactions",
			form: url.Values{"type": {"D"}},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "UnknownTypeRejectedByBinding",
			path: "/users/7/accounts/3/transactions",
			form: url.Values{"amount": {"100"}, "type": {"X"}},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "InvalidAmount",
			path: "/users/7/accounts/3/transactions",
			form: url.Values{"amount": {"ten"}, "type": {"D"}},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(int64(3)), gomock.Eq("ten"), gomock.Eq(domain.Deposit)).
					Times(1).
					Return(domain.Transaction{}, domain.ErrInvalidAmount)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "NegativeAmount",
			path: "/users/7/accounts/3/transactions",
			form: url.Values{"amount": {"-5"}, "type": {"D"}},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(int64(3)), gomock.Eq("-5"), gomock.Eq(domain.Deposit)).
					Times(1).
					Return(domain.Transaction{}, domain.ErrNegativeAmount)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "AccountNotFoundRedirectsToUser",
			path: "/users/7/accounts/404/transactions",
			form: url.Values{"amount": {"100"}, "type": {"D"}},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(int64(404)), gomock.Eq("100"), gomock.Eq(domain.Deposit)).
					Times(1).
					Return(domain.Transaction{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusSeeOther,
			wantLocation:   "/users/7",
		},
		{
			name: "InvalidAccountID",
			path: "/users/7/accounts/0/transactions",
			form: url.Values{"amount": {"100"}, "type": {"D"}},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			router := newTestRouter(NewHandler(service))

			req, err := http.NewRequest(http.MethodPost, tc.path,
				strings.NewReader(tc.form.Encode()))
			require.NoError(t, err)

			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantLocation != "" {
				require.Equal(t, tc.wantLocation, recorder.Header().Get("Location"))
			}
		})
	}
}
