package userdelivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/errorspkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.GET("/register", h.RegisterForm)
	router.POST("/register", h.Create)
	router.GET("/users", h.List)
	router.GET("/users/:id", h.Get)
	router.POST("/users/:id", h.Update)
	router.POST("/users/:id/delete", h.Delete)

	return router
}

func postForm(t *testing.T, router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestCreate(t *testing.T) {
	user := domain.User{ID: 7, Username: "colt", Name: "Colt Warren"}

	testCases := []struct {
		name           string
		form           url.Values
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantLocation   string
	}{
		{
			name: "OK",
			form: url.Values{
				"username": {"colt"},
				"password": {"secret1"},
				"name":     {"Colt Warren"},
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq("colt"), gomock.Eq("secret1"), gomock.Eq("Colt Warren")).
					Times(1).
					Return(user, nil)
			},
			wantStatusCode: http.StatusSeeOther,
			wantLocation:   "/users/7",
		},
		{
			name: "MissingUsername",
			form: url.Values{
				"password": {"secret1"},
				"name":     {"Colt Warren"},
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "ShortPassword",
			form: url.Values{
				"username": {"colt"},
				"password": {"abc"},
				"name":     {"Colt Warren"},
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "UsernameAlreadyExists",
			form: url.Values{
				"username": {"colt"},
				"password": {"secret1"},
				"name":     {"Colt Warren"},
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, domain.ErrUsernameAlreadyExists)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "InternalErrorRedirectsToListing",
			form: url.Values{
				"username": {"colt"},
				"password": {"secret1"},
				"name":     {"Colt Warren"},
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusSeeOther,
			wantLocation:   "/users",
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
			recorder := postForm(t, router, "/register", tc.form)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantLocation != "" {
				require.Equal(t, tc.wantLocation, recorder.Header().Get("Location"))
			}
		})
	}
}

func TestGet(t *testing.T) {
	user := domain.User{
		ID:       7,
		Username: "colt",
		Name:     "Colt Warren",
		Accounts: []domain.Account{{ID: 1, Name: "Account #1"}},
		Address:  &domain.Address{UserID: 7},
	}

	testCases := []struct {
		name           string
		path           string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			path: "/users/7",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(int64(7))).
					Times(1).
					Return(user, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NotFound",
			path: "/users/404",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(int64(404))).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "InvalidID",
			path: "/users/0",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Any()).
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

			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantStatusCode == http.StatusOK {
				var res struct {
					Data struct {
						User domain.User `json:"user"`
					} `json:"data"`
				}

				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
				require.Equal(t, user.Username, res.Data.User.Username)
				require.NotNil(t, res.Data.User.Address)
			}
		})
	}
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		List(gomock.Any()).
		Times(1).
		Return([]domain.User{{ID: 1, Username: "colt"}}, nil)

	router := newTestRouter(NewHandler(service))

	req, err := http.NewRequest(http.MethodGet, "/users", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestUpdate(t *testing.T) {
	testCases := []struct {
		name           string
		form           url.Values
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantLocation   string
	}{
		{
			name: "NameOnly",
			form: url.Values{"name": {"New Name"}},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Update(gomock.Any(), gomock.Eq(domain.UpdateUserParams{
						ID:   7,
						Name: "New Name",
					})).
					Times(1).
					Return(domain.User{ID: 7, Name: "New Name"}, nil)
			},
			wantStatusCode: http.StatusSeeOther,
			wantLocation:   "/users/7",
		},
		{
			name: "WithAddress",
			form: url.Values{
				"name": {"New Name"},
				"city": {"Springfield"},
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Update(gomock.Any(), gomock.Eq(domain.UpdateUserParams{
						ID:   7,
						Name: "New Name",
						Address: &domain.Address{
							UserID: 7,
							City:   "Springfield",
						},
					})).
					Times(1).
					Return(domain.User{ID: 7, Name: "New Name"}, nil)
			},
			wantStatusCode: http.StatusSeeOther,
			wantLocation:   "/users/7",
		},
		{
			name: "ServiceErrorRedirectsToListing",
			form: url.Values{"name": {"New Name"}},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusSeeOther,
			wantLocation:   "/users",
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
			recorder := postForm(t, router, "/users/7", tc.form)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
			require.Equal(t, tc.wantLocation, recorder.Header().Get("Location"))
		})
	}
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		Delete(gomock.Any(), gomock.Eq(int64(7))).
		Times(1).
		Return(nil)

	router := newTestRouter(NewHandler(service))
	recorder := postForm(t, router, "/users/7/delete", url.Values{})

	require.Equal(t, http.StatusSeeOther, recorder.Code)
	require.Equal(t, "/users", recorder.Header().Get("Location"))
}
