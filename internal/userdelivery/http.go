// Package userdelivery manages delivery layer of users.
package userdelivery

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/errorspkg"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/web"
)

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Create(ctx context.Context, username, password, name string) (domain.User, error)
	Get(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, arg domain.UpdateUserParams) (domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns user handler.
func NewHandler(us Service) *Handler {
	return &Handler{service: us}
}

type data struct {
	User domain.User `json:"user"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// RegisterForm handles http request to get an empty registration scaffold.
func (h *Handler) RegisterForm(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, response{Data: data{domain.User{}}})
}

type createRequest struct {
	Username string `form:"username" json:"username" binding:"required,alphanum"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
	Name     string `form:"name" json:"name" binding:"required"`
}

// Create handles http request to register a user. On success it
// redirects to the created user's resource; on failure it redirects
// back to the users listing.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBind(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	createdUser, err := h.service.Create(ctx, req.Username, req.Password, req.Name)
	if err != nil {
		if err == domain.ErrUsernameAlreadyExists {
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		l.Warn().Int64("user_id", createdUser.ID).Msg("failed to register user")
		gctx.Redirect(http.StatusSeeOther, "/users")

		return
	}

	gctx.Redirect(http.StatusSeeOther, "/users/"+strconv.FormatInt(createdUser.ID, 10))
}

type dataUsers struct {
	Users []domain.User `json:"users"`
}
type responseUsers struct {
	Data dataUsers `json:"data,omitempty"`
}

// List handles http request to list all users.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	users, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseUsers{Data: dataUsers{users}})
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get one user with accounts and address.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	user, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{user}})
}

type updateRequest struct {
	Name           string `form:"name" json:"name" binding:"required"`
	AddressLineOne string `form:"address_line_one" json:"address_line_one"`
	AddressLineTwo string `form:"address_line_two" json:"address_line_two"`
	City           string `form:"city" json:"city"`
	Region         string `form:"region" json:"region"`
	Country        string `form:"country" json:"country"`
	ZipCode        string `form:"zip_code" json:"zip_code"`
}

func (r updateRequest) hasAddress() bool {
	return r.AddressLineOne != "" || r.AddressLineTwo != "" || r.City != "" ||
		r.Region != "" || r.Country != "" || r.ZipCode != ""
}

// Update handles http request to update a user and, when address
// fields are supplied, persist the address. Redirects back to the
// user's resource.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri getRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var req updateRequest
	if err := gctx.ShouldBind(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	arg := domain.UpdateUserParams{
		ID:   uri.ID,
		Name: req.Name,
	}

	if req.hasAddress() {
		arg.Address = &domain.Address{
			UserID:         uri.ID,
			AddressLineOne: req.AddressLineOne,
			AddressLineTwo: req.AddressLineTwo,
			City:           req.City,
			Region:         req.Region,
			Country:        req.Country,
			ZipCode:        req.ZipCode,
		}
	}

	if _, err := h.service.Update(ctx, arg); err != nil {
		l.Warn().Int64("user_id", uri.ID).Msg("failed to update user")
		gctx.Redirect(http.StatusSeeOther, "/users")

		return
	}

	gctx.Redirect(http.StatusSeeOther, "/users/"+strconv.FormatInt(uri.ID, 10))
}

// Delete handles http request to delete a user. It redirects to the
// users listing whether or not the user owned anything.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	if err := h.service.Delete(ctx, req.ID); err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.Redirect(http.StatusSeeOther, "/users")
}
