// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

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

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	CreateForUser(ctx context.Context, userID int64) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	Update(ctx context.Context, id int64, name string) (domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type userURI struct {
	UserID int64 `uri:"id" binding:"required,min=1"`
}

type accountURI struct {
	UserID    int64 `uri:"id" binding:"required,min=1"`
	AccountID int64 `uri:"accountId" binding:"required,min=1"`
}

// Create handles http request to create an account for a user. On
// success it redirects to the new account's resource; a missing user
// redirects back to the user's page.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri userURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	userPath := "/users/" + strconv.FormatInt(uri.UserID, 10)

	account, err := h.service.CreateForUser(ctx, uri.UserID)
	if err != nil {
		l.Warn().Int64("user_id", uri.UserID).Msg("failed to create account")
		gctx.Redirect(http.StatusSeeOther, userPath)

		return
	}

	gctx.Redirect(http.StatusSeeOther, userPath+"/accounts/"+strconv.FormatInt(account.ID, 10))
}

type data struct {
	Account domain.Account `json:"account"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// Get handles http request to view an account with its ledger and balance.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	account, err := h.service.Get(ctx, uri.AccountID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type updateRequest struct {
	Name string `form:"name" json:"name" binding:"required"`
}

// Update handles http request to rename an account, then redirects
// back to the owning user's page.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
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

	userPath := "/users/" + strconv.FormatInt(uri.UserID, 10)

	if _, err := h.service.Update(ctx, uri.AccountID, req.Name); err != nil {
		l.Warn().Int64("account_id", uri.AccountID).Msg("failed to update account")
		gctx.Redirect(http.StatusSeeOther, userPath)

		return
	}

	gctx.Redirect(http.StatusSeeOther, userPath)
}
