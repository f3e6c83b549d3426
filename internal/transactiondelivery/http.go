// Package transactiondelivery manages delivery layer of transactions.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Create(ctx context.Context, accountID int64, amount, txType string) (domain.Transaction, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type accountURI struct {
	UserID    int64 `uri:"id" binding:"required,min=1"`
	AccountID int64 `uri:"accountId" binding:"required,min=1"`
}

type createRequest struct {
	Amount string `form:"amount" json:"amount" binding:"required"`
	Type   string `form:"type" json:"type" binding:"required,txtype"`
}

// Create handles http request to record a deposit or withdrawal
// against an account, then redirects back to the account page. A
// missing account redirects to the owning user's page.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

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

	userPath := "/users/" + strconv.FormatInt(uri.UserID, 10)
	accountPath := userPath + "/accounts/" + strconv.FormatInt(uri.AccountID, 10)

	_, err := h.service.Create(ctx, uri.AccountID, req.Amount, req.Type)
	if err != nil {
		switch err {
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount, domain.ErrInvalidTransactionType:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrAccountNotFound:
			l.Warn().Int64("account_id", uri.AccountID).Msg("failed to record transaction")
			gctx.Redirect(http.StatusSeeOther, userPath)

			return
		}

		l.Warn().Int64("account_id", uri.AccountID).Msg("failed to record transaction")
		gctx.Redirect(http.StatusSeeOther, userPath)

		return
	}

	gctx.Redirect(http.StatusSeeOther, accountPath)
}
