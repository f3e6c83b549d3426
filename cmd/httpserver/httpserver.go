// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ColtWarren/Users-Accounts-Application/internal/accountdelivery"
	"github.com/ColtWarren/Users-Accounts-Application/internal/accountrepo"
	"github.com/ColtWarren/Users-Accounts-Application/internal/accountservice"
	"github.com/ColtWarren/Users-Accounts-Application/internal/addressrepo"
	"github.com/ColtWarren/Users-Accounts-Application/internal/addressservice"
	"github.com/ColtWarren/Users-Accounts-Application/internal/middleware"
	"github.com/ColtWarren/Users-Accounts-Application/internal/transactiondelivery"
	"github.com/ColtWarren/Users-Accounts-Application/internal/transactionrepo"
	"github.com/ColtWarren/Users-Accounts-Application/internal/transactionservice"
	"github.com/ColtWarren/Users-Accounts-Application/internal/userdelivery"
	"github.com/ColtWarren/Users-Accounts-Application/internal/userrepo"
	"github.com/ColtWarren/Users-Accounts-Application/internal/userservice"
	"github.com/ColtWarren/Users-Accounts-Application/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	addressRepo := addressrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)

	transactionService := transactionservice.New(transactionRepo)
	accountService := accountservice.New(accountRepo, transactionService)
	addressService := addressservice.New(addressRepo)
	userService := userservice.New(userRepo, addressService, accountService)

	userHandler := userdelivery.NewHandler(userService)
	accountHandler := accountdelivery.NewHandler(accountService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/register", userHandler.RegisterForm)
	engine.POST("/register", userHandler.Create)
	engine.GET("/users", userHandler.List)
	engine.GET("/users/:id", userHandler.Get)
	engine.POST("/users/:id", userHandler.Update)
	engine.POST("/users/:id/delete", userHandler.Delete)

	engine.POST("/users/:id/accounts", accountHandler.Create)
	engine.GET("/users/:id/accounts/:accountId", accountHandler.Get)
	engine.POST("/users/:id/accounts/:accountId", accountHandler.Update)

	engine.POST("/users/:id/accounts/:accountId/transactions", transactionHandler.Create)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("txtype", transactiondelivery.ValidTransactionType)
		if err != nil {
			return nil, errors.New("cannot register transaction type validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
