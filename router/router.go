package router

import (
	"account-api/config"
	"account-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(accountHandler *handler.AccountHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	api := http.NewServeMux()
	api.Handle("POST /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.CreateAccount))
	api.Handle("GET /api/accounts/{id}", handler.ErrorHandlingMiddleware(accountHandler.GetAccount))

	var apiHandler http.Handler = api
	if config.AppConfig.Auth.Enabled {
		apiHandler = handler.AuthMiddleware(apiHandler)
	}
	mux.Handle("/api/", apiHandler)

	return mux
}
