package controller

import (
	"gigflow/internal/notifier"
	"gigflow/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, hub *notifier.Hub, jwtSecret string) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	protect := newAuthMiddleware(jwtSecret)

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newAuthRoutesHandler(api, services, validate, protect)
	newGigRoutesHandler(api, services, validate, protect)
	newBidRoutesHandler(api, services, validate, protect)
	newWsRoutesHandler(api, hub, jwtSecret)
}
