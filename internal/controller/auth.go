package controller

import (
	"errors"
	"net/http"
	"gigflow/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type authRoutesHandler struct {
	authService service.Auth
	validate    *validator.Validate
}

func newAuthRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, protect echo.MiddlewareFunc) *authRoutesHandler {
	h := &authRoutesHandler{authService: services.Auth, validate: v}
	outer.POST("/auth/register", h.Register)
	outer.POST("/auth/login", h.Login)
	outer.GET("/auth/me", h.GetMe, protect)

	return h
}

type registerInput struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// /auth/register
func (h *authRoutesHandler) Register(c echo.Context) error {
	var input registerInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	result, err := h.authService.Register(c.Request().Context(), input.Name, input.Email, input.Password)
	if err == nil {
		if e := c.JSON(http.StatusCreated, result); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}
	case errors.Is(err, service.ErrEmailAlreadyTaken):
		if e := c.JSON(http.StatusConflict, errorResponse{"User with this email already exists"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// /auth/login
func (h *authRoutesHandler) Login(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	result, err := h.authService.Login(c.Request().Context(), input.Email, input.Password)
	if err == nil {
		if e := c.JSON(http.StatusOK, result); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Invalid credentials"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /auth/me
func (h *authRoutesHandler) GetMe(c echo.Context) error {
	user, err := h.authService.GetUserById(c.Request().Context(), requesterId(c))
	if err == nil {
		if e := c.JSON(http.StatusOK, user); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrUserNotFound):
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"User not found. Token may be invalid."}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
