package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

const (
	defaultLimit  = 20
	defaultOffset = 0

	userIdContextKey = "userId"
)

type errorResponse struct {
	Reason string `json:"reason"`
}

// requesterId returns the authenticated user id set by the auth middleware.
func requesterId(c echo.Context) string {
	id, _ := c.Get(userIdContextKey).(string)
	return id
}

func getAllErrorMessages(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "incorrect input value passed"
	}

	var builder strings.Builder
	for _, fe := range validationErrors {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "should be a valid email address"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	}

	return "incorrect value passed"
}
