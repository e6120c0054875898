package controller

import (
	"net/http"
	"gigflow/internal/notifier"

	"github.com/labstack/echo"
)

type wsRoutesHandler struct {
	hub       *notifier.Hub
	jwtSecret string
}

func newWsRoutesHandler(outer *echo.Group, hub *notifier.Hub, jwtSecret string) *wsRoutesHandler {
	h := &wsRoutesHandler{hub: hub, jwtSecret: jwtSecret}
	outer.GET("/ws", h.ServeWS)

	return h
}

// /ws?token=...
// Browsers can't set headers on a websocket handshake, so the token rides
// in the query string.
func (h *wsRoutesHandler) ServeWS(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Please provide a token"}); e != nil {
			return e
		}

		return nil
	}

	userId, err := parseUserIdFromToken(token, h.jwtSecret)
	if err != nil {
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Invalid or expired token. Please login again."}); e != nil {
			return e
		}

		return nil
	}

	return notifier.ServeWS(h.hub, c.Response(), c.Request(), userId)
}
