package notifier

import (
	"gigflow/internal/entity"
	"gigflow/internal/logger"
	"net/http"

	"github.com/gorilla/websocket"
)

const sendBufferSize = 16

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one live websocket connection for one user.
type Client struct {
	UserId string
	Send   chan *entity.HiredEvent

	conn *websocket.Conn
	hub  *Hub
}

// ServeWS upgrades the request and keeps the connection registered until
// the peer goes away.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request, userId string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		UserId: userId,
		Send:   make(chan *entity.HiredEvent, sendBufferSize),
		conn:   conn,
		hub:    hub,
	}

	hub.Register(client)

	go client.readPump()
	go client.writePump()

	return nil
}

// readPump discards inbound frames; the channel is push-only. Its real job
// is noticing the disconnect and unregistering the client.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	for event := range c.Send {
		if err := c.conn.WriteJSON(event); err != nil {
			logger.Warn("ws write failed", "user_id", c.UserId, "error", err.Error())
			return
		}
	}
}
