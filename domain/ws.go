package domain

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
)

type WebSocketErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

// Client is one live websocket connection bound to a seated player.
type Client struct {
	ID        string
	RoomID    string
	PlayerID  string
	Send      chan []byte
	Conn      *websocket.Conn
	WriteLock sync.Mutex
	Done      chan struct{}
}
