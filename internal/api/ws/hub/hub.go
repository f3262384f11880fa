package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fasthttp/websocket"
	"go.uber.org/zap"

	"quickdraw-service/domain"
	"quickdraw-service/internal/api/game"
)

// Message is the frame written to every socket.
type Message struct {
	Type    string `json:"type"`
	Content any    `json:"content"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 256
)

// Registry is the part of game.Registry the hub drives.
type Registry interface {
	RegisterSink(roomID string, sink game.Sink)
	Dispose(roomID string) error
}

type hostedRoom struct {
	idle *time.Timer
	gen  uint64
}

// Hub hosts rooms for the websocket transport: it lends each room a broadcast
// sink, fans frames out to the room's connections and disposes rooms that stay
// empty for longer than the grace period.
//
// Lock order: room lock -> hub mutex. The hub never calls into a room or the
// registry while holding its mutex.
type Hub struct {
	// roomsClients tracks live connections per room, keyed by connection id.
	roomsClients map[string]map[string]*domain.Client
	hosted       map[string]*hostedRoom

	registry     Registry
	relay        *roomHub
	disposeGrace time.Duration

	mutex  sync.RWMutex
	closed bool
	logger *zap.Logger
}

type Option func(*Hub)

// WithRelay routes room events through the redis room:<id> channels instead of
// delivering them in process.
func WithRelay(bus RoomBus) Option {
	return func(h *Hub) {
		h.relay = newRoomHub(bus, h)
	}
}

func NewHub(registry Registry, disposeGrace time.Duration, opts ...Option) *Hub {
	h := &Hub{
		roomsClients: make(map[string]map[string]*domain.Client),
		hosted:       make(map[string]*hostedRoom),
		registry:     registry,
		disposeGrace: disposeGrace,
		logger:       zap.L().Named("hub"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run closes the hub once ctx is done.
func (h *Hub) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		h.Close()
	}()
}

// Host lends the room a sink and starts its idle clock.
func (h *Hub) Host(roomID string) {
	var sink game.Sink = &localSink{hub: h, roomID: roomID}
	if h.relay != nil {
		if err := h.relay.StartSubscriber(roomID); err != nil {
			h.logger.Warn("redis relay unavailable, delivering locally",
				zap.String("room_id", roomID),
				zap.Error(err))
		} else {
			sink = &relaySink{bus: h.relay.bus, roomID: roomID}
		}
	}
	h.registry.RegisterSink(roomID, sink)

	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.closed {
		return
	}
	if _, ok := h.hosted[roomID]; !ok {
		h.hosted[roomID] = &hostedRoom{}
	}
	if len(h.roomsClients[roomID]) == 0 {
		h.scheduleDisposeLocked(roomID)
	}
	h.logger.Debug("room hosted", zap.String("room_id", roomID))
}

func (h *Hub) IsHosted(roomID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	_, ok := h.hosted[roomID]
	return ok
}

// RegisterClient adds a connection to its room and stops the room's idle clock.
func (h *Hub) RegisterClient(client *domain.Client) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.closed {
		return errors.New("hub is closed")
	}

	roomClients, ok := h.roomsClients[client.RoomID]
	if !ok {
		roomClients = make(map[string]*domain.Client)
		h.roomsClients[client.RoomID] = roomClients
	}
	if client.Send == nil {
		client.Send = make(chan []byte, sendBuffer)
	}
	client.Done = make(chan struct{})
	roomClients[client.ID] = client
	h.cancelDisposeLocked(client.RoomID)

	h.logger.Debug("client registered",
		zap.String("conn_id", client.ID),
		zap.String("room_id", client.RoomID),
		zap.String("player_id", client.PlayerID),
		zap.Int("connections", len(roomClients)))
	return nil
}

// UnregisterClient removes a connection and closes its channels. It is safe to call more than once.
func (h *Hub) UnregisterClient(client *domain.Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	roomClients, ok := h.roomsClients[client.RoomID]
	if !ok {
		return
	}
	if _, exists := roomClients[client.ID]; !exists {
		return
	}
	h.removeClientLocked(roomClients, client)
}

// releasePlayer drops every connection the player holds in the room. Frames
// already queued are still written before the socket closes.
func (h *Hub) releasePlayer(roomID, playerID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	roomClients, ok := h.roomsClients[roomID]
	if !ok {
		return
	}
	for _, client := range roomClients {
		if client.PlayerID == playerID {
			h.removeClientLocked(roomClients, client)
		}
	}
}

func (h *Hub) removeClientLocked(roomClients map[string]*domain.Client, client *domain.Client) {
	delete(roomClients, client.ID)
	close(client.Send)
	close(client.Done)

	h.logger.Debug("client unregistered",
		zap.String("conn_id", client.ID),
		zap.String("room_id", client.RoomID),
		zap.Int("remaining", len(roomClients)))

	if len(roomClients) == 0 {
		delete(h.roomsClients, client.RoomID)
		h.scheduleDisposeLocked(client.RoomID)
	}
}

func (h *Hub) GetRoomClientCount(roomID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.roomsClients[roomID])
}

// Close drops every connection and cancels pending disposals. Rooms themselves
// are torn down by the registry.
func (h *Hub) Close() {
	h.mutex.Lock()
	if h.closed {
		h.mutex.Unlock()
		return
	}
	h.closed = true
	for roomID, hr := range h.hosted {
		if hr.idle != nil {
			hr.idle.Stop()
		}
		delete(h.hosted, roomID)
	}
	for roomID, clients := range h.roomsClients {
		for _, client := range clients {
			close(client.Send)
			close(client.Done)
		}
		delete(h.roomsClients, roomID)
	}
	h.mutex.Unlock()

	if h.relay != nil {
		h.relay.StopAll()
	}
	h.logger.Info("hub closed")
}

// SendMessageToClient queues a frame for one connection without blocking.
func (h *Hub) SendMessageToClient(client *domain.Client, msg *Message) error {
	frame, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if _, live := h.roomsClients[client.RoomID][client.ID]; !live {
		return fmt.Errorf("client %s is not connected", client.ID)
	}
	select {
	case client.Send <- frame:
		return nil
	default:
		return fmt.Errorf("client %s send channel is full", client.ID)
	}
}

// deliver queues a frame for every connection in the room, or only those of
// target when it is set. Full send buffers drop the frame for that connection.
func (h *Hub) deliver(roomID, target string, frame []byte) error {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	dropped := 0
	for _, client := range h.roomsClients[roomID] {
		if target != "" && client.PlayerID != target {
			continue
		}
		select {
		case client.Send <- frame:
		default:
			dropped++
			h.logger.Warn("send channel full, dropping frame",
				zap.String("conn_id", client.ID),
				zap.String("room_id", roomID))
		}
	}
	if dropped > 0 {
		return fmt.Errorf("frame dropped for %d connection(s)", dropped)
	}
	return nil
}

func (h *Hub) scheduleDisposeLocked(roomID string) {
	hr, ok := h.hosted[roomID]
	if !ok || h.closed {
		return
	}
	if hr.idle != nil {
		hr.idle.Stop()
	}
	hr.gen++
	gen := hr.gen
	hr.idle = time.AfterFunc(h.disposeGrace, func() { h.disposeIfIdle(roomID, gen) })
}

func (h *Hub) cancelDisposeLocked(roomID string) {
	hr, ok := h.hosted[roomID]
	if !ok {
		return
	}
	if hr.idle != nil {
		hr.idle.Stop()
		hr.idle = nil
	}
	hr.gen++
}

func (h *Hub) disposeIfIdle(roomID string, gen uint64) {
	h.mutex.Lock()
	hr, ok := h.hosted[roomID]
	if !ok || hr.gen != gen || len(h.roomsClients[roomID]) > 0 {
		h.mutex.Unlock()
		return
	}
	delete(h.hosted, roomID)
	h.mutex.Unlock()

	if h.relay != nil {
		h.relay.StopSubscriber(roomID)
	}
	if err := h.registry.Dispose(roomID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		h.logger.Warn("idle room disposal failed", zap.String("room_id", roomID), zap.Error(err))
		return
	}
	h.logger.Info("idle room disposed", zap.String("room_id", roomID), zap.Duration("grace", h.disposeGrace))
}

// Serve pumps the connection until either side closes it. It blocks, which keeps
// the upgraded connection alive for the handler.
func (h *Hub) Serve(client *domain.Client) {
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		h.writePump(client)
	}()

	h.readPump(client)
	h.UnregisterClient(client)
	<-writerDone
}

// readPump answers application-level pings; commands travel over HTTP.
func (h *Hub) readPump(client *domain.Client) {
	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("client read error", zap.String("conn_id", client.ID), zap.Error(err))
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.sendErrorToClient(client, "malformed frame")
			continue
		}

		switch msg.Type {
		case "ping":
			if err := h.SendMessageToClient(client, &Message{Type: "pong", Content: time.Now().UnixMilli()}); err != nil {
				h.logger.Debug("pong dropped", zap.String("conn_id", client.ID), zap.Error(err))
			}
		default:
			h.sendErrorToClient(client, fmt.Sprintf("unsupported message type %q", msg.Type))
		}
	}
}

func (h *Hub) sendErrorToClient(client *domain.Client, errorMessage string) {
	if err := h.SendMessageToClient(client, &Message{Type: "error", Content: errorMessage}); err != nil {
		h.logger.Debug("error frame dropped", zap.String("conn_id", client.ID), zap.Error(err))
	}
}

// writePump drains Send onto the socket and keeps it alive with pings.
func (h *Hub) writePump(client *domain.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				client.WriteLock.Unlock()
				return
			}
			err := client.Conn.WriteMessage(websocket.TextMessage, msg)
			client.WriteLock.Unlock()
			if err != nil {
				h.logger.Debug("websocket write error", zap.String("conn_id", client.ID), zap.Error(err))
				return
			}

		case <-ticker.C:
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.PingMessage, nil)
			client.WriteLock.Unlock()
			if err != nil {
				return
			}
		}
	}
}
