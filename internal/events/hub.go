package events

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const clientBufferSize = 16

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	raffleCode string
	conn       *websocket.Conn
	send       chan []byte
}

// Hub broadcasts raffle events to websocket subscribers grouped by raffle
// code. Slow consumers are disconnected rather than allowed to block the
// broadcast loop.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan Event
	clients    map[string]map[*client]struct{}
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan Event, 256),
		clients:    make(map[string]map[*client]struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for _, group := range h.clients {
				for c := range group {
					close(c.send)
				}
			}
			return
		case c := <-h.register:
			if h.clients[c.raffleCode] == nil {
				h.clients[c.raffleCode] = make(map[*client]struct{})
			}
			h.clients[c.raffleCode][c] = struct{}{}
		case c := <-h.unregister:
			if group, ok := h.clients[c.raffleCode]; ok {
				if _, ok := group[c]; ok {
					delete(group, c)
					close(c.send)
					if len(group) == 0 {
						delete(h.clients, c.raffleCode)
					}
				}
			}
		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				zap.L().Error("can't marshal event", zap.Error(err))
				continue
			}
			for c := range h.clients[event.RaffleCode] {
				select {
				case c.send <- data:
				default:
					delete(h.clients[event.RaffleCode], c)
					close(c.send)
				}
			}
		}
	}
}

// Publish enqueues an event for broadcast. Drops the event when the hub is
// saturated; delivery is best effort.
func (h *Hub) Publish(event Event) {
	select {
	case h.broadcast <- event:
	default:
		zap.L().Warn("event hub saturated, dropping event",
			zap.String("type", string(event.Type)),
			zap.String("raffle", event.RaffleCode),
		)
	}
}

// ServeWS upgrades the request and subscribes the connection to one raffle's
// event stream.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, raffleCode string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Error("websocket upgrade failed", zap.Error(err))
		return
	}
	c := &client{
		raffleCode: raffleCode,
		conn:       conn,
		send:       make(chan []byte, clientBufferSize),
	}
	select {
	case h.register <- c:
	case <-h.done:
		// Hub already stopped; nobody will ever drain register.
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump(h)
}

func (c *client) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()
	// Subscribers only listen; reads just detect disconnects.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
