package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type outbound struct {
	userID  uuid.UUID
	message []byte
}

// Hub tracks connected clients per user so status events reach only the
// user they concern.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	send       chan outbound
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		send:       make(chan outbound, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			conns := h.clients[client.userID]
			if conns == nil {
				conns = make(map[*Client]bool)
				h.clients[client.userID] = conns
			}
			conns[client] = true
			h.mutex.Unlock()
			h.logger.Printf("WS connected | user=%s", client.userID)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if conns, ok := h.clients[client.userID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
				}
				if len(conns) == 0 {
					delete(h.clients, client.userID)
				}
			}
			h.mutex.Unlock()
			h.logger.Printf("WS disconnected | user=%s", client.userID)

		case out := <-h.send:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients[out.userID]))
			for c := range h.clients[out.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- out.message:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Send queues a message for every connection the user has open. Messages are
// dropped rather than blocking when the buffer is full.
func (h *Hub) Send(userID uuid.UUID, message []byte) {
	if h == nil {
		return
	}
	select {
	case h.send <- outbound{userID: userID, message: message}:
	default:
		h.logger.Printf("WS send dropped | user=%s reason=buffer_full", userID)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	n := 0
	for _, conns := range h.clients {
		n += len(conns)
	}
	return n
}
