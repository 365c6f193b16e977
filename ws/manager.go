package ws

import (
	"sync"

	"wantly_backend/internal/logger"
)

// Event is the envelope every realtime payload is wrapped in.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Manager tracks open connections per user. A user may hold several
// connections (tabs, devices); an event goes to all of them.
type Manager struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if m.clients[client.UserID] == nil {
				m.clients[client.UserID] = make(map[*Client]struct{})
			}
			m.clients[client.UserID][client] = struct{}{}
			m.mu.Unlock()
			logger.Debug("Websocket client connected", "user_id", client.UserID)

		case client := <-m.unregister:
			m.mu.Lock()
			if conns, ok := m.clients[client.UserID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(m.clients, client.UserID)
					}
				}
			}
			m.mu.Unlock()
			logger.Debug("Websocket client disconnected", "user_id", client.UserID)
		}
	}
}

// SendToUser implements services.RealtimeNotifier. A client whose send
// buffer is full is dropped rather than blocking the caller.
func (m *Manager) SendToUser(userID, event string, payload interface{}) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for client := range m.clients[userID] {
		select {
		case client.send <- Event{Event: event, Data: payload}:
		default:
			go func(c *Client) { m.unregister <- c }(client)
			logger.Warn("Websocket client dropped, send buffer full", "user_id", userID)
		}
	}
}
