package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for game sessions
type Hub struct {
	// Session code -> connections
	adminConns  map[string]*Connection
	playerConns map[string]map[string]*Connection // code -> playerID -> conn

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	disconnect chan disconnectRequest
}

// Connection represents a WebSocket connection
type Connection struct {
	SessionCode string
	PlayerID    string // Empty for admin connections
	IsAdmin     bool
	Send        chan []byte
	Hub         *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	SessionCode string
	ToAdmin     bool
	ToPlayer    string // Empty means all players, specific ID means one player
	Message     *Message
}

type disconnectRequest struct {
	SessionCode string
	PlayerID    string
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		adminConns:  make(map[string]*Connection),
		playerConns: make(map[string]map[string]*Connection),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		broadcast:   make(chan *BroadcastMessage, 256),
		disconnect:  make(chan disconnectRequest, 16),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.IsAdmin {
				h.adminConns[conn.SessionCode] = conn
				log.Printf("Admin connected to session %s", conn.SessionCode)
			} else {
				if h.playerConns[conn.SessionCode] == nil {
					h.playerConns[conn.SessionCode] = make(map[string]*Connection)
				}
				h.playerConns[conn.SessionCode][conn.PlayerID] = conn
				log.Printf("Player %s connected to session %s", conn.PlayerID, conn.SessionCode)
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.IsAdmin {
				if existing, ok := h.adminConns[conn.SessionCode]; ok && existing == conn {
					delete(h.adminConns, conn.SessionCode)
					close(conn.Send)
					log.Printf("Admin disconnected from session %s", conn.SessionCode)
				}
			} else {
				if players, ok := h.playerConns[conn.SessionCode]; ok {
					if existing, ok := players[conn.PlayerID]; ok && existing == conn {
						delete(players, conn.PlayerID)
						close(conn.Send)
						log.Printf("Player %s disconnected from session %s", conn.PlayerID, conn.SessionCode)
					}
				}
			}
			h.mu.Unlock()

		case req := <-h.disconnect:
			h.mu.Lock()
			if players, ok := h.playerConns[req.SessionCode]; ok {
				if conn, ok := players[req.PlayerID]; ok {
					delete(players, req.PlayerID)
					close(conn.Send)
					log.Printf("Player %s force-disconnected from session %s", req.PlayerID, req.SessionCode)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.ToAdmin {
				if conn, ok := h.adminConns[msg.SessionCode]; ok {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else if msg.ToPlayer != "" {
				// Send to specific player
				if players, ok := h.playerConns[msg.SessionCode]; ok {
					if conn, ok := players[msg.ToPlayer]; ok {
						select {
						case conn.Send <- data:
						default:
						}
					}
				}
			} else {
				// Broadcast to all players
				if players, ok := h.playerConns[msg.SessionCode]; ok {
					for _, conn := range players {
						select {
						case conn.Send <- data:
						default:
						}
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToAdmin sends a message to the session admin (implements service.Broadcaster)
func (h *Hub) BroadcastToAdmin(sessionCode string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionCode: sessionCode,
		ToAdmin:     true,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToPlayer sends a message to a specific player (implements service.Broadcaster)
func (h *Hub) BroadcastToPlayer(sessionCode, playerID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionCode: sessionCode,
		ToPlayer:    playerID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToAllPlayers sends a message to all players in a session (implements service.Broadcaster)
func (h *Hub) BroadcastToAllPlayers(sessionCode string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionCode: sessionCode,
		ToPlayer:    "", // Empty means all
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// DisconnectPlayer drops a player's connection, used after a kick so the
// client cannot keep a live stream for a deleted player.
func (h *Hub) DisconnectPlayer(sessionCode, playerID string) {
	h.disconnect <- disconnectRequest{SessionCode: sessionCode, PlayerID: playerID}
}
