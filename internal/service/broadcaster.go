package service

// Broadcaster is the change-notification fan-out services push through after
// every successful write, so all connected clients re-hydrate with canonical
// state. Implemented by ws.Hub (interface lives here to avoid an import cycle).
type Broadcaster interface {
	BroadcastToAdmin(sessionCode string, msgType string, payload interface{})
	BroadcastToPlayer(sessionCode, playerID string, msgType string, payload interface{})
	BroadcastToAllPlayers(sessionCode string, msgType string, payload interface{})
	DisconnectPlayer(sessionCode, playerID string)
}

// Event types pushed over the broadcaster.
const (
	EventSessionUpdated = "session_updated"
	EventPlayerJoined   = "player_joined"
	EventPlayerLeft     = "player_left"
	EventPlayerUpdated  = "player_updated"
	EventPlayerKicked   = "player_kicked"
	EventMarketUpdated  = "market_updated"
)
