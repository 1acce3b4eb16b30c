package realtime

import (
	"log"
	"sync"

	"contesthub/metrics"

	"github.com/gorilla/websocket"
)

// Event is the payload broadcast to competition feed subscribers
type Event struct {
	Type          string `json:"type"` // created, updated, archived, deleted
	CompetitionID string `json:"competition_id"`
}

var (
	mu      sync.Mutex
	clients = make(map[string]map[*websocket.Conn]bool) // competition id -> connections
)

// RegisterClient subscribes a connection to a competition's events
func RegisterClient(competitionID string, conn *websocket.Conn) {
	mu.Lock()
	defer mu.Unlock()

	if clients[competitionID] == nil {
		clients[competitionID] = make(map[*websocket.Conn]bool)
	}
	clients[competitionID][conn] = true
	metrics.WebsocketClients.Inc()
}

// UnregisterClient drops a connection from a competition's subscriber set
func UnregisterClient(competitionID string, conn *websocket.Conn) {
	mu.Lock()
	defer mu.Unlock()

	if subscribers, ok := clients[competitionID]; ok {
		if subscribers[conn] {
			delete(subscribers, conn)
			metrics.WebsocketClients.Dec()
		}
		if len(subscribers) == 0 {
			delete(clients, competitionID)
		}
	}
}

// Broadcast sends an event to every subscriber of the competition. Write
// failures drop the connection from the set.
func Broadcast(event Event) {
	mu.Lock()
	defer mu.Unlock()

	for conn := range clients[event.CompetitionID] {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("WebSocket write error, dropping client: %v", err)
			conn.Close()
			delete(clients[event.CompetitionID], conn)
			metrics.WebsocketClients.Dec()
		}
	}
}
