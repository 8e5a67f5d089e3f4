package notify

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Registry is the broadcast set of connected websocket observers. The
// relay consumer writes to it; the notification handler adds and
// removes connections.
type Registry struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[*websocket.Conn]struct{}),
	}
}

func (r *Registry) Add(conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[conn] = struct{}{}
}

func (r *Registry) Remove(conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, conn)
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Broadcast delivers the payload as-is to every currently connected
// observer. A failed write drops that observer.
func (r *Registry) Broadcast(payload []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for conn := range r.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("WebSocket write failed, dropping client: %v", err)
			conn.Close()
			delete(r.clients, conn)
		}
	}
}
