package server

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// hub fans one planResponse out to every subscribed WebSocket
// connection. Generalizes niceyeti-tabular/server/server.go's
// publishUpdates, which assumed exactly one connected client, to an
// arbitrary subscriber set guarded by a mutex.
type hub struct {
	mu   sync.Mutex
	subs map[*subscriber]struct{}
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex // serializes concurrent writes to one connection
}

func newHub() *hub {
	return &hub{subs: make(map[*subscriber]struct{})}
}

func (h *hub) subscribe(conn *websocket.Conn) *subscriber {
	sub := &subscriber{conn: conn}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
	_ = sub.conn.Close()
}

func (h *hub) broadcast(resp planResponse) {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subs))
	for sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.mu.Lock()
		err := sub.conn.WriteJSON(resp)
		sub.mu.Unlock()
		if err != nil {
			log.Debug("dropping websocket subscriber", "err", err)
			h.unsubscribe(sub)
		}
	}
}
