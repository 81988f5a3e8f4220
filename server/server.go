package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpibt/pibt"
	"github.com/katalvlaran/gridpibt/registry"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server drives one pibt.Engine over HTTP and WebSocket. It holds no
// planning state of its own — the Engine is the sole source of truth
// — only the set of currently-subscribed WebSocket connections.
type Server struct {
	addr   string
	engine *pibt.Engine

	hub *hub
}

// NewServer binds a Server to engine, listening at addr once Serve is
// called.
func NewServer(addr string, engine *pibt.Engine) *Server {
	return &Server{
		addr:   addr,
		engine: engine,
		hub:    newHub(),
	}
}

// Serve blocks, running the HTTP server until ctx is cancelled or the
// listener fails. Mirrors niceyeti-tabular/server/server.go's Serve,
// generalized to take a context for graceful shutdown.
func (s *Server) Serve(ctx context.Context) error {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/plan", s.handlePlan).Methods(http.MethodPost)
	r.HandleFunc("/ws", s.handleWebsocket).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	httpServer := &http.Server{
		Addr:    s.addr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", s.addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handlePlan is the synchronous request/response path: decode a
// request batch, run one planning call, encode the results, and fan
// the same results out to any /ws subscribers.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	logger := log.With("request_id", requestID)

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("malformed plan request", "err", err)
		writeError(w, requestID, http.StatusBadRequest, err)
		return
	}

	items := make([]registry.RequestItem, len(req.Agents))
	for i, a := range req.Agents {
		items[i] = registry.RequestItem{
			ID:    a.ID,
			InitX: a.InitX,
			InitY: a.InitY,
			GoalX: a.GoalX,
			GoalY: a.GoalY,
		}
	}

	results, err := s.engine.Plan(items)
	if err != nil {
		logger.Error("plan failed", "err", err)
		writeError(w, requestID, statusFor(err), err)
		return
	}

	resp := planResponse{RequestID: requestID, Results: toWireResults(results)}
	s.hub.broadcast(resp)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode plan response", "err", err)
	}
}

// handleWebsocket upgrades the connection and registers it with the
// hub; every subsequent /plan call's result gets pushed to it until
// the client disconnects.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("websocket upgrade failed", "err", err)
		return
	}

	sub := s.hub.subscribe(conn)
	defer s.hub.unsubscribe(sub)

	// Drain reads so Gorilla's control-frame (ping/close) handling
	// keeps running; this handler never expects client-sent messages.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeError(w http.ResponseWriter, requestID string, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{RequestID: requestID, Error: err.Error()})
}

func toWireResults(results []pibt.Result) []agentResult {
	out := make([]agentResult, len(results))
	for i, r := range results {
		out[i] = agentResult{ID: r.ID, X: r.X, Y: r.Y}
	}
	return out
}
