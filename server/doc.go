// Package server exposes a pibt.Engine over HTTP and WebSocket: a
// synchronous POST /plan for one-shot callers and a push-style /ws feed
// for callers that want every planning call's results as they happen
// (a host driver visualizing a fleet, say). Grounded on
// niceyeti-tabular/server/server.go for the gorilla/websocket
// upgrade-and-publish shape, generalized from that package's
// single-assumed-client loop to one hub fanning out to any number of
// subscribers. Routing uses gorilla/mux instead of the teacher's bare
// http.HandleFunc, since this package also serves /healthz and
// /metrics alongside /plan and /ws.
package server
