package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/floodwatch/floodwatch-sync-api/config"
	"github.com/floodwatch/floodwatch-sync-api/stores"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust CORS as needed, e.g., check r.Header.Get("Origin")
	},
}

// Live streams report and thread snapshots over websockets
type Live struct {
	Reports  *stores.ReportStore
	Messages *stores.MessageStore
}

// ReportsWebSocketHandler pushes a snapshot of the reports in the requested
// radius on every upstream change until the client disconnects.
func (l Live) ReportsWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	center, radius, err := parseRadiusQuery(r)
	if err != nil {
		config.ErrorStatus("invalid radius query", http.StatusBadRequest, w, err)
		return
	}

	sub, err := l.Reports.ObserveInRadius(r.Context(), center, radius)
	if err != nil {
		config.ErrorStatus("failed to observe reports", http.StatusInternalServerError, w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		sub.Close()
		zap.S().Errorw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	defer sub.Close()

	// Drain client frames so close notifications reach us.
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				sub.Close()
				return
			}
		}
	}()

	for snapshot := range sub.Snapshots() {
		if err := conn.WriteJSON(snapshot); err != nil {
			zap.S().Debugw("websocket write failed, dropping client", "error", err)
			return
		}
	}
	if err := sub.Err(); err != nil {
		zap.S().Warnw("report subscription ended", "error", err)
	}
}

// ThreadMessagesWebSocketHandler pushes a snapshot of a thread's messages on
// every upstream change until the client disconnects.
func (l Live) ThreadMessagesWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	threadID := r.URL.Query().Get("threadId")
	if threadID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "threadId is required"}`))
		return
	}

	sub, err := l.Messages.ObserveThread(r.Context(), threadID)
	if err != nil {
		config.ErrorStatus("failed to observe thread", http.StatusInternalServerError, w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		sub.Close()
		zap.S().Errorw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	defer sub.Close()

	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				sub.Close()
				return
			}
		}
	}()

	for snapshot := range sub.Snapshots() {
		if err := conn.WriteJSON(snapshot); err != nil {
			zap.S().Debugw("websocket write failed, dropping client", "error", err)
			return
		}
	}
	if err := sub.Err(); err != nil {
		zap.S().Warnw("message subscription ended", "error", err)
	}
}
