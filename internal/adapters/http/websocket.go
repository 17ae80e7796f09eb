package http

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/nats-io/nats.go"

	natsadapter "github.com/usvmap/usvmap/internal/adapters/nats"
	"github.com/usvmap/usvmap/internal/pkg/metrics"
)

// wsEvent is pushed to clients whenever a new dataset version is built.
type wsEvent struct {
	Type    string          `json:"type"`
	Subject string          `json:"subject"`
	Dataset json.RawMessage `json:"dataset,omitempty"`
}

// WebSocketHandler returns a handler that upgrades to WebSocket and relays
// dataset events so open map pages know to refresh. Clients may send
// {"action":"ping"}; anything else is ignored.
func WebSocketHandler(nc *nats.Conn) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer c.Close()

		remoteAddr := c.RemoteAddr().String()
		slog.Info("ws client connected", "remote", remoteAddr)
		metrics.ActiveWebSockets.Inc()
		defer metrics.ActiveWebSockets.Dec()

		var mu sync.Mutex
		writeJSON := func(v interface{}) error {
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			return c.WriteMessage(websocket.TextMessage, data)
		}

		if nc == nil {
			_ = writeJSON(map[string]string{"error": "event relay not configured"})
			return
		}

		sub, err := nc.Subscribe(natsadapter.SubjectDatasetAll, func(msg *nats.Msg) {
			_ = writeJSON(wsEvent{Type: "dataset_loaded", Subject: msg.Subject, Dataset: msg.Data})
		})
		if err != nil {
			slog.Error("ws subscribe failed", "subject", natsadapter.SubjectDatasetAll, "error", err)
			return
		}
		defer func() { _ = sub.Unsubscribe() }()

		// Keep-alive ping
		done := make(chan struct{})
		defer close(done)
		go func() {
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					mu.Lock()
					err := c.WriteMessage(websocket.PingMessage, nil)
					mu.Unlock()
					if err != nil {
						return
					}
				case <-done:
					return
				}
			}
		}()

		_ = writeJSON(map[string]string{"status": "subscribed", "subject": natsadapter.SubjectDatasetAll})

		for {
			_, msg, err := c.ReadMessage()
			if err != nil {
				break
			}
			var m struct {
				Action string `json:"action"`
			}
			if err := json.Unmarshal(msg, &m); err != nil {
				_ = writeJSON(map[string]string{"error": "invalid JSON"})
				continue
			}
			if m.Action == "ping" {
				_ = writeJSON(map[string]string{"status": "pong"})
			}
		}

		slog.Info("ws client disconnected", "remote", remoteAddr)
	}
}
