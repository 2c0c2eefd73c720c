package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/connections"
	"github.com/probelab/genmock/internal/gemini"
	"github.com/probelab/genmock/internal/services/engine"
	"github.com/probelab/genmock/pkg/httpext"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the mock serves local tooling only
	},
}

// wsError is the error shape sent over an established connection,
// matching the HTTP error envelope.
type wsError struct {
	Error httpext.ErrorBody `json:"error"`
}

// HandleWebSocket upgrades the connection and serves a chat loop: each
// inbound GenerateContentRequest message is answered with the same
// growing snapshots the HTTP stream produces, one message per word.
// Auth and rate limiting run in front of this handler as middleware.
func HandleWebSocket(engineService engine.Service, manager *connections.Manager, w http.ResponseWriter, r *http.Request) {
	model := r.URL.Query().Get("model")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Could not upgrade connection")
		return
	}

	manager.Add(conn)
	defer func() {
		manager.Remove(conn)
		conn.Close()
	}()

	timeouts := manager.Timeouts()
	conn.SetReadDeadline(time.Now().Add(timeouts.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(timeouts.PongWait))
	})

	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(timeouts.PingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				deadline := time.Now().Add(timeouts.WriteWait)
				if err := conn.WriteControl(websocket.PingMessage, []byte{}, deadline); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		conn.SetReadDeadline(time.Now().Add(timeouts.PongWait))

		var req gemini.GenerateContentRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("Websocket closed unexpectedly")
			}
			return
		}

		if err := engine.ValidateRequest(&req); err != nil {
			conn.SetWriteDeadline(time.Now().Add(timeouts.WriteWait))
			if writeErr := conn.WriteJSON(wsError{Error: httpext.ErrorBody{
				Code:    http.StatusBadRequest,
				Message: "Invalid value at 'contents': contents is required and must be a non-empty array.",
				Status:  httpext.StatusInvalidArgument,
			}}); writeErr != nil {
				return
			}
			continue
		}

		err := engineService.Stream(r.Context(), model, &req, func(snapshot *gemini.GenerateContentResponse) error {
			conn.SetWriteDeadline(time.Now().Add(timeouts.WriteWait))
			return conn.WriteJSON(snapshot)
		})
		if err != nil {
			log.Debug().Err(err).Msg("Websocket stream ended early")
			return
		}
	}
}
