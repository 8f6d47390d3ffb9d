package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/joshp123/govee-collector/internal/refresh"
	"github.com/joshp123/govee-collector/internal/service"
	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

const writeTimeout = 10 * time.Second

// WebSocketHandler pushes StreamDeviceDataResponse JSON frames, driven by the
// same refresh sessions as the gRPC stream. Query: id (repeatable), interval
// (seconds).
type WebSocketHandler struct {
	resolver        *service.Resolver
	defaultInterval time.Duration
	logger          *slog.Logger
	upgrader        websocket.Upgrader
}

func NewWebSocketHandler(resolver *service.Resolver, defaultInterval time.Duration, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{
		resolver:        resolver,
		defaultInterval: defaultInterval,
		logger:          logger.With("component", "websocket"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var requested *uint32
	if raw := query.Get("interval"); raw != "" {
		secs, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			http.Error(w, "interval must be a whole number of seconds", http.StatusBadRequest)
			return
		}
		v := uint32(secs)
		requested = &v
	}
	interval, err := service.StreamInterval(requested, h.defaultInterval)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	session := refresh.NewSession(h.resolver.ResolveIDs(query["id"]), interval, h.resolver)
	defer session.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Control frames are only processed while reading.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	h.logger.Info("client connected", "session", session.ID(), "remote", r.RemoteAddr, "interval", interval)
	for {
		result, err := session.Next(ctx)
		if err != nil {
			h.logger.Info("client disconnected", "session", session.ID())
			return
		}
		payload, err := jsonOptions.Marshal(&goveev1.StreamDeviceDataResponse{Devices: result.Devices})
		if err != nil {
			h.logger.Error("encode snapshot", "error", err)
			return
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Debug("write failed", "session", session.ID(), "error", err)
			return
		}
	}
}
