// Package connections tracks live websocket streams so the health
// endpoint can report them and shutdown can see what is still open.
package connections

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// TimeoutConfig holds the keepalive timing for websocket connections.
type TimeoutConfig struct {
	PongWait   time.Duration
	PingPeriod time.Duration
	WriteWait  time.Duration
}

// DefaultTimeouts provides sensible defaults.
var DefaultTimeouts = TimeoutConfig{
	PongWait:   30 * time.Second,
	PingPeriod: 27 * time.Second, // (PongWait * 9) / 10
	WriteWait:  10 * time.Second,
}

// Manager registers open websocket connections.
type Manager struct {
	connections sync.Map
	timeouts    TimeoutConfig
}

// NewManager creates a manager with the given keepalive timing.
func NewManager(timeouts TimeoutConfig) *Manager {
	return &Manager{timeouts: timeouts}
}

// Add registers a connection.
func (m *Manager) Add(conn *websocket.Conn) {
	m.connections.Store(conn, struct{}{})
}

// Remove drops a connection.
func (m *Manager) Remove(conn *websocket.Conn) {
	m.connections.Delete(conn)
}

// ActiveCount returns the number of open connections.
func (m *Manager) ActiveCount() int {
	count := 0
	m.connections.Range(func(key, value interface{}) bool {
		count++
		return true
	})
	return count
}

// Timeouts returns the keepalive configuration.
func (m *Manager) Timeouts() TimeoutConfig {
	return m.timeouts
}
