package connections

import (
	"testing"

	"github.com/gorilla/websocket"
)

func TestManagerTracksConnections(t *testing.T) {
	m := NewManager(DefaultTimeouts)

	if count := m.ActiveCount(); count != 0 {
		t.Fatalf("Expected 0 connections, got %d", count)
	}

	a := &websocket.Conn{}
	b := &websocket.Conn{}

	m.Add(a)
	m.Add(b)
	if count := m.ActiveCount(); count != 2 {
		t.Errorf("Expected 2 connections, got %d", count)
	}

	// Adding the same connection twice must not double-count.
	m.Add(a)
	if count := m.ActiveCount(); count != 2 {
		t.Errorf("Expected 2 connections after duplicate add, got %d", count)
	}

	m.Remove(a)
	if count := m.ActiveCount(); count != 1 {
		t.Errorf("Expected 1 connection after remove, got %d", count)
	}

	// Removing an unknown connection is a no-op.
	m.Remove(a)
	if count := m.ActiveCount(); count != 1 {
		t.Errorf("Expected 1 connection, got %d", count)
	}
}

func TestManagerTimeouts(t *testing.T) {
	m := NewManager(DefaultTimeouts)
	if m.Timeouts().PongWait != DefaultTimeouts.PongWait {
		t.Errorf("Expected pong wait %v, got %v", DefaultTimeouts.PongWait, m.Timeouts().PongWait)
	}
}
