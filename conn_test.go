package main

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/gobwas/ws/wsutil"
)

func TestWebsocketConnSend(t *testing.T) {
	client, server := net.Pipe()
	conn := NewWebsocketConn(server)
	go func() {
		conn.Send(NewParticipantStatus("ABCD", "Alice", PresenceConnected))
		server.Close()
	}()
	data, _ := wsutil.ReadServerText(client)
	var parsed ParticipantStatus
	err := json.Unmarshal(data, &parsed)
	if err != nil {
		t.Errorf("incorrect json sent")
	}
	if parsed.Command != CommandParticipantStatus {
		t.Errorf("wrong command expected: %v got: %v", CommandParticipantStatus, parsed.Command)
	}
	if parsed.ParticipantName != "Alice" || parsed.RoomCode != "ABCD" || parsed.Presence != PresenceConnected {
		t.Errorf("wrong status message: %+v", parsed)
	}
	client.Close()
}

func TestWebsocketConnIDs(t *testing.T) {
	_, first := net.Pipe()
	_, second := net.Pipe()
	if NewWebsocketConn(first).ID() == NewWebsocketConn(second).ID() {
		t.Errorf("two connections share an ID")
	}
}
