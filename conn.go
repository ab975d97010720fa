package main

import (
	"encoding/json"
	"net"
	"sync"

	"github.com/gobwas/ws/wsutil"
	"github.com/google/uuid"
)

// WebsocketConn adapts one upgraded websocket to the broker's Conn interface.
// Sends are serialized with a mutex because presence broadcasts and relayed
// messages arrive from other connections' goroutines.
type WebsocketConn struct {
	id   string
	conn net.Conn
	lock sync.Mutex
}

func NewWebsocketConn(conn net.Conn) *WebsocketConn {
	return &WebsocketConn{id: uuid.New().String(), conn: conn}
}

func (c *WebsocketConn) ID() string {
	return c.id
}

func (c *WebsocketConn) Send(message any) error {
	encoded, err := json.Marshal(message)
	if err != nil {
		return err
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	return wsutil.WriteServerText(c.conn, encoded)
}
