package main

// Conn is one full-duplex transport connection, established and owned by the
// transport layer. The broker only needs a stable identity and a way to push
// a message back out.
type Conn interface {
	ID() string
	Send(message any) error
}

// Participant binds a display name to one connection for as long as it is
// part of a room. It never migrates between rooms.
type Participant struct {
	Name string
	Conn Conn
	Room *Room
}

func NewParticipant(name string, conn Conn) *Participant {
	return &Participant{Name: name, Conn: conn}
}
