package main

import (
	"fmt"
	"slices"
	"sync"
)

// Broker is the top-level façade the transport layer talks to. It owns the
// room directory and the command table, and tracks which connections have
// been bound to a participant. A connection starts unbound, becomes bound by
// a successful create-room or join-room, and stays bound until it closes;
// there is no way back to unbound, so a connection can never switch rooms.
type Broker struct {
	directory *Directory
	supported []string
	agent     string

	handlers map[string]func(Conn, Message)

	bindings map[string]*Participant
	lock     sync.RWMutex
}

func NewBroker(config *Config) *Broker {
	b := &Broker{
		directory: NewDirectory(),
		supported: nonNil(config.SupportedCapabilities),
		agent:     config.ServerAgent,
		bindings:  make(map[string]*Participant),
	}
	b.handlers = map[string]func(Conn, Message){
		CommandCreateRoom:         b.createRoom,
		CommandJoinRoom:           b.joinRoom,
		CommandParticipantMessage: b.relayMessage,
	}
	return b
}

func (b *Broker) Connected(conn Conn) {
	LogConnectionEstablished(conn.ID())
}

// Disconnected is called by the transport layer when a connection closes. If
// the connection was bound, the rest of its room is told it disconnected and
// its name becomes reusable; otherwise there is nothing to do.
func (b *Broker) Disconnected(conn Conn) {
	b.lock.Lock()
	p := b.bindings[conn.ID()]
	delete(b.bindings, conn.ID())
	b.lock.Unlock()
	if p == nil || p.Room == nil {
		return
	}
	p.Room.BroadcastStatus(p, PresenceDisconnected)
	p.Room.RemoveParticipant(p)
}

// HandleMessage dispatches one decoded inbound message to its command
// handler. Unknown commands are logged and ignored; a fault escaping a
// handler is contained here and never tears down the connection.
func (b *Broker) HandleMessage(conn Conn, data []byte) {
	defer func() {
		if v := recover(); v != nil {
			LogHandlerPanic(conn.ID(), v)
		}
	}()
	msg, err := DecodeMessage(data)
	if err != nil {
		LogMalformedMessage(conn.ID(), err)
		return
	}
	command := msg.Command()
	if command == "" {
		LogMissingCommand(conn.ID())
		return
	}
	handler, known := b.handlers[command]
	if !known {
		LogUnknownCommand(conn.ID(), command)
		return
	}
	handler(conn, msg)
}

func (b *Broker) createRoom(conn Conn, msg Message) {
	defer func() {
		if v := recover(); v != nil {
			LogCommandFault(conn.ID(), CommandCreateRoom, v)
			conn.Send(NewCreateRoomFailure(StatusInternalError, fmt.Sprint(v), b.supported, b.agent))
		}
	}()

	if b.bound(conn) {
		conn.Send(NewCreateRoomFailure(StatusBadRequest,
			"Connection is already bound to a room.", b.supported, b.agent))
		return
	}

	name, ok := msg.String("participant-name")
	if !ok || name == "" {
		name = UnknownCreator
	}

	capabilities, declared := msg.StringList("capabilities")
	if !declared {
		conn.Send(NewCreateRoomFailure(StatusBadRequest,
			"Room capabilities were not specified.", b.supported, b.agent))
		return
	}
	for _, tag := range capabilities {
		if !slices.Contains(b.supported, tag) {
			conn.Send(NewCreateRoomFailure(StatusCapabilityUnsupported,
				fmt.Sprintf("Capability %s is not supported by this broker.", tag),
				b.supported, b.agent))
			return
		}
	}

	creator := NewParticipant(name, conn)
	room := b.directory.Create(creator, capabilities)
	b.bind(conn, creator)
	conn.Send(NewCreateRoomSuccess(room.Code(), capabilities, b.agent))
	userAgent, _ := msg.String("user-agent")
	LogCreatedRoom(room.Code(), name, userAgent)
}

func (b *Broker) joinRoom(conn Conn, msg Message) {
	defer func() {
		if v := recover(); v != nil {
			LogCommandFault(conn.ID(), CommandJoinRoom, v)
			conn.Send(NewJoinRoomFailure(StatusInternalError, fmt.Sprint(v), b.agent))
		}
	}()

	if b.bound(conn) {
		conn.Send(NewJoinRoomFailure(StatusBadRequest,
			"Connection is already bound to a room.", b.agent))
		return
	}

	roomCode, ok := msg.String("room-code")
	if !ok {
		conn.Send(NewJoinRoomFailure(StatusNotFound, "No room with that code exists.", b.agent))
		return
	}
	room, exists := b.directory.Lookup(roomCode)
	if !exists {
		conn.Send(NewJoinRoomFailure(StatusNotFound, "No room with that code exists.", b.agent))
		return
	}

	name, ok := msg.String("participant-name")
	if !ok {
		conn.Send(NewJoinRoomFailure(StatusBadRequest, "No name provided when joining room.", b.agent))
		return
	}

	if capabilities, declared := msg.StringList("capabilities"); declared {
		for _, required := range room.Capabilities() {
			if !slices.Contains(capabilities, required) {
				response := NewJoinRoomFailure(StatusCapabilityUnsupported,
					fmt.Sprintf("Capability %s is required by room %s.", required, roomCode), b.agent)
				response.Capabilities = room.Capabilities()
				conn.Send(response)
				return
			}
		}
	}

	p := NewParticipant(name, conn)
	if err := room.AddParticipant(p); err != nil {
		conn.Send(NewJoinRoomFailure(StatusInternalError, err.Error(), b.agent))
		return
	}
	b.bind(conn, p)
	conn.Send(NewJoinRoomSuccess(roomCode, room.Creator().Name, room.Capabilities(), b.agent))
}

// relayMessage forwards a participant-message to the named recipient with the
// sender's identity verified. Anything that does not resolve, or a from field
// that does not match the sender's bound name, drops the message with a log
// record only; the relay never reports routing faults back to the sender.
func (b *Broker) relayMessage(conn Conn, msg Message) {
	roomCode, ok := msg.String("room-code")
	if !ok {
		LogDroppedMessage(conn.ID(), "no room code")
		return
	}
	room, exists := b.directory.Lookup(roomCode)
	if !exists {
		LogDroppedMessage(conn.ID(), "unknown room "+roomCode)
		return
	}
	sender, ok := room.ParticipantByConn(conn.ID())
	if !ok {
		LogDroppedMessage(conn.ID(), "sender is not a member of "+roomCode)
		return
	}
	recipientName, ok := msg.String("participant-name")
	if !ok {
		LogDroppedMessage(conn.ID(), "no recipient name")
		return
	}
	recipient, ok := room.ParticipantByName(recipientName)
	if !ok {
		LogDroppedMessage(conn.ID(), "no participant named "+recipientName)
		return
	}
	if from, declared := msg.String("from"); declared {
		if from != sender.Name {
			LogForgedSender(conn.ID(), from, sender.Name)
			return
		}
	} else {
		msg["from"] = sender.Name
	}
	recipient.Conn.Send(msg)
}

func (b *Broker) bound(conn Conn) bool {
	b.lock.RLock()
	defer b.lock.RUnlock()
	_, exists := b.bindings[conn.ID()]
	return exists
}

func (b *Broker) bind(conn Conn, p *Participant) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.bindings[conn.ID()] = p
}
