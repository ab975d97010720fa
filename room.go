package main

import (
	"errors"
	"slices"
	"sync"
)

var ErrNameConflict = errors.New("participant with that name is already connected")

// Room owns the participants sharing one code. Its capability set is fixed at
// creation and never renegotiated.
type Room struct {
	code         string
	creator      *Participant
	capabilities []string
	participants map[string]*Participant
	lock         sync.RWMutex
}

func NewRoom(code string, creator *Participant, capabilities []string) *Room {
	room := &Room{
		code:         code,
		creator:      creator,
		capabilities: nonNil(capabilities),
		participants: map[string]*Participant{creator.Name: creator},
	}
	creator.Room = room
	return room
}

func (r *Room) Code() string {
	return r.code
}

func (r *Room) Creator() *Participant {
	return r.creator
}

func (r *Room) Capabilities() []string {
	return slices.Clone(r.capabilities)
}

func (r *Room) HasCapability(tag string) bool {
	return slices.Contains(r.capabilities, tag)
}

// AddParticipant registers p under its display name. The new participant is
// first sent the current roster, one "connected" status per existing member,
// then every other member is told p has connected.
func (r *Room) AddParticipant(p *Participant) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, taken := r.participants[p.Name]; taken {
		LogNameConflict(r.code, p.Name)
		return ErrNameConflict
	}
	for _, member := range r.participants {
		if member.Conn.ID() != p.Conn.ID() {
			p.Conn.Send(NewParticipantStatus(r.code, member.Name, PresenceConnected))
		}
	}
	r.participants[p.Name] = p
	p.Room = r
	r.broadcastStatus(p, PresenceConnected)
	LogParticipantConnected(r.code, p.Name)
	return nil
}

// RemoveParticipant forgets p's name. Removing a participant that is already
// gone is a no-op.
func (r *Room) RemoveParticipant(p *Participant) {
	r.lock.Lock()
	defer r.lock.Unlock()
	current, present := r.participants[p.Name]
	if !present || current != p {
		return
	}
	delete(r.participants, p.Name)
	LogParticipantDisconnected(r.code, p.Name)
}

// BroadcastStatus tells every member except p that p's presence changed.
func (r *Room) BroadcastStatus(p *Participant, presence string) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	r.broadcastStatus(p, presence)
}

func (r *Room) broadcastStatus(p *Participant, presence string) {
	msg := NewParticipantStatus(r.code, p.Name, presence)
	for _, member := range r.participants {
		if member.Conn.ID() == p.Conn.ID() {
			continue
		}
		member.Conn.Send(msg)
	}
}

func (r *Room) ParticipantByName(name string) (*Participant, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	p, exists := r.participants[name]
	return p, exists
}

func (r *Room) ParticipantByConn(connID string) (*Participant, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	for _, member := range r.participants {
		if member.Conn.ID() == connID {
			return member, true
		}
	}
	return nil, false
}
