package main

import (
	"errors"
	"sync"

	"room-broker/code"
)

var ErrCodeConflict = errors.New("room code is already registered")

// Directory maps room codes to live rooms. Rooms are never reclaimed, even
// after their last participant disconnects, matching the protocol's observed
// behavior, so the table grows for the life of the process.
type Directory struct {
	rooms map[string]*Room
	lock  sync.RWMutex
}

func NewDirectory() *Directory {
	return &Directory{rooms: make(map[string]*Room)}
}

func (d *Directory) Lookup(code string) (*Room, bool) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	room, exists := d.rooms[code]
	return room, exists
}

// Register puts room under roomCode, refusing a code that is already taken.
func (d *Directory) Register(roomCode string, room *Room) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.register(roomCode, room)
}

func (d *Directory) register(roomCode string, room *Room) error {
	if _, exists := d.rooms[roomCode]; exists {
		return ErrCodeConflict
	}
	d.rooms[roomCode] = room
	return nil
}

// Create allocates a free code and registers a new room for creator under it.
// Allocation and registration happen in one critical section so two
// concurrent creates can never be assigned the same code.
func (d *Directory) Create(creator *Participant, capabilities []string) *Room {
	d.lock.Lock()
	defer d.lock.Unlock()
	for {
		candidate := code.GenerateRandom()
		if _, exists := d.rooms[candidate]; exists {
			continue
		}
		room := NewRoom(candidate, creator, capabilities)
		d.rooms[candidate] = room
		return room
	}
}

func (d *Directory) Len() int {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return len(d.rooms)
}
