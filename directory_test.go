package main

import (
	"errors"
	"sync"
	"testing"
)

func TestDirectoryCreateAndLookup(t *testing.T) {
	directory := NewDirectory()
	creator := NewParticipant("Quizmaster", newFakeConn("creator"))
	room := directory.Create(creator, []string{"multi-choice"})

	found, exists := directory.Lookup(room.Code())
	if !exists || found != room {
		t.Errorf("created room was not found under its code")
	}
	if creator.Room != room {
		t.Errorf("creator was not bound to its room")
	}
	if _, exists := room.ParticipantByName("Quizmaster"); !exists {
		t.Errorf("room does not contain its creator")
	}
}

func TestDirectoryRegisterConflict(t *testing.T) {
	directory := NewDirectory()
	first := NewRoom("ABCD", NewParticipant("One", newFakeConn("one")), nil)
	if err := directory.Register("ABCD", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := NewRoom("ABCD", NewParticipant("Two", newFakeConn("two")), nil)
	if err := directory.Register("ABCD", second); !errors.Is(err, ErrCodeConflict) {
		t.Errorf("wrong error expected: %v got: %v", ErrCodeConflict, err)
	}
}

func TestDirectoryConcurrentCreates(t *testing.T) {
	directory := NewDirectory()
	const creators = 50
	codes := make(chan string, creators)
	var wg sync.WaitGroup
	for i := 0; i < creators; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			room := directory.Create(NewParticipant("Quizmaster", newFakeConn("c")), nil)
			codes <- room.Code()
		}()
	}
	wg.Wait()
	close(codes)

	seen := map[string]bool{}
	for roomCode := range codes {
		if seen[roomCode] {
			t.Fatalf("room code %q was assigned twice", roomCode)
		}
		seen[roomCode] = true
	}
	if directory.Len() != creators {
		t.Errorf("wrong room count expected: %d got: %d", creators, directory.Len())
	}
}
