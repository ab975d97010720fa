package main

import "testing"

func TestMessageStringList(t *testing.T) {
	msg, err := DecodeMessage([]byte(`{"command":"create-room","capabilities":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, ok := msg.StringList("capabilities")
	if !ok || len(list) != 0 {
		t.Errorf("an empty capability list must decode as present and empty")
	}

	msg, _ = DecodeMessage([]byte(`{"command":"create-room"}`))
	if _, ok := msg.StringList("capabilities"); ok {
		t.Errorf("an absent capability list must decode as absent")
	}

	msg, _ = DecodeMessage([]byte(`{"capabilities":["multi-choice",7]}`))
	if _, ok := msg.StringList("capabilities"); ok {
		t.Errorf("a list with non-string elements must decode as absent")
	}
}

func TestMessageString(t *testing.T) {
	msg, _ := DecodeMessage([]byte(`{"command":"join-room","participant-name":"Alice","count":3}`))
	if msg.Command() != "join-room" {
		t.Errorf("wrong command got: %q", msg.Command())
	}
	if name, ok := msg.String("participant-name"); !ok || name != "Alice" {
		t.Errorf("wrong participant-name got: %q %v", name, ok)
	}
	if _, ok := msg.String("count"); ok {
		t.Errorf("a non-string field must not decode as a string")
	}
	if _, ok := msg.String("from"); ok {
		t.Errorf("an absent field must not decode as a string")
	}
}

func TestDecodeMessageRejectsNonObjects(t *testing.T) {
	if _, err := DecodeMessage([]byte(`"create-room"`)); err == nil {
		t.Errorf("a non-object frame must not decode")
	}
}
