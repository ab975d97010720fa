package main

import (
	"encoding/json"
	"fmt"
)

const (
	CommandCreateRoom         = "create-room"
	CommandCreateRoomResponse = "create-room-response"
	CommandJoinRoom           = "join-room"
	CommandJoinRoomResponse   = "join-room-response"
	CommandParticipantStatus  = "participant-status"
	CommandParticipantMessage = "participant-message"
)

const (
	StatusOK                    = 0
	StatusBadRequest            = 400
	StatusNotFound              = 404
	StatusCapabilityUnsupported = 405
	StatusInternalError         = 500
)

const (
	PresenceConnected    = "connected"
	PresenceDisconnected = "disconnected"
)

// Name a creator falls back to when create-room carries no participant-name,
// and the creator reported in join-room failure responses.
const UnknownCreator = "UnknownCreator"

type CreateRoomResponse struct {
	Command       string   `json:"command"`
	Status        int      `json:"status"`
	StatusMessage string   `json:"status-message"`
	Capabilities  []string `json:"capabilities"`
	RoomCode      string   `json:"room-code,omitempty"`
	ServerAgent   string   `json:"server-agent"`
}

type JoinRoomResponse struct {
	Command       string   `json:"command"`
	Status        int      `json:"status"`
	StatusMessage string   `json:"status-message"`
	Creator       string   `json:"creator"`
	Capabilities  []string `json:"capabilities"`
	ServerAgent   string   `json:"server-agent"`
}

type ParticipantStatus struct {
	Command         string `json:"command"`
	ParticipantName string `json:"participant-name"`
	RoomCode        string `json:"room-code"`
	Presence        string `json:"presence"`
}

func NewCreateRoomSuccess(roomCode string, capabilities []string, serverAgent string) CreateRoomResponse {
	return CreateRoomResponse{
		Command:       CommandCreateRoomResponse,
		Status:        StatusOK,
		StatusMessage: fmt.Sprintf("Room %s created successfully", roomCode),
		Capabilities:  nonNil(capabilities),
		RoomCode:      roomCode,
		ServerAgent:   serverAgent,
	}
}

func NewCreateRoomFailure(status int, message string, capabilities []string, serverAgent string) CreateRoomResponse {
	return CreateRoomResponse{
		Command:       CommandCreateRoomResponse,
		Status:        status,
		StatusMessage: message,
		Capabilities:  nonNil(capabilities),
		ServerAgent:   serverAgent,
	}
}

func NewJoinRoomSuccess(roomCode, creator string, capabilities []string, serverAgent string) JoinRoomResponse {
	return JoinRoomResponse{
		Command:       CommandJoinRoomResponse,
		Status:        StatusOK,
		StatusMessage: fmt.Sprintf("Joined %s", roomCode),
		Creator:       creator,
		Capabilities:  nonNil(capabilities),
		ServerAgent:   serverAgent,
	}
}

func NewJoinRoomFailure(status int, message string, serverAgent string) JoinRoomResponse {
	return JoinRoomResponse{
		Command:       CommandJoinRoomResponse,
		Status:        status,
		StatusMessage: message,
		Creator:       UnknownCreator,
		Capabilities:  []string{},
		ServerAgent:   serverAgent,
	}
}

func NewParticipantStatus(roomCode, participantName, presence string) ParticipantStatus {
	return ParticipantStatus{
		Command:         CommandParticipantStatus,
		ParticipantName: participantName,
		RoomCode:        roomCode,
		Presence:        presence,
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// Message is one decoded inbound protocol message. Commands are kept as a
// plain map because participant-message carries arbitrary payload fields the
// broker must relay untouched.
type Message map[string]any

func DecodeMessage(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (m Message) Command() string {
	command, _ := m.String("command")
	return command
}

// String reports the value under key, and whether it was present as a string.
func (m Message) String(key string) (string, bool) {
	value, ok := m[key].(string)
	return value, ok
}

// StringList reports the list under key. A key that is absent, not a list, or
// a list with non-string elements reports ok false; an empty list is valid.
func (m Message) StringList(key string) ([]string, bool) {
	raw, ok := m[key].([]any)
	if !ok {
		return nil, false
	}
	list := make([]string, 0, len(raw))
	for _, item := range raw {
		value, ok := item.(string)
		if !ok {
			return nil, false
		}
		list = append(list, value)
	}
	return list, true
}
