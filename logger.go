package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

type ConnLogger struct {
	zerolog zerolog.Logger
}

func GetConnLogger(addr string, connID string) ConnLogger {
	return ConnLogger{log.With().Str("addr", addr).Str("conn-id", connID).Logger()}
}

func (l ConnLogger) Connected() {
	l.zerolog.Info().Msg("Connection established")
}

func (l ConnLogger) Disconnected() {
	l.zerolog.Info().Msg("Connection lost")
}

func (l ConnLogger) BinaryMessageRejected() {
	l.zerolog.Warn().Msg("Rejected unsupported binary message")
}

func LogConnectionEstablished(connID string) {
	log.Debug().Str("conn-id", connID).Msg("Connection ready")
}

func LogCreatedRoom(roomCode string, creator string, userAgent string) {
	log.Info().Str("room-code", roomCode).Str("creator", creator).Str("user-agent", userAgent).Msg("Room created")
}

func LogParticipantConnected(roomCode string, name string) {
	log.Info().Str("room-code", roomCode).Str("participant", name).Msg("Participant connected")
}

func LogParticipantDisconnected(roomCode string, name string) {
	log.Info().Str("room-code", roomCode).Str("participant", name).Msg("Participant disconnected")
}

func LogNameConflict(roomCode string, name string) {
	log.Warn().Str("room-code", roomCode).Str("participant", name).Msg("Participant with that name is already connected")
}

func LogMalformedMessage(connID string, err error) {
	log.Warn().Str("conn-id", connID).Err(err).Msg("Could not decode message")
}

func LogMissingCommand(connID string) {
	log.Warn().Str("conn-id", connID).Msg("Message did not have a command")
}

func LogUnknownCommand(connID string, command string) {
	log.Warn().Str("conn-id", connID).Str("command", command).Msg("Not implemented command")
}

func LogDroppedMessage(connID string, reason string) {
	log.Warn().Str("conn-id", connID).Str("reason", reason).Msg("Dropped participant message")
}

func LogForgedSender(connID string, claimed string, actual string) {
	log.Warn().Str("conn-id", connID).Str("claimed", claimed).Str("actual", actual).Msg("Dropped message with forged sender")
}

func LogCommandFault(connID string, command string, fault any) {
	log.Error().Str("conn-id", connID).Str("command", command).Interface("fault", fault).Msg("Error processing command")
}

func LogHandlerPanic(connID string, fault any) {
	log.Error().Str("conn-id", connID).Interface("fault", fault).Msg("Fault escaped message handler")
}

func LogStartedServer(port string, supported []string, clientCaps []string) {
	log.Info().Strs("supported-capabilities", supported).Strs("client-capabilities", clientCaps).Msgf("Starting broker on port %v", port)
}

func LogErrorWhileUpgradingHTTP(err error) {
	log.Error().Err(err).Msg("Error while upgrading HTTP")
}
