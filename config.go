package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything fixed at broker start. SupportedCapabilities is
// the set the broker itself accepts at room creation; ClientCapabilities is
// the larger vocabulary its population of clients is assumed to understand.
type Config struct {
	Port                  string
	ServerAgent           string
	SupportedCapabilities []string
	ClientCapabilities    []string
}

func MustLoadConfig() *Config {
	godotenv.Load()
	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}
	agent := os.Getenv("SERVER_AGENT")
	if agent == "" {
		agent = "room-broker/0.1"
	}
	supported := os.Getenv("SUPPORTED_CAPABILITIES")
	if supported == "" {
		supported = "multi-choice,static-message"
	}
	client := os.Getenv("CLIENT_CAPABILITIES")
	return &Config{
		Port:                  port,
		ServerAgent:           agent,
		SupportedCapabilities: splitList(supported),
		ClientCapabilities:    splitList(client),
	}
}

func splitList(raw string) []string {
	list := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
