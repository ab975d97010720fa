package main

import "net/http"

func main() {
	config := MustLoadConfig()
	broker := NewBroker(config)
	server := NewHTTPServer(broker)
	LogStartedServer(config.Port, config.SupportedCapabilities, config.ClientCapabilities)
	http.ListenAndServe(":"+config.Port, server)
}
