package main

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

func NewHTTPServer(broker *Broker) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RealIP)
	r.Use(httprate.Limit(30, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint)))
	r.Use(middleware.Heartbeat("/"))

	r.Get("/ws", websocketHandler(broker))
	return r
}

func websocketHandler(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			LogErrorWhileUpgradingHTTP(err)
			return
		}
		go serveConnection(broker, conn, r.RemoteAddr)
	}
}

// serveConnection runs one connection's read loop. Messages are handled to
// completion in arrival order; the broker is told about the connection when
// it opens and again when the loop ends for any reason.
func serveConnection(broker *Broker, raw net.Conn, addr string) {
	defer raw.Close()
	conn := NewWebsocketConn(raw)
	logger := GetConnLogger(addr, conn.ID())
	logger.Connected()
	broker.Connected(conn)
	defer func() {
		broker.Disconnected(conn)
		logger.Disconnected()
	}()
	for {
		data, op, err := wsutil.ReadClientData(raw)
		if err != nil {
			return
		}
		if op != ws.OpText {
			logger.BinaryMessageRejected()
			continue
		}
		broker.HandleMessage(conn, data)
	}
}
