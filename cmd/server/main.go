package main

import (
	"log"

	"chathub/internal/api"
	"chathub/internal/config"
	"chathub/internal/hub"
	ws "chathub/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	h := hub.New(cfg.HistorySize)
	gateway := ws.NewGateway(h, cfg.MaxMessageSize)
	h.SetSink(gateway)

	log.Printf("chat server listening on %s", cfg.Addr)
	if err := api.Serve(cfg.Addr, h, gateway); err != nil {
		log.Fatal(err)
	}
}
