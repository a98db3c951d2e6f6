package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/relabs-tech/gps_tracker/internal/config"
	"github.com/relabs-tech/gps_tracker/internal/gps"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// webState fans incoming fixes out to the REST endpoint and to every
// connected websocket client.
type webState struct {
	mu      sync.RWMutex
	lastFix gps.Fix
	haveFix bool
	clients map[*websocket.Conn]bool
}

// RunWeb subscribes to the GPS topic and serves the latest position:
// /api/location returns a GeoJSON record, /ws pushes each fix as it
// arrives, and everything else is static files from ./web.
func RunWeb() error {
	cfg := config.Get()

	state := &webState{clients: make(map[*websocket.Conn]bool)}

	// 1) Connect to MQTT broker
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientIDWeb)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("connected to MQTT broker at %s", cfg.Broker)

	// 2) Subscribe to the GPS topic, update state and push to clients
	token := client.Subscribe(cfg.Topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var env gps.Envelope
		if err := json.Unmarshal(msg.Payload(), &env); err != nil {
			log.Printf("MQTT payload unmarshal error: %v", err)
			return
		}

		state.mu.Lock()
		state.lastFix = env.GPS
		state.haveFix = true
		for conn := range state.clients {
			if err := conn.WriteJSON(env); err != nil {
				conn.Close()
				delete(state.clients, conn)
			}
		}
		state.mu.Unlock()
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("subscribed to MQTT topic %s", cfg.Topic)

	// 3) JSON API endpoint: latest position as a GeoJSON record
	http.HandleFunc("/api/location", func(w http.ResponseWriter, r *http.Request) {
		state.mu.RLock()
		defer state.mu.RUnlock()

		if !state.haveFix {
			http.Error(w, "no data yet", http.StatusServiceUnavailable)
			return
		}

		record := gps.Record{
			DeviceID:   cfg.DeviceID,
			Satellites: state.lastFix.Satellites,
			Location:   state.lastFix.GeoPoint(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(record); err != nil {
			log.Printf("json encode error: %v", err)
		}
	})

	// 4) Websocket endpoint: live fix stream
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("websocket upgrade error: %v", err)
			return
		}

		state.mu.Lock()
		state.clients[conn] = true
		state.mu.Unlock()

		// Reader loop only to detect disconnects; clients don't send.
		go func() {
			defer func() {
				state.mu.Lock()
				delete(state.clients, conn)
				state.mu.Unlock()
				conn.Close()
			}()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	})

	// 5) Static files from ./web as the root
	fs := http.FileServer(http.Dir("web"))
	http.Handle("/", fs)

	addr := fmt.Sprintf(":%d", cfg.WebPort)
	log.Printf("web server listening on %s", addr)
	return http.ListenAndServe(addr, nil)
}
