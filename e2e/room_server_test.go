package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

type roomEntry struct {
	Nickname string `json:"nickname"`
	Content  string `json:"content"`
}

// roomServer behaves like the room service: password protected rooms, a stored
// history and a websocket per room and nickname. A posted message is stored and
// fanned out to every other socket of the room, never back to its sender.
type roomServer struct {
	mu        sync.Mutex
	passwords map[string]string
	history   map[string][]roomEntry
	sockets   map[string]map[*websocket.Conn]struct{}
	upgrader  websocket.Upgrader
}

func startRoomServer(t *testing.T) (*roomServer, *httptest.Server) {
	t.Helper()
	rs := &roomServer{
		passwords: map[string]string{},
		history:   map[string][]roomEntry{},
		sockets:   map[string]map[*websocket.Conn]struct{}{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /create_room", rs.createRoom)
	mux.HandleFunc("POST /join_room", rs.joinRoom)
	mux.HandleFunc("GET /history/{room}", rs.getHistory)
	mux.HandleFunc("GET /ws/{room}/{nickname}", rs.connect)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return rs, server
}

type credentials struct {
	RoomID   string `json:"room_id"`
	Password string `json:"password"`
}

func (rs *roomServer) createRoom(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if _, ok := rs.passwords[c.RoomID]; ok {
		http.Error(w, `{"detail":"Room already exists"}`, http.StatusBadRequest)
		return
	}
	rs.passwords[c.RoomID] = c.Password
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Room " + c.RoomID + " created successfully"})
}

func (rs *roomServer) joinRoom(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if password, ok := rs.passwords[c.RoomID]; !ok || password != c.Password {
		http.Error(w, `{"detail":"Invalid Room ID or Password"}`, http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Joined room " + c.RoomID + " successfully"})
}

func (rs *roomServer) getHistory(w http.ResponseWriter, r *http.Request) {
	rs.mu.Lock()
	entries := append([]roomEntry{}, rs.history[r.PathValue("room")]...)
	rs.mu.Unlock()
	_ = json.NewEncoder(w).Encode(entries)
}

func (rs *roomServer) connect(w http.ResponseWriter, r *http.Request) {
	room, nickname := r.PathValue("room"), r.PathValue("nickname")
	ws, err := rs.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	rs.mu.Lock()
	if rs.sockets[room] == nil {
		rs.sockets[room] = map[*websocket.Conn]struct{}{}
	}
	rs.sockets[room][ws] = struct{}{}
	rs.mu.Unlock()

	defer func() {
		rs.mu.Lock()
		delete(rs.sockets[room], ws)
		rs.mu.Unlock()
		_ = ws.Close()
	}()
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return
		}
		entry := roomEntry{Nickname: nickname, Content: string(data)}
		frame, _ := json.Marshal(entry)

		rs.mu.Lock()
		rs.history[room] = append(rs.history[room], entry)
		for peer := range rs.sockets[room] {
			if peer != ws {
				_ = peer.WriteMessage(websocket.TextMessage, frame)
			}
		}
		rs.mu.Unlock()
	}
}

// dropConnections cuts every socket of a room without a close handshake.
func (rs *roomServer) dropConnections(room string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for ws := range rs.sockets[room] {
		_ = ws.Close()
	}
}

// connected counts the sockets open on a room.
func (rs *roomServer) connected(room string) int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.sockets[room])
}
