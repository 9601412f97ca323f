package gateway

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"Farol/config"
	"Farol/services/game"
	"Farol/services/redis"
	"Farol/services/registry"
)

// DefaultRoomID keys the room used by clients that send no session_id
// (the single-room deployment).
const DefaultRoomID = "default"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Browser clients connect from arbitrary origins, same stance as the
	// wide-open CORS policy on the REST side.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub is the sole I/O surface of the server. It owns every connection and
// every room, routes inbound frames to the owning room, and projects room
// results back out as broadcast plus per-seat private frames. It never
// mutates room state itself; rooms are the single writers.
type Hub struct {
	cfg config.Config
	reg *registry.Registry
	rc  *redis.RedisClient

	mu      sync.RWMutex
	rooms   map[string]*game.Room
	clients map[string]*Client // userID -> connection
}

func NewHub(cfg config.Config, reg *registry.Registry, rc *redis.RedisClient) *Hub {
	return &Hub{
		cfg:     cfg,
		reg:     reg,
		rc:      rc,
		rooms:   make(map[string]*game.Room),
		clients: make(map[string]*Client),
	}
}

// ServeWS upgrades the HTTP request and runs the connection's pumps.
func (h *Hub) ServeWS() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] upgrade failed: %v", err)
			return
		}
		client := newClient(h, conn)
		log.Printf("[WS] new connection from %s", conn.RemoteAddr())
		go client.writePump()
		go client.readPump()
	}
}

// roomFor returns the room for a session id, creating it on first join.
func (h *Hub) roomFor(sessionID string) *game.Room {
	if sessionID == "" {
		sessionID = DefaultRoomID
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[sessionID]
	if !ok {
		room = game.NewRoom(sessionID, h.cfg.MaxPlayers, h.cfg.RNGSeed)
		h.rooms[sessionID] = room
		log.Printf("[ROOM] created room %s", sessionID)
	}
	return room
}

func (h *Hub) bindClient(c *Client) {
	h.mu.Lock()
	h.clients[c.userID] = c
	h.mu.Unlock()
}

func (h *Hub) clientByID(userID string) *Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clients[userID]
}

// roomClients snapshots the connections currently bound to a room.
func (h *Hub) roomClients(room *game.Room) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []*Client
	for _, c := range h.clients {
		if c.room == room {
			out = append(out, c)
		}
	}
	return out
}

// broadcast fans a frame out to every connection in the room. Frames for
// one room are encoded once and enqueued in a single pass, so all
// observers see the same sequence.
func (h *Hub) broadcast(room *game.Room, msgType string, data interface{}) {
	msg := encodeFrame(msgType, data)
	for _, c := range h.roomClients(room) {
		c.enqueue(msg)
	}
}

func (h *Hub) sendToUser(userID, msgType string, data interface{}) {
	if c := h.clientByID(userID); c != nil {
		c.sendFrame(msgType, data)
	}
}

// unregister tears one connection down: room leave, registry release, and
// the usual departure broadcasts. Runs exactly once per connection from
// the readPump defer.
func (h *Hub) unregister(c *Client) {
	c.shutdown()
	if c.userID == "" {
		return
	}

	h.mu.Lock()
	if h.clients[c.userID] == c {
		delete(h.clients, c.userID)
	}
	h.mu.Unlock()

	room := c.room
	res := room.Leave(c.userID)
	h.reg.Release(c.userID)
	log.Printf("[DISCONNECT] %s left (seated=%v)", c.username, res.WasSeated)

	if res.WasPresent {
		h.broadcast(room, MsgUserLeave, gin.H{"username": c.username})
	}
	if res.GameEnd != nil {
		h.finishGame(room, res.GameEnd)
	}
	if res.HostChange != nil {
		h.broadcastHostChange(room, res.HostChange)
	}
	h.broadcastGameState(room)
	h.reapRoom(room)
}

// reapRoom destroys a room once its last connection is gone and nobody is
// queued for it.
func (h *Hub) reapRoom(room *game.Room) {
	if !room.IsEmpty() {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if current, ok := h.rooms[room.ID]; ok && current == room && len(h.roomClientsLocked(room)) == 0 {
		delete(h.rooms, room.ID)
		log.Printf("[ROOM] destroyed room %s", room.ID)
	}
}

func (h *Hub) roomClientsLocked(room *game.Room) []*Client {
	var out []*Client
	for _, c := range h.clients {
		if c.room == room {
			out = append(out, c)
		}
	}
	return out
}

func (h *Hub) broadcastHostChange(room *game.Room, hc *game.HostChange) {
	h.broadcast(room, MsgHostChanged, gin.H{
		"new_host": hc.NewHostName,
		"host_id":  hc.NewHostID,
	})
}

// finishGame applies the persistent counter side effects of a game end and
// announces the winner.
func (h *Hub) finishGame(room *game.Room, ge *game.GameEnd) {
	if ge.WinnerID != "" {
		if err := h.reg.RecordWin(ge.WinnerID); err != nil {
			log.Printf("[REGISTRY] recording win for %s: %v", ge.WinnerName, err)
		}
	}
	for _, id := range ge.ParticipantIDs {
		if err := h.reg.RecordGame(id); err != nil {
			log.Printf("[REGISTRY] recording game for %s: %v", id, err)
		}
	}
	h.broadcast(room, MsgGameEnd, gin.H{
		"winner_id": ge.WinnerID,
		"winner":    ge.WinnerName,
		"message":   ge.WinnerName + " wins the game!",
	})
}

// broadcastGameState ships the public snapshot to every connection in the
// room. Spectators (queued or eliminated users) additionally get the live
// cards; active players never see anyone's hand here. The host also gets
// the waiting-list roster as a private player_update.
func (h *Hub) broadcastGameState(room *game.Room) {
	state := room.State()
	online := h.reg.OnlineUsernames()

	public := gin.H{"game_state": state, "online_users": online}

	hands := room.PrivateHands()
	spectatorIDs := room.SpectatorIDs()
	if len(hands) > 0 && len(spectatorIDs) > 0 {
		spectators := make(map[string]bool, len(spectatorIDs))
		for _, id := range spectatorIDs {
			spectators[id] = true
		}
		withCards := encodeFrame(MsgGameStateUpdate, gin.H{
			"game_state":          state,
			"online_users":        online,
			"current_round_cards": hands,
		})
		withoutCards := encodeFrame(MsgGameStateUpdate, public)
		for _, c := range h.roomClients(room) {
			if spectators[c.userID] {
				c.enqueue(withCards)
			} else {
				c.enqueue(withoutCards)
			}
		}
	} else {
		h.broadcast(room, MsgGameStateUpdate, public)
	}

	if roster := room.WaitingUsernames(); len(roster) > 0 {
		h.sendToUser(room.HostID(), MsgPlayerUpdate, gin.H{"waiting_list": roster})
	}
}

// sendPrivateHands delivers each seat its own fresh hand. Always called
// before the game_state_update that references the new round.
func (h *Hub) sendPrivateHands(room *game.Room) {
	for _, sc := range room.PrivateHands() {
		h.sendToUser(sc.UserID, MsgPlayerUpdate, gin.H{"your_cards": sc.Cards})
	}
}
