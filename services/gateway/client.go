package gateway

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"Farol/services/game"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBuffer     = 64
)

// Client is one websocket connection. All writes go through the send
// channel and the single writePump goroutine, so there is never more than
// one in-flight write per socket. send is never closed: broadcasts enqueue
// from other connections' goroutines, so teardown is signalled on done
// instead and only the writePump acts on it.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	done chan struct{}

	closeOnce sync.Once

	// Set once on a successful user_join, read only from the readPump
	// goroutine afterwards.
	userID   string
	username string
	room     *game.Room
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

// enqueue queues an outbound frame. Frames for a closed client are
// dropped; a client that cannot drain its buffer is written off as dead
// and torn down.
func (c *Client) enqueue(msg []byte) {
	if msg == nil {
		return
	}
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.send <- msg:
	case <-c.done:
	default:
		log.Printf("[WS] send buffer full, dropping connection of %q", c.username)
		c.shutdown()
	}
}

func (c *Client) sendFrame(msgType string, data interface{}) {
	c.enqueue(encodeFrame(msgType, data))
}

func (c *Client) sendError(message string) {
	c.sendFrame(MsgError, gin.H{"message": message})
}

// shutdown signals teardown exactly once. Safe from any goroutine: the
// writePump drains what is queued, sends a close frame and drops the TCP
// connection, which in turn unblocks the readPump and triggers the hub
// teardown.
func (c *Client) shutdown() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] read error: %v", err)
			}
			return
		}
		c.handleFrame(raw)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-c.done:
			// Flush whatever was queued before the shutdown (the kick
			// notice rides this path), then close.
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			for {
				select {
				case msg := <-c.send:
					if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
						return
					}
				default:
					c.conn.WriteMessage(websocket.CloseMessage, []byte{})
					return
				}
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleFrame decodes one inbound frame and dispatches it. Malformed input
// earns an error frame and keeps the connection alive.
func (c *Client) handleFrame(raw []byte) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		c.sendError("Invalid message format")
		return
	}

	switch frame.Type {
	case MsgUserJoin:
		c.hub.handleUserJoin(c, frame)
	case MsgGameStart:
		c.hub.handleGameStart(c, frame)
	case MsgGameRestart:
		c.hub.handleGameRestart(c, frame)
	case MsgKickUser:
		c.hub.handleKickUser(c, frame)
	case MsgCallHand:
		c.hub.handleCallHand(c, frame)
	case MsgCallBluff:
		c.hub.handleCallBluff(c, frame)
	default:
		log.Printf("[WS] unknown message type %q from %q", frame.Type, c.username)
		c.sendError("Unknown message type: " + frame.Type)
	}
}
