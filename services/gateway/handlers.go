package gateway

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

// Command handlers. Each one runs on the sender's read goroutine, so
// commands from a single connection are processed strictly in order. All
// room mutation happens inside the room's own command methods; handlers
// only translate results into frames.

func (h *Hub) handleUserJoin(c *Client, frame Frame) {
	if c.userID != "" {
		c.sendError("Already joined")
		return
	}

	var req userJoinRequest
	if err := json.Unmarshal(frame.Data, &req); err != nil {
		c.sendError("Invalid message format")
		return
	}
	username := strings.TrimSpace(req.Username)

	session, err := h.reg.Claim(username)
	if err != nil {
		c.sendFrame(MsgUsernameError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.userID = session.UserID
	c.username = session.Username
	c.room = h.roomFor(frame.SessionID)
	h.bindClient(c)

	res := c.room.Join(c.userID, c.username)

	leaderboard, lbErr := h.reg.Leaderboard(20)
	if lbErr != nil {
		log.Printf("[JOIN] leaderboard unavailable: %v", lbErr)
	}

	c.sendFrame(MsgUserJoin, gin.H{
		"success":     true,
		"user_id":     c.userID,
		"username":    c.username,
		"is_host":     res.IsHost,
		"message":     "Successfully joined the game",
		"leaderboard": leaderboard,
	})

	if !res.Seated {
		c.sendFrame(MsgWaitingForGame, gin.H{
			"message": "Game in progress, please wait for the next game",
		})
	}

	log.Printf("[JOIN] %s joined room %s (seated=%v, host=%v)",
		c.username, c.room.ID, res.Seated, res.IsHost)
	h.broadcastGameState(c.room)
}

func (h *Hub) handleGameStart(c *Client, frame Frame) {
	var req userIDRequest
	if err := json.Unmarshal(frame.Data, &req); err != nil || !c.authorized(req.UserID) {
		c.sendError("Invalid game_start request")
		return
	}

	ri, err := c.room.Start(c.userID)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	h.broadcast(c.room, MsgGameStart, gin.H{"message": "Game started!"})
	h.sendPrivateHands(c.room)
	h.broadcast(c.room, MsgRoundStart, gin.H{
		"round_number":      ri.RoundNumber,
		"current_player_id": ri.CurrentPlayerID,
	})
	h.broadcastGameState(c.room)
}

func (h *Hub) handleGameRestart(c *Client, frame Frame) {
	var req userIDRequest
	if err := json.Unmarshal(frame.Data, &req); err != nil || !c.authorized(req.UserID) {
		c.sendError("Invalid game_restart request")
		return
	}

	if err := c.room.Restart(c.userID); err != nil {
		c.sendError(err.Error())
		return
	}

	h.broadcast(c.room, MsgGameRestart, gin.H{"message": "Game restarted!"})
	h.broadcastGameState(c.room)
}

func (h *Hub) handleKickUser(c *Client, frame Frame) {
	var req kickUserRequest
	if err := json.Unmarshal(frame.Data, &req); err != nil || !c.authorized(req.HostID) {
		c.sendError("Invalid kick_user request")
		return
	}

	targetID, err := c.room.ResolveKick(c.userID, req.TargetUsername)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	target := h.clientByID(targetID)
	if target == nil {
		c.sendError("Target is not connected")
		return
	}

	log.Printf("[KICK] host %s kicks %s from room %s", c.username, req.TargetUsername, c.room.ID)
	target.sendFrame(MsgUserKicked, gin.H{"message": "You have been kicked by the host"})
	// Departure bookkeeping (room leave, broadcasts, registry release)
	// rides on the connection teardown, same path as a disconnect.
	target.shutdown()
}

func (h *Hub) handleCallHand(c *Client, frame Frame) {
	var req callHandRequest
	if err := json.Unmarshal(frame.Data, &req); err != nil || !c.authorized(req.UserID) {
		c.sendError("Invalid call_hand request")
		return
	}
	if strings.TrimSpace(req.HandSpec) == "" {
		c.sendError("Hand specification is required")
		return
	}

	if _, err := c.room.CallHand(c.userID, req.HandSpec); err != nil {
		c.sendError(err.Error())
		return
	}
	h.broadcastGameState(c.room)
}

func (h *Hub) handleCallBluff(c *Client, frame Frame) {
	var req userIDRequest
	if err := json.Unmarshal(frame.Data, &req); err != nil || !c.authorized(req.UserID) {
		c.sendError("Invalid call_bluff request")
		return
	}

	res, err := c.room.CallBluff(c.userID)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	h.broadcast(c.room, MsgShowCards, gin.H{})
	h.broadcast(c.room, MsgCallBluff, gin.H{
		"message":              res.Message,
		"loser_id":             res.LoserID,
		"previous_round_cards": res.Reveal,
	})

	if res.GameEnd != nil {
		h.finishGame(c.room, res.GameEnd)
	}
	if res.HostChange != nil {
		h.broadcastHostChange(c.room, res.HostChange)
	}
	if res.NextRound != nil {
		h.sendPrivateHands(c.room)
		h.broadcast(c.room, MsgRoundStart, gin.H{
			"round_number":      res.NextRound.RoundNumber,
			"current_player_id": res.NextRound.CurrentPlayerID,
		})
	}
	h.broadcastGameState(c.room)
}

// authorized checks that the user_id a command claims matches the identity
// bound to this connection at join time.
func (c *Client) authorized(userID string) bool {
	return c.userID != "" && c.userID == userID
}
