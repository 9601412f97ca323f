package gateway

import (
	"encoding/json"
	"log"
)

// Frame is the wire envelope for both directions:
// {"type": "...", "data": {...}, "session_id": "..."}.
// session_id selects the room; absent means the default room.
type Frame struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	SessionID string          `json:"session_id,omitempty"`
}

// Inbound message types (client -> server).
const (
	MsgUserJoin    = "user_join"
	MsgGameStart   = "game_start"
	MsgGameRestart = "game_restart"
	MsgKickUser    = "kick_user"
	MsgCallHand    = "call_hand"
	MsgCallBluff   = "call_bluff"
)

// Outbound message types (server -> client / broadcast). MsgUserJoin and
// MsgCallBluff double as replies to their inbound counterparts.
const (
	MsgUsernameError   = "username_error"
	MsgGameStateUpdate = "game_state_update"
	MsgPlayerUpdate    = "player_update"
	MsgRoundStart      = "round_start"
	MsgShowCards       = "show_cards"
	MsgHostChanged     = "host_changed"
	MsgUserLeave       = "user_leave"
	MsgUserKicked      = "user_kicked"
	MsgWaitingForGame  = "waiting_for_game"
	MsgGameEnd         = "game_end"
	MsgError           = "error"
)

// Inbound payloads.

type userJoinRequest struct {
	Username string `json:"username"`
}

type userIDRequest struct {
	UserID string `json:"user_id"`
}

type kickUserRequest struct {
	HostID         string `json:"host_id"`
	TargetUsername string `json:"target_username"`
}

type callHandRequest struct {
	UserID   string `json:"user_id"`
	HandSpec string `json:"hand_spec"`
}

// encodeFrame marshals an outbound frame. Payloads are server-built so a
// marshal failure is a programming error; it is logged and dropped rather
// than tearing the connection down.
func encodeFrame(msgType string, data interface{}) []byte {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("[WS] failed to marshal %s payload: %v", msgType, err)
		return nil
	}
	raw, err := json.Marshal(Frame{Type: msgType, Data: payload})
	if err != nil {
		log.Printf("[WS] failed to marshal %s frame: %v", msgType, err)
		return nil
	}
	return raw
}
