package game

import "Farol/services/cards"

// Projections consumed by the gateway. State carries only public fields;
// hands travel exclusively through PrivateHands, SpectatorCards and the
// bluff reveal.

type PlayerInfo struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	CardCount    int    `json:"card_count"`
	Losses       int    `json:"losses"`
	IsEliminated bool   `json:"is_eliminated"`
}

type CallInfo struct {
	PlayerID string `json:"player_id"`
	Hand     string `json:"hand"`
}

type State struct {
	Phase               Phase        `json:"phase"`
	RoundNumber         int          `json:"round_number"`
	CurrentPlayerID     string       `json:"current_player_id,omitempty"`
	CurrentCall         *CallInfo    `json:"current_call,omitempty"`
	Players             []PlayerInfo `json:"players"`
	WaitingPlayersCount int          `json:"waiting_players_count"`
}

type SeatCards struct {
	UserID string       `json:"user_id"`
	Cards  []cards.Card `json:"cards"`
}

// State is the public snapshot broadcast in game_state_update.
func (r *Room) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := State{
		Phase:               r.phase,
		RoundNumber:         r.roundNumber,
		CurrentPlayerID:     r.currentID,
		Players:             make([]PlayerInfo, 0, len(r.seats)),
		WaitingPlayersCount: len(r.waiting),
	}
	if r.currentCall != nil {
		s.CurrentCall = &CallInfo{
			PlayerID: r.currentCall.PlayerID,
			Hand:     r.currentCall.Declaration.String(),
		}
	}
	for _, p := range r.seats {
		s.Players = append(s.Players, PlayerInfo{
			UserID:       p.UserID,
			Username:     p.Username,
			CardCount:    len(p.Hand),
			Losses:       p.Losses,
			IsEliminated: p.Eliminated,
		})
	}
	return s
}

// PrivateHand returns the player's own cards, nil for anyone unseated.
func (r *Room) PrivateHand(userID string) []cards.Card {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p := r.playerLocked(userID); p != nil {
		out := make([]cards.Card, len(p.Hand))
		copy(out, p.Hand)
		return out
	}
	return nil
}

// PrivateHands lists every active seat with its cards. Gateway use only:
// per-seat player_update frames and the spectator projection.
func (r *Room) PrivateHands() []SeatCards {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotHandsLocked()
}

func (r *Room) snapshotHandsLocked() []SeatCards {
	var out []SeatCards
	for _, p := range r.activeLocked() {
		if len(p.Hand) == 0 {
			continue
		}
		sc := SeatCards{UserID: p.UserID, Cards: make([]cards.Card, len(p.Hand))}
		copy(sc.Cards, p.Hand)
		out = append(out, sc)
	}
	return out
}

// SpectatorIDs lists users allowed to watch the live cards: the waiting
// queue plus eliminated seats, and only while a game is running.
func (r *Room) SpectatorIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhasePlaying {
		return nil
	}
	var ids []string
	for _, w := range r.waiting {
		ids = append(ids, w.UserID)
	}
	for _, p := range r.seats {
		if p.Eliminated {
			ids = append(ids, p.UserID)
		}
	}
	return ids
}

// SeatedIDs lists every seated user id, eliminated included.
func (r *Room) SeatedIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.seats))
	for _, p := range r.seats {
		ids = append(ids, p.UserID)
	}
	return ids
}

// WaitingUsernames is the queue roster shown privately to the host.
func (r *Room) WaitingUsernames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.waiting))
	for _, w := range r.waiting {
		names = append(names, w.Username)
	}
	return names
}
