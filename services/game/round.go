package game

import (
	"fmt"
	"log"

	"Farol/services/cards"
)

type CallResult struct {
	Declaration  cards.Declaration
	NextPlayerID string
}

type BluffResult struct {
	Message    string
	Holds      bool
	LoserID    string
	Reveal     []SeatCards
	HostChange *HostChange
	GameEnd    *GameEnd
	NextRound  *RoundInfo
}

// startRoundLocked deals the next round: fresh shuffled deck, losses+1
// cards per active player, cleared call, cursor on the starting seat.
// Round 1 starts at a random seat; later rounds rotate clockwise from the
// previous round's starter, skipping eliminated seats.
func (r *Room) startRoundLocked() *RoundInfo {
	r.roundNumber++
	active := r.activeLocked()
	if len(active) == 0 {
		return nil
	}

	var starter *Player
	switch {
	case r.roundNumber == 1:
		starter = active[r.rng.Intn(len(active))]
	case r.starterID == "":
		starter = active[0]
	default:
		starter = r.playerLocked(r.nextActiveAfterLocked(r.starterID))
		if starter == nil || starter.Eliminated {
			starter = active[0]
		}
	}

	deck := cards.NewDeck()
	deck.Shuffle(r.rng)
	for _, p := range active {
		p.Hand = deck.Deal(p.NextRoundCards())
	}

	r.currentCall = nil
	r.starterID = starter.UserID
	r.currentID = starter.UserID
	log.Printf("[ROOM] room %s round %d, %s starts", r.ID, r.roundNumber, starter.Username)
	return &RoundInfo{RoundNumber: r.roundNumber, CurrentPlayerID: starter.UserID}
}

// CallHand parses and commits a declaration for the player at the turn
// cursor. The new call must strictly outrank the one on the table, and
// nothing outranks a royal flush.
func (r *Room) CallHand(userID, spec string) (*CallResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhasePlaying {
		return nil, ErrWrongPhase
	}
	p := r.playerLocked(userID)
	if p == nil || p.Eliminated {
		return nil, ErrNotSeated
	}
	if r.currentID != userID {
		return nil, ErrNotYourTurn
	}

	decl, err := cards.Parse(spec)
	if err != nil {
		return nil, err
	}
	if r.currentCall != nil {
		if r.currentCall.Declaration.Category == cards.RoyalFlush {
			return nil, ErrRoyalStands
		}
		if !decl.GreaterThan(r.currentCall.Declaration) {
			return nil, ErrCallTooLow
		}
	}

	r.currentCall = &Call{PlayerID: userID, Declaration: decl}
	r.currentID = r.nextActiveAfterLocked(userID)
	log.Printf("[ROOM] room %s: %s calls %s", r.ID, p.Username, decl)
	return &CallResult{Declaration: decl, NextPlayerID: r.currentID}, nil
}

// CallBluff resolves the round. The declaration on the table is tested
// against the union of all active players' hands: if it holds the accuser
// loses, otherwise the caller does.
func (r *Room) CallBluff(userID string) (*BluffResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhasePlaying {
		return nil, ErrWrongPhase
	}
	p := r.playerLocked(userID)
	if p == nil || p.Eliminated {
		return nil, ErrNotSeated
	}
	if r.currentID != userID {
		return nil, ErrNotYourTurn
	}
	if r.currentCall == nil {
		return nil, ErrNoCurrentCall
	}

	var union []cards.Card
	for _, ap := range r.activeLocked() {
		union = append(union, ap.Hand...)
	}
	holds := cards.Holds(r.currentCall.Declaration, union)

	res := &BluffResult{
		Holds:  holds,
		Reveal: r.snapshotHandsLocked(),
	}
	if holds {
		res.LoserID = userID
		res.Message = fmt.Sprintf("Bluff called! %s exists", r.currentCall.Declaration)
	} else {
		res.LoserID = r.currentCall.PlayerID
		res.Message = fmt.Sprintf("Bluff called! %s does not exist", r.currentCall.Declaration)
	}
	log.Printf("[ROOM] room %s: %s calls bluff on %s (holds=%v)",
		r.ID, p.Username, r.currentCall.Declaration, holds)

	res.HostChange, res.GameEnd, res.NextRound = r.endRoundLocked(res.LoserID)
	return res, nil
}

// endRoundLocked charges the loss, eliminates at five losses, keeps the
// host seat valid, and either deals the next round or ends the game when
// a single active player remains.
func (r *Room) endRoundLocked(loserID string) (*HostChange, *GameEnd, *RoundInfo) {
	r.reveal = r.snapshotHandsLocked()

	if loser := r.playerLocked(loserID); loser != nil && !loser.Eliminated {
		loser.Losses++
		if loser.Losses >= 5 {
			loser.Eliminated = true
			log.Printf("[ROOM] room %s: %s eliminated", r.ID, loser.Username)
		}
	}

	for _, p := range r.seats {
		p.Hand = nil
	}
	r.currentCall = nil

	var hc *HostChange
	if host := r.playerLocked(r.hostID); host == nil || host.Eliminated {
		hc = r.pickHostLocked()
	}

	if len(r.activeLocked()) <= 1 {
		return hc, r.endGameLocked(), nil
	}
	return hc, nil, r.startRoundLocked()
}

// endGameLocked declares the last standing player winner, reports the
// counter side effects, and rolls the room back to the waiting phase with
// the queue admitted.
func (r *Room) endGameLocked() *GameEnd {
	ge := &GameEnd{}
	for _, p := range r.seats {
		ge.ParticipantIDs = append(ge.ParticipantIDs, p.UserID)
	}
	if active := r.activeLocked(); len(active) > 0 {
		ge.WinnerID = active[0].UserID
		ge.WinnerName = active[0].Username
		log.Printf("[ROOM] room %s: game over, %s wins", r.ID, active[0].Username)
	}
	r.phase = PhaseEnded
	r.resetToWaitingLocked()
	return ge
}
