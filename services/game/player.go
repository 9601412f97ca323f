package game

import "Farol/services/cards"

// Player is one seated participant. Hand is only ever shipped to the owning
// connection (private projection); everyone else sees CardCount.
type Player struct {
	UserID     string
	Username   string
	Losses     int
	Eliminated bool
	Hand       []cards.Card
}

// NextRoundCards is how many cards the player is dealt at the next deal.
// The invariant during a round is cardCount = losses + 1.
func (p *Player) NextRoundCards() int {
	return p.Losses + 1
}

// waiter is a queued user who joined while the room was full or playing.
type waiter struct {
	UserID   string
	Username string
}
