package cards

import "math/rand"

// Deck is a standard 52-card deck. Cards are dealt from the end.
type Deck struct {
	cards []Card
}

func NewDeck() *Deck {
	d := &Deck{}
	d.Reset()
	return d
}

// Reset restores the full 52 distinct cards in suit-then-rank order.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{Suit: suit, Rank: rank})
		}
	}
}

// Shuffle permutes the deck with the given source. The room owns the RNG so
// deals stay seedable in tests and crypto-seeded in production.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns up to n cards.
func (d *Deck) Deal(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	dealt := make([]Card, n)
	copy(dealt, d.cards[len(d.cards)-n:])
	d.cards = d.cards[:len(d.cards)-n]
	return dealt
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
