package cards

import "fmt"

// Suit matches the wire encoding directly ("hearts", "diamonds", ...).
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Rank 2..10 plus Jack=11, Queen=12, King=13, Ace=14. Aces are always high,
// there is no low-ace straight in this game.
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

var rankNames = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "10", Jack: "Jack", Queen: "Queen",
	King: "King", Ace: "Ace",
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

func (s Suit) Valid() bool {
	switch s {
	case Hearts, Diamonds, Clubs, Spades:
		return true
	}
	return false
}

// Title is the display form used in canonical declaration strings
// ("Hearts", "Spades", ...).
func (s Suit) Title() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	}
	return string(s)
}

// Card is a single playing card. The JSON shape is the wire card literal.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

var suitGlyphs = map[Suit]string{Hearts: "♥", Diamonds: "♦", Clubs: "♣", Spades: "♠"}

func (c Card) String() string {
	return c.Rank.String() + suitGlyphs[c.Suit]
}
