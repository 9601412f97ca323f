package cards

import (
	"sort"
	"strings"
)

// Category is the hand-category ordinal. Higher category always beats lower.
type Category int

const (
	HighCard Category = iota + 1
	Pair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high_card"
	case Pair:
		return "pair"
	case TwoPairs:
		return "two_pairs"
	case ThreeOfAKind:
		return "three_of_a_kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full_house"
	case FourOfAKind:
		return "four_of_a_kind"
	case StraightFlush:
		return "straight_flush"
	case RoyalFlush:
		return "royal_flush"
	}
	return "unknown"
}

// Declaration is a claim about the union of all dealt cards, discriminated
// by Category. Field use per category:
//
//	HighCard, Pair, ThreeOfAKind, FourOfAKind: PrimaryRank
//	Straight, StraightFlush:                   PrimaryRank (starting rank), Suit for the flush
//	TwoPairs:   PrimaryRank = higher pair, SecondaryRank = lower pair
//	FullHouse:  PrimaryRank = triple, SecondaryRank = pair
//	Flush:      Suit + Ranks (5 distinct, kept sorted ascending)
//	RoyalFlush: Suit only (10..Ace implied)
type Declaration struct {
	Category      Category
	PrimaryRank   Rank
	SecondaryRank Rank
	Suit          Suit
	Ranks         []Rank
}

// maxRank is the flush tiebreak key. Ranks are kept sorted ascending.
func (d Declaration) maxRank() Rank {
	if len(d.Ranks) == 0 {
		return 0
	}
	return d.Ranks[len(d.Ranks)-1]
}

// Compare returns 1 if d outranks other, -1 if other outranks d, and 0 when
// neither is strictly greater. Equal-key declarations compare as 0, and so
// do same-max flushes and any two royal flushes: those are the two spots
// where a caller cannot raise within the category.
func (d Declaration) Compare(other Declaration) int {
	if d.Category != other.Category {
		if d.Category > other.Category {
			return 1
		}
		return -1
	}
	switch d.Category {
	case HighCard, Pair, ThreeOfAKind, FourOfAKind, Straight, StraightFlush:
		return cmpRank(d.PrimaryRank, other.PrimaryRank)
	case TwoPairs:
		if c := cmpRank(d.PrimaryRank, other.PrimaryRank); c != 0 {
			return c
		}
		return cmpRank(d.SecondaryRank, other.SecondaryRank)
	case FullHouse:
		if c := cmpRank(d.PrimaryRank, other.PrimaryRank); c != 0 {
			return c
		}
		return cmpRank(d.SecondaryRank, other.SecondaryRank)
	case Flush:
		return cmpRank(d.maxRank(), other.maxRank())
	case RoyalFlush:
		// All royal flushes are equal. Nothing outranks one; the next
		// player's only legal action is calling bluff.
		return 0
	}
	return 0
}

// GreaterThan is the strict raise test used by the turn cycle.
func (d Declaration) GreaterThan(other Declaration) bool {
	return d.Compare(other) > 0
}

func (d Declaration) Equal(other Declaration) bool {
	if d.Category != other.Category {
		return false
	}
	switch d.Category {
	case Flush:
		if d.Suit != other.Suit || len(d.Ranks) != len(other.Ranks) {
			return false
		}
		for i := range d.Ranks {
			if d.Ranks[i] != other.Ranks[i] {
				return false
			}
		}
		return true
	case RoyalFlush:
		return d.Suit == other.Suit
	case StraightFlush:
		return d.Suit == other.Suit && d.PrimaryRank == other.PrimaryRank
	default:
		return d.PrimaryRank == other.PrimaryRank && d.SecondaryRank == other.SecondaryRank
	}
}

func cmpRank(a, b Rank) int {
	if a > b {
		return 1
	}
	if a < b {
		return -1
	}
	return 0
}

// String renders the canonical long form; Parse accepts every string this
// produces.
func (d Declaration) String() string {
	switch d.Category {
	case HighCard:
		return "High Card " + d.PrimaryRank.String()
	case Pair:
		return "Pair of " + d.PrimaryRank.String() + "s"
	case TwoPairs:
		return "Two Pairs: " + d.PrimaryRank.String() + "s and " + d.SecondaryRank.String() + "s"
	case ThreeOfAKind:
		return "Three of a Kind: " + d.PrimaryRank.String() + "s"
	case Straight:
		return "Straight from " + d.PrimaryRank.String()
	case Flush:
		names := make([]string, len(d.Ranks))
		for i, r := range d.Ranks {
			names[i] = r.String()
		}
		return "Flush of " + d.Suit.Title() + ": " + strings.Join(names, ",")
	case FullHouse:
		return "Full House: 3 " + d.PrimaryRank.String() + "s and 2 " + d.SecondaryRank.String() + "s"
	case FourOfAKind:
		return "Four of a Kind: " + d.PrimaryRank.String() + "s"
	case StraightFlush:
		return "Straight Flush " + d.Suit.Title() + " from " + d.PrimaryRank.String()
	case RoyalFlush:
		return "Royal Flush " + d.Suit.Title()
	}
	return "Unknown Hand"
}

// Holds reports whether the declaration exists in the multiset of cards,
// using the per-category structural rules of the game.
func Holds(d Declaration, all []Card) bool {
	rankCounts := make(map[Rank]int)
	suitRanks := make(map[Suit]map[Rank]bool)
	for _, c := range all {
		rankCounts[c.Rank]++
		if suitRanks[c.Suit] == nil {
			suitRanks[c.Suit] = make(map[Rank]bool)
		}
		suitRanks[c.Suit][c.Rank] = true
	}

	switch d.Category {
	case HighCard:
		return rankCounts[d.PrimaryRank] >= 1
	case Pair:
		return rankCounts[d.PrimaryRank] >= 2
	case TwoPairs:
		return rankCounts[d.PrimaryRank] >= 2 && rankCounts[d.SecondaryRank] >= 2
	case ThreeOfAKind:
		return rankCounts[d.PrimaryRank] >= 3
	case FourOfAKind:
		return rankCounts[d.PrimaryRank] >= 4
	case FullHouse:
		return rankCounts[d.PrimaryRank] >= 3 && rankCounts[d.SecondaryRank] >= 2
	case Straight:
		for i := Rank(0); i < 5; i++ {
			if rankCounts[d.PrimaryRank+i] == 0 {
				return false
			}
		}
		return true
	case Flush:
		for _, r := range d.Ranks {
			if !suitRanks[d.Suit][r] {
				return false
			}
		}
		return true
	case StraightFlush:
		for i := Rank(0); i < 5; i++ {
			if !suitRanks[d.Suit][d.PrimaryRank+i] {
				return false
			}
		}
		return true
	case RoyalFlush:
		for r := Ten; r <= Ace; r++ {
			if !suitRanks[d.Suit][r] {
				return false
			}
		}
		return true
	}
	return false
}

func sortRanks(ranks []Rank) {
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
}
