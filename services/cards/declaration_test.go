package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOrdering(t *testing.T) {
	ordered := []Declaration{
		{Category: HighCard, PrimaryRank: Ace},
		{Category: Pair, PrimaryRank: Two},
		{Category: TwoPairs, PrimaryRank: Three, SecondaryRank: Two},
		{Category: ThreeOfAKind, PrimaryRank: Two},
		{Category: Straight, PrimaryRank: Two},
		{Category: Flush, Suit: Hearts, Ranks: []Rank{Two, Three, Four, Five, Seven}},
		{Category: FullHouse, PrimaryRank: Two, SecondaryRank: Three},
		{Category: FourOfAKind, PrimaryRank: Two},
		{Category: StraightFlush, Suit: Hearts, PrimaryRank: Two},
		{Category: RoyalFlush, Suit: Hearts},
	}

	// Any higher category beats any lower one, whatever the ranks.
	for i := range ordered {
		for j := range ordered {
			if i < j {
				assert.True(t, ordered[j].GreaterThan(ordered[i]),
					"%s should beat %s", ordered[j], ordered[i])
				assert.False(t, ordered[i].GreaterThan(ordered[j]),
					"%s should not beat %s", ordered[i], ordered[j])
			}
		}
	}
}

func TestTieBreaks(t *testing.T) {
	t.Run("single rank categories", func(t *testing.T) {
		lo := Declaration{Category: Pair, PrimaryRank: King}
		hi := Declaration{Category: Pair, PrimaryRank: Ace}
		assert.True(t, hi.GreaterThan(lo))
		assert.False(t, lo.GreaterThan(hi))
		assert.False(t, lo.GreaterThan(lo))
	})

	t.Run("two pairs by max then min", func(t *testing.T) {
		a := Declaration{Category: TwoPairs, PrimaryRank: Ten, SecondaryRank: Three}
		b := Declaration{Category: TwoPairs, PrimaryRank: Ten, SecondaryRank: Five}
		c := Declaration{Category: TwoPairs, PrimaryRank: Jack, SecondaryRank: Two}
		assert.True(t, b.GreaterThan(a))
		assert.True(t, c.GreaterThan(b))
		assert.False(t, a.GreaterThan(a))
	})

	t.Run("full house by triple then pair", func(t *testing.T) {
		a := Declaration{Category: FullHouse, PrimaryRank: Seven, SecondaryRank: Ace}
		b := Declaration{Category: FullHouse, PrimaryRank: Eight, SecondaryRank: Two}
		c := Declaration{Category: FullHouse, PrimaryRank: Eight, SecondaryRank: Three}
		assert.True(t, b.GreaterThan(a), "triple wins over a bigger pair")
		assert.True(t, c.GreaterThan(b))
	})

	t.Run("flush compares max rank only", func(t *testing.T) {
		a := Declaration{Category: Flush, Suit: Hearts, Ranks: []Rank{Two, Three, Four, Five, Ace}}
		b := Declaration{Category: Flush, Suit: Spades, Ranks: []Rank{Nine, Ten, Jack, Queen, Ace}}
		c := Declaration{Category: Flush, Suit: Clubs, Ranks: []Rank{Two, Three, Four, Five, King}}

		// Same max: neither is greater, a raise within the category must
		// lift the max.
		assert.False(t, a.GreaterThan(b))
		assert.False(t, b.GreaterThan(a))
		assert.True(t, a.GreaterThan(c))
	})

	t.Run("royal flush is terminal", func(t *testing.T) {
		hearts := Declaration{Category: RoyalFlush, Suit: Hearts}
		spades := Declaration{Category: RoyalFlush, Suit: Spades}
		assert.False(t, hearts.GreaterThan(spades))
		assert.False(t, spades.GreaterThan(hearts))
	})
}

func TestOrderingTotality(t *testing.T) {
	// For every distinct pair exactly one of gt(a,b), gt(b,a) or key
	// equality holds.
	decls := []Declaration{
		{Category: HighCard, PrimaryRank: Nine},
		{Category: HighCard, PrimaryRank: Ace},
		{Category: Pair, PrimaryRank: Nine},
		{Category: Pair, PrimaryRank: Nine},
		{Category: TwoPairs, PrimaryRank: Nine, SecondaryRank: Four},
		{Category: TwoPairs, PrimaryRank: Nine, SecondaryRank: Two},
		{Category: Straight, PrimaryRank: Five},
		{Category: Flush, Suit: Hearts, Ranks: []Rank{Two, Five, Six, Seven, King}},
		{Category: Flush, Suit: Clubs, Ranks: []Rank{Three, Five, Six, Seven, King}},
		{Category: FullHouse, PrimaryRank: Four, SecondaryRank: Nine},
		{Category: StraightFlush, Suit: Spades, PrimaryRank: Nine},
		{Category: RoyalFlush, Suit: Diamonds},
		{Category: RoyalFlush, Suit: Clubs},
	}
	for i, a := range decls {
		for j, b := range decls {
			if i == j {
				continue
			}
			gtAB := a.GreaterThan(b)
			gtBA := b.GreaterThan(a)
			tied := a.Compare(b) == 0
			count := 0
			for _, v := range []bool{gtAB, gtBA, tied} {
				if v {
					count++
				}
			}
			assert.Equal(t, 1, count, "exactly one relation must hold for %s vs %s", a, b)
		}
	}
}

func TestHolds(t *testing.T) {
	union := []Card{
		{Hearts, King}, {Clubs, King}, {Spades, King},
		{Hearts, Four}, {Diamonds, Four},
		{Hearts, Five}, {Hearts, Six}, {Hearts, Seven}, {Hearts, Eight},
		{Spades, Ace},
	}

	cases := []struct {
		name string
		decl Declaration
		want bool
	}{
		{"high card present", Declaration{Category: HighCard, PrimaryRank: Ace}, true},
		{"high card absent", Declaration{Category: HighCard, PrimaryRank: Two}, false},
		{"pair present", Declaration{Category: Pair, PrimaryRank: Four}, true},
		{"pair absent", Declaration{Category: Pair, PrimaryRank: Ace}, false},
		{"two pairs present", Declaration{Category: TwoPairs, PrimaryRank: King, SecondaryRank: Four}, true},
		{"two pairs half missing", Declaration{Category: TwoPairs, PrimaryRank: King, SecondaryRank: Five}, false},
		{"three of a kind present", Declaration{Category: ThreeOfAKind, PrimaryRank: King}, true},
		{"three of a kind short", Declaration{Category: ThreeOfAKind, PrimaryRank: Four}, false},
		{"four of a kind short", Declaration{Category: FourOfAKind, PrimaryRank: King}, false},
		{"full house present", Declaration{Category: FullHouse, PrimaryRank: King, SecondaryRank: Four}, true},
		{"full house missing pair", Declaration{Category: FullHouse, PrimaryRank: King, SecondaryRank: Two}, false},
		{"straight present", Declaration{Category: Straight, PrimaryRank: Four}, true},
		{"straight broken", Declaration{Category: Straight, PrimaryRank: Five}, false},
		{"flush present", Declaration{Category: Flush, Suit: Hearts,
			Ranks: []Rank{Four, Five, Six, Seven, Eight}}, true},
		{"flush wrong suit", Declaration{Category: Flush, Suit: Clubs,
			Ranks: []Rank{Four, Five, Six, Seven, Eight}}, false},
		{"straight flush present", Declaration{Category: StraightFlush, Suit: Hearts, PrimaryRank: Four}, true},
		{"straight flush broken", Declaration{Category: StraightFlush, Suit: Hearts, PrimaryRank: Five}, false},
		{"royal flush absent", Declaration{Category: RoyalFlush, Suit: Hearts}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Holds(tc.decl, union))
		})
	}

	t.Run("four of a kind needs all four", func(t *testing.T) {
		quad := []Card{{Hearts, Nine}, {Diamonds, Nine}, {Clubs, Nine}, {Spades, Nine}}
		assert.True(t, Holds(Declaration{Category: FourOfAKind, PrimaryRank: Nine}, quad))
	})

	t.Run("royal flush present", func(t *testing.T) {
		royal := []Card{
			{Spades, Ten}, {Spades, Jack}, {Spades, Queen}, {Spades, King}, {Spades, Ace},
			{Hearts, Two},
		}
		assert.True(t, Holds(Declaration{Category: RoyalFlush, Suit: Spades}, royal))
		assert.False(t, Holds(Declaration{Category: RoyalFlush, Suit: Hearts}, royal))
	})
}
