package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		spec string
		want Declaration
	}{
		{"high card ace", Declaration{Category: HighCard, PrimaryRank: Ace}},
		{"highcard 7", Declaration{Category: HighCard, PrimaryRank: Seven}},
		{"pair of kings", Declaration{Category: Pair, PrimaryRank: King}},
		{"pair 3s", Declaration{Category: Pair, PrimaryRank: Three}},
		{"PAIR OF QUEENS", Declaration{Category: Pair, PrimaryRank: Queen}},
		{"two pairs: jacks and 7s", Declaration{Category: TwoPairs, PrimaryRank: Jack, SecondaryRank: Seven}},
		{"two pair 4 and 9", Declaration{Category: TwoPairs, PrimaryRank: Nine, SecondaryRank: Four}},
		{"three of a kind: aces", Declaration{Category: ThreeOfAKind, PrimaryRank: Ace}},
		{"3 of a kind 10", Declaration{Category: ThreeOfAKind, PrimaryRank: Ten}},
		{"straight from 5", Declaration{Category: Straight, PrimaryRank: Five}},
		{"straight from 10", Declaration{Category: Straight, PrimaryRank: Ten}},
		{"flush of hearts: 2,5,7,king,ace", Declaration{Category: Flush, Suit: Hearts,
			Ranks: []Rank{Two, Five, Seven, King, Ace}}},
		{"flush of ♠ 9 j q k a", Declaration{Category: Flush, Suit: Spades,
			Ranks: []Rank{Nine, Jack, Queen, King, Ace}}},
		{"full house: 3 jacks and 2 10s", Declaration{Category: FullHouse, PrimaryRank: Jack, SecondaryRank: Ten}},
		{"four of a kind: aces", Declaration{Category: FourOfAKind, PrimaryRank: Ace}},
		{"4 of a kind 2", Declaration{Category: FourOfAKind, PrimaryRank: Two}},
		{"straight flush spades from 9", Declaration{Category: StraightFlush, Suit: Spades, PrimaryRank: Nine}},
		{"straight flush ♦ from 2", Declaration{Category: StraightFlush, Suit: Diamonds, PrimaryRank: Two}},
		{"royal flush diamonds", Declaration{Category: RoyalFlush, Suit: Diamonds}},
		{"royal flush ♥", Declaration{Category: RoyalFlush, Suit: Hearts}},
		{"  pair   of   kings  ", Declaration{Category: Pair, PrimaryRank: King}},
	}
	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			got, err := Parse(tc.spec)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)
			assert.Equal(t, tc.want.Suit, got.Suit)
		})
	}
}

func TestParseRejects(t *testing.T) {
	specs := []string{
		"",
		"   ",
		"banana",
		"pair of 1",
		"pair of 11",
		"high card joker",
		"two pairs 5 and 5",
		"full house: 3 kings and 2 kings",
		"straight from jack",
		"straight from ace",
		"straight flush hearts from 10",
		"flush of hearts: 2,5,7",
		"flush of hearts: 2,2,5,7,9",
		"flush of sprockets: 2,5,7,9,j",
		"royal flush",
		"royal flush 10",
	}
	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			_, err := Parse(spec)
			require.Error(t, err)
			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

// Every canonical rendering must parse back to an equal declaration, so
// the current_call string shown to clients is itself a legal raise input.
func TestParseRoundTrip(t *testing.T) {
	decls := []Declaration{
		{Category: HighCard, PrimaryRank: Ace},
		{Category: Pair, PrimaryRank: Ten},
		{Category: TwoPairs, PrimaryRank: King, SecondaryRank: Seven},
		{Category: ThreeOfAKind, PrimaryRank: Jack},
		{Category: Straight, PrimaryRank: Ten},
		{Category: Flush, Suit: Hearts, Ranks: []Rank{Two, Five, Seven, King, Ace}},
		{Category: FullHouse, PrimaryRank: Jack, SecondaryRank: Ten},
		{Category: FourOfAKind, PrimaryRank: Ace},
		{Category: StraightFlush, Suit: Spades, PrimaryRank: Nine},
		{Category: RoyalFlush, Suit: Diamonds},
	}
	for _, d := range decls {
		t.Run(d.String(), func(t *testing.T) {
			got, err := Parse(d.String())
			require.NoError(t, err)
			assert.True(t, got.Equal(d), "round trip changed %s into %s", d, got)
		})
	}
}

func TestTwoPairsCanonicalOrder(t *testing.T) {
	a, err := Parse("two pairs 3 and 7")
	require.NoError(t, err)
	b, err := Parse("two pairs 7 and 3")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, Seven, a.PrimaryRank)
	assert.Equal(t, Three, a.SecondaryRank)
}
