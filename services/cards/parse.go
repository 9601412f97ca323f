package cards

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseError marks a hand specification the parser could not accept. The
// gateway replies with an error frame to the caller only and leaves the
// turn untouched.
type ParseError struct {
	Spec   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid hand specification %q: %s", e.Spec, e.Reason)
}

var rankAliases = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "10": Ten,
	"j": Jack, "jack": Jack,
	"q": Queen, "queen": Queen,
	"k": King, "king": King,
	"a": Ace, "ace": Ace,
}

var suitAliases = map[string]Suit{
	"heart": Hearts, "diamond": Diamonds, "club": Clubs, "spade": Spades,
	"♥": Hearts, "♦": Diamonds, "♣": Clubs, "♠": Spades,
}

func parseRank(token string) (Rank, bool) {
	token = strings.TrimSuffix(strings.ToLower(token), "s")
	r, ok := rankAliases[token]
	return r, ok
}

func parseSuit(token string) (Suit, bool) {
	token = strings.TrimSuffix(strings.ToLower(token), "s")
	s, ok := suitAliases[token]
	return s, ok
}

// One pattern per category, tried in order. Longer prefixes come first so
// "straight flush" never falls through to "straight", nor "royal flush"
// to "flush".
var (
	reRoyalFlush    = regexp.MustCompile(`^royal flush\s+(\S+)$`)
	reStraightFlush = regexp.MustCompile(`^straight flush\s+(\S+)\s+from\s+(\S+)$`)
	reStraight      = regexp.MustCompile(`^straight\s+from\s+(\S+)$`)
	reFlush         = regexp.MustCompile(`^flush\s+of\s+(\S+?)[\s:\-,]*((?:[\w♥♦♣♠]+[,\s]*)+)$`)
	reFullHouse     = regexp.MustCompile(`^full house[\s:\-,]*3\s+(\S+)\s+and\s+2\s+(\S+)$`)
	reTwoPairs      = regexp.MustCompile(`^two pairs?[\s:\-,]*(\S+)\s+and\s+(\S+)$`)
	reThreeOfAKind  = regexp.MustCompile(`^(?:three of a kind|3 of a kind)[\s:\-,]*(\S+)$`)
	reFourOfAKind   = regexp.MustCompile(`^(?:four of a kind|4 of a kind)[\s:\-,]*(\S+)$`)
	rePair          = regexp.MustCompile(`^pair(?:\s+of)?[\s:\-,]*(\S+)$`)
	reHighCard      = regexp.MustCompile(`^high ?card[\s:\-,]*(\S+)$`)
)

// Parse turns a hand specification string into a Declaration. Input is
// normalized to lowercase with collapsed whitespace before matching.
func Parse(spec string) (Declaration, error) {
	s := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(spec))), " ")
	if s == "" {
		return Declaration{}, &ParseError{Spec: spec, Reason: "empty specification"}
	}

	fail := func(reason string) (Declaration, error) {
		return Declaration{}, &ParseError{Spec: spec, Reason: reason}
	}

	if m := reRoyalFlush.FindStringSubmatch(s); m != nil {
		suit, ok := parseSuit(m[1])
		if !ok {
			return fail("unknown suit " + m[1])
		}
		return Declaration{Category: RoyalFlush, Suit: suit}, nil
	}

	if m := reStraightFlush.FindStringSubmatch(s); m != nil {
		suit, ok := parseSuit(m[1])
		if !ok {
			return fail("unknown suit " + m[1])
		}
		rank, ok := parseRank(m[2])
		if !ok {
			return fail("unknown rank " + m[2])
		}
		if rank < Two || rank > Nine {
			return fail("straight flush must start between 2 and 9")
		}
		return Declaration{Category: StraightFlush, Suit: suit, PrimaryRank: rank}, nil
	}

	if m := reStraight.FindStringSubmatch(s); m != nil {
		rank, ok := parseRank(m[1])
		if !ok {
			return fail("unknown rank " + m[1])
		}
		if rank < Two || rank > Ten {
			return fail("straight must start between 2 and 10")
		}
		return Declaration{Category: Straight, PrimaryRank: rank}, nil
	}

	if m := reFlush.FindStringSubmatch(s); m != nil {
		suit, ok := parseSuit(m[1])
		if !ok {
			return fail("unknown suit " + m[1])
		}
		tokens := strings.FieldsFunc(m[2], func(r rune) bool {
			return r == ',' || r == ' '
		})
		if len(tokens) != 5 {
			return fail("flush must specify exactly 5 ranks")
		}
		seen := make(map[Rank]bool, 5)
		ranks := make([]Rank, 0, 5)
		for _, tok := range tokens {
			rank, ok := parseRank(tok)
			if !ok {
				return fail("unknown rank " + tok)
			}
			if seen[rank] {
				return fail("flush ranks must be distinct")
			}
			seen[rank] = true
			ranks = append(ranks, rank)
		}
		sortRanks(ranks)
		return Declaration{Category: Flush, Suit: suit, Ranks: ranks}, nil
	}

	if m := reFullHouse.FindStringSubmatch(s); m != nil {
		triple, ok := parseRank(m[1])
		if !ok {
			return fail("unknown rank " + m[1])
		}
		pair, ok := parseRank(m[2])
		if !ok {
			return fail("unknown rank " + m[2])
		}
		if triple == pair {
			return fail("full house triple and pair ranks must differ")
		}
		return Declaration{Category: FullHouse, PrimaryRank: triple, SecondaryRank: pair}, nil
	}

	if m := reTwoPairs.FindStringSubmatch(s); m != nil {
		r1, ok := parseRank(m[1])
		if !ok {
			return fail("unknown rank " + m[1])
		}
		r2, ok := parseRank(m[2])
		if !ok {
			return fail("unknown rank " + m[2])
		}
		if r1 == r2 {
			return fail("two pairs must use two different ranks")
		}
		hi, lo := r1, r2
		if lo > hi {
			hi, lo = lo, hi
		}
		return Declaration{Category: TwoPairs, PrimaryRank: hi, SecondaryRank: lo}, nil
	}

	if m := reThreeOfAKind.FindStringSubmatch(s); m != nil {
		rank, ok := parseRank(m[1])
		if !ok {
			return fail("unknown rank " + m[1])
		}
		return Declaration{Category: ThreeOfAKind, PrimaryRank: rank}, nil
	}

	if m := reFourOfAKind.FindStringSubmatch(s); m != nil {
		rank, ok := parseRank(m[1])
		if !ok {
			return fail("unknown rank " + m[1])
		}
		return Declaration{Category: FourOfAKind, PrimaryRank: rank}, nil
	}

	if m := rePair.FindStringSubmatch(s); m != nil {
		rank, ok := parseRank(m[1])
		if !ok {
			return fail("unknown rank " + m[1])
		}
		return Declaration{Category: Pair, PrimaryRank: rank}, nil
	}

	if m := reHighCard.FindStringSubmatch(s); m != nil {
		rank, ok := parseRank(m[1])
		if !ok {
			return fail("unknown rank " + m[1])
		}
		return Declaration{Category: HighCard, PrimaryRank: rank}, nil
	}

	return fail("unrecognized hand category")
}
