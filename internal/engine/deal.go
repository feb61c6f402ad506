package engine

import "math/rand"

// BuildDeck returns the 104-card draw stack: two full 52-card decks
// tagged a and b, all face down.
func BuildDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	suits := []Suit{SuitHearts, SuitDiamonds, SuitSpades, SuitClubs}
	for _, tag := range []DeckTag{DeckA, DeckB} {
		for _, s := range suits {
			for v := ValueAce; v <= ValueKing; v++ {
				deck = append(deck, Card{Suit: s, Value: v, Deck: tag})
			}
		}
	}
	return deck
}

func Shuffle(deck []Card, seed int64) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// DealInitial deals the stack into the nine columns, one card at a
// time round-robin, until each column holds its ColumnSizes count.
// Only the last card dealt into a column is turned open. A short stack
// simply leaves trailing columns short.
func DealInitial(t *Table) {
deal:
	for pass := 0; ; pass++ {
		dealt := false
		for ci := range t.Columns {
			if len(t.Columns[ci].Cards) <= pass && len(t.Columns[ci].Cards) < ColumnSizes[ci] {
				card, ok := popStack(t)
				if !ok {
					break deal
				}
				t.Columns[ci].Cards = append(t.Columns[ci].Cards, card)
				dealt = true
			}
		}
		if !dealt {
			break
		}
	}
	for ci := range t.Columns {
		cards := t.Columns[ci].Cards
		if len(cards) > 0 {
			cards[len(cards)-1].Open = true
		}
	}
}

// ServeNewCards appends one open card from the stack to every column in
// index order, stopping when the stack runs dry. Any pending selection
// is cleared first.
func ServeNewCards(t *Table) {
	UnmarkAllCards(t)
	for ci := range t.Columns {
		card, ok := popStack(t)
		if !ok {
			return
		}
		card.Open = true
		t.Columns[ci].Cards = append(t.Columns[ci].Cards, card)
	}
}

func popStack(t *Table) (Card, bool) {
	if len(t.Stack) == 0 {
		return Card{}, false
	}
	card := t.Stack[0]
	t.Stack = t.Stack[1:]
	return card, true
}
