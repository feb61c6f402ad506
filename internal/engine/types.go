package engine

import "fmt"

type Suit int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitSpades
	SuitClubs
)

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "H"
	case SuitDiamonds:
		return "D"
	case SuitSpades:
		return "S"
	case SuitClubs:
		return "C"
	default:
		return "?"
	}
}

// Red reports whether the suit belongs to the red color group.
func (s Suit) Red() bool {
	return s == SuitHearts || s == SuitDiamonds
}

type DeckTag int

const (
	DeckA DeckTag = iota
	DeckB
)

func (d DeckTag) String() string {
	switch d {
	case DeckA:
		return "a"
	case DeckB:
		return "b"
	default:
		return "?"
	}
}

const (
	ValueAce   = 1
	ValueJack  = 11
	ValueQueen = 12
	ValueKing  = 13
)

// Card is one of the 104 physical cards. Suit, Value and Deck identify
// it for the life of a game; Open and Moving are mutable state. Moving
// is transient selection state, not a game attribute.
type Card struct {
	Suit   Suit
	Value  int
	Deck   DeckTag
	Open   bool
	Moving bool
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s%s", ValueLabel(c.Value), c.Suit.String(), c.Deck.String())
}

// ValueLabel renders a rank the way the table does: A, 2..10, J, Q, K.
func ValueLabel(v int) string {
	switch v {
	case ValueAce:
		return "A"
	case ValueJack:
		return "J"
	case ValueQueen:
		return "Q"
	case ValueKing:
		return "K"
	default:
		return fmt.Sprintf("%d", v)
	}
}

// CardID identifies a card independent of its Open/Moving flags. The
// two merged decks make suit+value ambiguous on its own, hence the
// deck tag.
type CardID struct {
	Suit  Suit
	Value int
	Deck  DeckTag
}

func (c Card) ID() CardID {
	return CardID{Suit: c.Suit, Value: c.Value, Deck: c.Deck}
}

func (id CardID) String() string {
	return Card{Suit: id.Suit, Value: id.Value, Deck: id.Deck}.String()
}

const (
	NumColumns = 9
	NumPiles   = 8
	DeckSize   = 104
)

// ColumnSizes is the per-column initial deal count.
var ColumnSizes = [NumColumns]int{1, 2, 3, 4, 5, 4, 3, 2, 1}

type Column struct {
	Index int
	Cards []Card
}

func (c Column) Last() (Card, bool) {
	if len(c.Cards) == 0 {
		return Card{}, false
	}
	return c.Cards[len(c.Cards)-1], true
}

// Pile is one of the eight discard destinations. Two piles exist per
// suit; each holds its suit's ranks 1..len(Cards) in ascending order.
type Pile struct {
	Index int
	Suit  Suit
	Cards []Card
}

// Table is a complete snapshot of one moment of play.
type Table struct {
	Stack   []Card
	Columns []Column
	Piles   []Pile
}

// NewTable builds an empty layout: no stack, 9 empty columns, and 8
// empty piles with two piles per suit in hearts, diamonds, spades,
// clubs order.
func NewTable() Table {
	t := Table{
		Columns: make([]Column, NumColumns),
		Piles:   make([]Pile, NumPiles),
	}
	for i := range t.Columns {
		t.Columns[i] = Column{Index: i}
	}
	suits := []Suit{SuitHearts, SuitDiamonds, SuitSpades, SuitClubs}
	for i := range t.Piles {
		t.Piles[i] = Pile{Index: i, Suit: suits[i/2]}
	}
	return t
}

// Clone deep-copies the table so history snapshots never alias live
// slices.
func (t Table) Clone() Table {
	out := Table{
		Stack:   append([]Card(nil), t.Stack...),
		Columns: make([]Column, len(t.Columns)),
		Piles:   make([]Pile, len(t.Piles)),
	}
	for i, c := range t.Columns {
		out.Columns[i] = Column{Index: c.Index, Cards: append([]Card(nil), c.Cards...)}
	}
	for i, p := range t.Piles {
		out.Piles[i] = Pile{Index: p.Index, Suit: p.Suit, Cards: append([]Card(nil), p.Cards...)}
	}
	return out
}

// Equal compares two tables card by card, flags included.
func (t Table) Equal(other Table) bool {
	if !cardsEqual(t.Stack, other.Stack) || len(t.Columns) != len(other.Columns) || len(t.Piles) != len(other.Piles) {
		return false
	}
	for i := range t.Columns {
		if !cardsEqual(t.Columns[i].Cards, other.Columns[i].Cards) {
			return false
		}
	}
	for i := range t.Piles {
		if t.Piles[i].Suit != other.Piles[i].Suit || !cardsEqual(t.Piles[i].Cards, other.Piles[i].Cards) {
			return false
		}
	}
	return true
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FindInColumns locates a card by identity. Returns column and card
// indexes, or ok=false if the card is not in any column.
func (t Table) FindInColumns(id CardID) (col, idx int, ok bool) {
	for ci := range t.Columns {
		for xi, c := range t.Columns[ci].Cards {
			if c.ID() == id {
				return ci, xi, true
			}
		}
	}
	return 0, 0, false
}

// PileTop locates a card sitting on top of a pile.
func (t Table) PileTop(id CardID) (pile int, ok bool) {
	for pi := range t.Piles {
		cards := t.Piles[pi].Cards
		if len(cards) > 0 && cards[len(cards)-1].ID() == id {
			return pi, true
		}
	}
	return 0, false
}

// MarkedCards returns all cards currently marked for moving, columns
// first in index order, then pile tops.
func (t Table) MarkedCards() []Card {
	var out []Card
	for _, col := range t.Columns {
		for _, c := range col.Cards {
			if c.Moving {
				out = append(out, c)
			}
		}
	}
	for _, p := range t.Piles {
		for _, c := range p.Cards {
			if c.Moving {
				out = append(out, c)
			}
		}
	}
	return out
}
