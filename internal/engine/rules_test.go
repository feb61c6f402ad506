package engine

import "testing"

func openCard(s Suit, v int) Card {
	return Card{Suit: s, Value: v, Open: true}
}

func TestAlternatingColors(t *testing.T) {
	cases := []struct {
		name  string
		cards []Card
		want  bool
	}{
		{"empty", nil, true},
		{"single", []Card{openCard(SuitSpades, 7)}, true},
		{"alternating", []Card{openCard(SuitSpades, 7), openCard(SuitHearts, 6), openCard(SuitSpades, 5)}, true},
		{"same color pair", []Card{openCard(SuitSpades, 7), openCard(SuitSpades, 6)}, false},
		{"red red", []Card{openCard(SuitHearts, 4), openCard(SuitDiamonds, 3)}, false},
	}
	for _, tc := range cases {
		if got := AlternatingColors(tc.cards); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDescendingContiguous(t *testing.T) {
	cases := []struct {
		name  string
		cards []Card
		want  bool
	}{
		{"k q j", []Card{openCard(SuitSpades, 13), openCard(SuitHearts, 12), openCard(SuitClubs, 11)}, true},
		{"gap", []Card{openCard(SuitSpades, 13), openCard(SuitHearts, 11)}, false},
		{"repeat", []Card{openCard(SuitSpades, 8), openCard(SuitHearts, 8)}, false},
		{"ascending", []Card{openCard(SuitSpades, 5), openCard(SuitHearts, 6)}, false},
		{"single", []Card{openCard(SuitSpades, 2)}, true},
	}
	for _, tc := range cases {
		if got := DescendingContiguous(tc.cards); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSortedFromCard(t *testing.T) {
	col := Column{Cards: []Card{
		openCard(SuitClubs, 10),
		openCard(SuitSpades, 9),
		openCard(SuitHearts, 8),
		openCard(SuitSpades, 7),
	}}

	if SortedFromCard(col, col.Cards[0].ID()) {
		t.Fatalf("10C 9S is not alternating, run must not be sorted")
	}
	if !SortedFromCard(col, col.Cards[1].ID()) {
		t.Fatalf("9S 8H 7S should be sorted")
	}
	if !SortedFromCard(col, col.Cards[3].ID()) {
		t.Fatalf("childless last card should be sorted")
	}
	if SortedFromCard(col, openCard(SuitDiamonds, 2).ID()) {
		t.Fatalf("card absent from column can never be sorted")
	}
}

func TestMoveableRequiresOpen(t *testing.T) {
	closed := Card{Suit: SuitSpades, Value: 9}
	col := Column{Cards: []Card{closed, openCard(SuitHearts, 8)}}

	if Moveable(col, closed.ID()) {
		t.Fatalf("face-down card must not be moveable")
	}
	if !Moveable(col, col.Cards[1].ID()) {
		t.Fatalf("open last card must be moveable")
	}
}

func TestFreePileForAscendingOrder(t *testing.T) {
	table := NewTable()

	ace := openCard(SuitHearts, ValueAce)
	pile, ok := FreePileFor(table.Piles, ace)
	if !ok || pile != 0 {
		t.Fatalf("ace of hearts: got pile %d ok=%v, want pile 0", pile, ok)
	}
	if _, ok := FreePileFor(table.Piles, openCard(SuitHearts, 2)); ok {
		t.Fatalf("2 of hearts must wait for the ace")
	}

	table.Piles[0].Cards = append(table.Piles[0].Cards, ace)
	pile, ok = FreePileFor(table.Piles, openCard(SuitHearts, 2))
	if !ok || pile != 0 {
		t.Fatalf("2 of hearts after ace: got pile %d ok=%v", pile, ok)
	}

	// second copy of the ace goes to the sibling pile
	pile, ok = FreePileFor(table.Piles, Card{Suit: SuitHearts, Value: ValueAce, Deck: DeckB, Open: true})
	if !ok || pile != 1 {
		t.Fatalf("second ace: got pile %d ok=%v, want pile 1", pile, ok)
	}

	if _, ok := FreePileFor(table.Piles, openCard(SuitSpades, 2)); ok {
		t.Fatalf("spade must not land on a hearts pile")
	}
}

func TestCanBeAppendedTo(t *testing.T) {
	target := Column{Cards: []Card{openCard(SuitHearts, 9)}}

	if !CanBeAppendedTo(openCard(SuitSpades, 8), target) {
		t.Fatalf("8S onto 9H should be legal")
	}
	if CanBeAppendedTo(openCard(SuitDiamonds, 8), target) {
		t.Fatalf("8D onto 9H is same color")
	}
	if CanBeAppendedTo(openCard(SuitSpades, 7), target) {
		t.Fatalf("7S onto 9H skips a rank")
	}
	if CanBeAppendedTo(openCard(SuitSpades, 8), Column{}) {
		t.Fatalf("empty column accepts nothing")
	}
}

func TestDiscardableOnlyTopmost(t *testing.T) {
	table := NewTable()
	buried := openCard(SuitHearts, ValueAce)
	top := openCard(SuitSpades, ValueAce)
	table.Columns[0].Cards = []Card{buried, top}

	if Discardable(table, buried.ID()) {
		t.Fatalf("buried ace must not be discardable")
	}
	if !Discardable(table, top.ID()) {
		t.Fatalf("topmost ace must be discardable")
	}

	closedTop := Card{Suit: SuitClubs, Value: ValueAce}
	table.Columns[1].Cards = []Card{closedTop}
	if Discardable(table, closedTop.ID()) {
		t.Fatalf("face-down card must not be discardable")
	}
}

func TestWonAndStuck(t *testing.T) {
	table := NewTable()
	for pi := range table.Piles {
		tag := DeckTag(pi % 2)
		for v := ValueAce; v <= ValueKing; v++ {
			table.Piles[pi].Cards = append(table.Piles[pi].Cards, Card{Suit: table.Piles[pi].Suit, Value: v, Deck: tag, Open: true})
		}
	}
	if !Won(table) {
		t.Fatalf("full piles should win")
	}
	if Stuck(table) {
		t.Fatalf("a won game is not stuck")
	}

	dead := NewTable()
	dead.Columns[0].Cards = []Card{openCard(SuitSpades, 5)}
	dead.Columns[1].Cards = []Card{openCard(SuitClubs, 6)}
	if !Stuck(dead) {
		t.Fatalf("5S with only 6C available has no legal move")
	}

	dead.Columns[1].Cards = []Card{openCard(SuitHearts, 6)}
	if Stuck(dead) {
		t.Fatalf("5S can move onto 6H")
	}
}
