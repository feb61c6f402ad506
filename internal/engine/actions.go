package engine

// State-mutating transactions and the click interaction protocol. Every
// operation is total: an illegal request degrades to a no-op or to
// clearing a selection mark, never an error.

type ActionType int

const (
	ActionClickCard ActionType = iota
	ActionServe
	ActionUndo
)

// Action is the envelope collaborators and bots use to drive a Game.
type Action struct {
	Type ActionType
	Card *CardID
}

// UnmarkAllCards clears every Moving flag on the table. Idempotent.
func UnmarkAllCards(t *Table) {
	for ci := range t.Columns {
		for xi := range t.Columns[ci].Cards {
			t.Columns[ci].Cards[xi].Moving = false
		}
	}
	for pi := range t.Piles {
		for xi := range t.Piles[pi].Cards {
			t.Piles[pi].Cards[xi].Moving = false
		}
	}
}

// MarkCardAndChildrenForMoving marks the card and its full child run in
// its column, regardless of whether the run is itself sortable; the
// click protocol re-validates on the destination side. No-op when the
// card is not in a column.
func MarkCardAndChildrenForMoving(t *Table, id CardID) {
	col, idx, ok := t.FindInColumns(id)
	if !ok {
		return
	}
	for xi := idx; xi < len(t.Columns[col].Cards); xi++ {
		t.Columns[col].Cards[xi].Moving = true
	}
}

// DiscardCard pops a discardable card from its column onto its waiting
// pile and opens the column's uncovered card. A failed attempt only
// clears the card's own selection mark, so a stray double click still
// deselects.
func DiscardCard(t *Table, id CardID) {
	if !Discardable(*t, id) {
		clearMark(t, id)
		return
	}
	col, _, _ := t.FindInColumns(id)
	cards := t.Columns[col].Cards
	card := cards[len(cards)-1]
	t.Columns[col].Cards = cards[:len(cards)-1]

	card.Moving = false
	pile, _ := FreePileFor(t.Piles, card)
	t.Piles[pile].Cards = append(t.Piles[pile].Cards, card)

	openLast(&t.Columns[col])
}

// MoveMarkedCardsTo relocates the marked run onto the target column.
// The run must be the contiguous tail of one column (or a single pile
// top) and its first card must be appendable to the target; otherwise
// nothing moves. Moving flags stay set, clearing is the caller's step.
func MoveMarkedCardsTo(t *Table, target int) {
	if target < 0 || target >= len(t.Columns) {
		return
	}
	marked := t.MarkedCards()
	if len(marked) == 0 || !CanBeAppendedTo(marked[0], t.Columns[target]) {
		return
	}

	first := marked[0].ID()
	if col, idx, ok := t.FindInColumns(first); ok {
		if col == target {
			return
		}
		run := t.Columns[col].Cards[idx:]
		if len(run) != len(marked) {
			return
		}
		t.Columns[target].Cards = append(t.Columns[target].Cards, run...)
		t.Columns[col].Cards = t.Columns[col].Cards[:idx]
		openLast(&t.Columns[col])
		return
	}
	if pile, ok := t.PileTop(first); ok {
		cards := t.Piles[pile].Cards
		t.Columns[target].Cards = append(t.Columns[target].Cards, cards[len(cards)-1])
		t.Piles[pile].Cards = cards[:len(cards)-1]
	}
}

// HandleCardClick runs one step of the selection protocol. Transitions
// are evaluated in order, first match wins:
//
//  1. pile-top card, open           -> select it (single card)
//  2. column card, moveable:
//     a. already selected           -> confirm: discard it
//     b. other selection pending    -> move it here, or reselect
//     c. no selection               -> select card and children
//  3. anything else                 -> no change
func HandleCardClick(t *Table, id CardID) {
	if _, _, inColumn := t.FindInColumns(id); !inColumn {
		if pile, ok := t.PileTop(id); ok {
			cards := t.Piles[pile].Cards
			if cards[len(cards)-1].Open {
				UnmarkAllCards(t)
				t.Piles[pile].Cards[len(cards)-1].Moving = true
			}
		}
		return
	}

	col, idx, _ := t.FindInColumns(id)
	if !Moveable(t.Columns[col], id) {
		return
	}

	if t.Columns[col].Cards[idx].Moving {
		DiscardCard(t, id)
		return
	}

	if marked := t.MarkedCards(); len(marked) > 0 {
		if CanBeAppendedTo(marked[0], t.Columns[col]) {
			MoveMarkedCardsTo(t, col)
			UnmarkAllCards(t)
			return
		}
		UnmarkAllCards(t)
		MarkCardAndChildrenForMoving(t, id)
		return
	}

	MarkCardAndChildrenForMoving(t, id)
}

func openLast(col *Column) {
	if len(col.Cards) > 0 {
		col.Cards[len(col.Cards)-1].Open = true
	}
}

func clearMark(t *Table, id CardID) {
	if col, idx, ok := t.FindInColumns(id); ok {
		t.Columns[col].Cards[idx].Moving = false
		return
	}
	for pi := range t.Piles {
		for xi, c := range t.Piles[pi].Cards {
			if c.ID() == id {
				t.Piles[pi].Cards[xi].Moving = false
				return
			}
		}
	}
}
