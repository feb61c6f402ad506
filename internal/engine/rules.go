package engine

// Pure predicates over table state. Nothing in this file mutates.

func IsOpen(c Card) bool {
	return c.Open
}

// ChildrenOf returns the cards strictly below card in its column, in
// order. Nil when the card is not present.
func ChildrenOf(col Column, id CardID) []Card {
	for i, c := range col.Cards {
		if c.ID() == id {
			return col.Cards[i+1:]
		}
	}
	return nil
}

// AlternatingColors reports whether consecutive cards alternate between
// the red and black groups. Vacuously true for 0 or 1 cards.
func AlternatingColors(cards []Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i].Suit.Red() == cards[i-1].Suit.Red() {
			return false
		}
	}
	return true
}

// DescendingContiguous reports whether values form a strictly
// descending run with no gaps, e.g. 9,8,7.
func DescendingContiguous(cards []Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i].Value != cards[i-1].Value-1 {
			return false
		}
	}
	return true
}

// SortedFromCard reports whether card plus all of its children form an
// alternating, descending, contiguous run. A childless card qualifies
// only as the column's last card; a card absent from the column never
// qualifies.
func SortedFromCard(col Column, id CardID) bool {
	start := -1
	for i, c := range col.Cards {
		if c.ID() == id {
			start = i
			break
		}
	}
	if start < 0 {
		return false
	}
	run := col.Cards[start:]
	return AlternatingColors(run) && DescendingContiguous(run)
}

// Moveable reports whether card heads a run that may leave the column.
func Moveable(col Column, id CardID) bool {
	for _, c := range col.Cards {
		if c.ID() == id {
			return c.Open && SortedFromCard(col, id)
		}
	}
	return false
}

// FreePileFor finds the first pile, in index order, of the card's suit
// whose size equals value-1, i.e. where the card is the exact next rank
// needed. ok=false when no pile wants the card yet.
func FreePileFor(piles []Pile, c Card) (int, bool) {
	for i, p := range piles {
		if p.Suit == c.Suit && len(p.Cards) == c.Value-1 {
			return i, true
		}
	}
	return 0, false
}

// Discardable reports whether the card may be dropped onto a pile right
// now. Only a column's open last card can satisfy this.
func Discardable(t Table, id CardID) bool {
	col, _, ok := t.FindInColumns(id)
	if !ok {
		return false
	}
	if !Moveable(t.Columns[col], id) {
		return false
	}
	last, _ := t.Columns[col].Last()
	if last.ID() != id {
		return false
	}
	_, ok = FreePileFor(t.Piles, last)
	return ok
}

// CanBeAppendedTo reports whether card may land on the target column:
// the column's last card must be one rank higher and the opposite
// color. An empty column accepts nothing.
func CanBeAppendedTo(c Card, target Column) bool {
	upper, ok := target.Last()
	if !ok {
		return false
	}
	return upper.Value == c.Value+1 && upper.Suit.Red() != c.Suit.Red()
}

// Won reports whether every card has reached a pile.
func Won(t Table) bool {
	total := 0
	for _, p := range t.Piles {
		total += len(p.Cards)
	}
	return total == DeckSize
}

// Stuck reports whether play can no longer progress: the stack is
// empty, nothing is discardable, and no moveable run has a legal
// destination column.
func Stuck(t Table) bool {
	if len(t.Stack) > 0 || Won(t) {
		return false
	}
	for _, col := range t.Columns {
		for _, c := range col.Cards {
			if !c.Open {
				continue
			}
			if Discardable(t, c.ID()) {
				return false
			}
			if !SortedFromCard(col, c.ID()) {
				continue
			}
			for _, target := range t.Columns {
				if target.Index != col.Index && CanBeAppendedTo(c, target) {
					return false
				}
			}
		}
	}
	return true
}
