package engine

import "testing"

func TestHistoryDeduplicatesNoops(t *testing.T) {
	g := NewGame(3)
	if g.HistoryLen() != 1 {
		t.Fatalf("fresh game history: got %d, want 1", g.HistoryLen())
	}

	// clicking a face-down card commits nothing new
	closed := g.Table().Columns[1].Cards[0]
	g.HandleCardClick(closed.ID())
	if g.HistoryLen() != 1 {
		t.Fatalf("no-op click logged: history %d", g.HistoryLen())
	}

	g.ServeNewCards()
	if g.HistoryLen() != 2 {
		t.Fatalf("serve not logged: history %d", g.HistoryLen())
	}
}

func TestUndoRestoresPreServeState(t *testing.T) {
	g := NewGame(11)
	before := g.Table()

	g.ServeNewCards()
	g.Undo()

	if !g.Table().Equal(before) {
		t.Fatalf("undo after serve did not restore the previous table")
	}
}

func TestUndoRefusedAtInitialState(t *testing.T) {
	g := NewGame(12)
	initial := g.Table()

	g.Undo()
	g.Undo()

	if !g.Table().Equal(initial) || g.HistoryLen() != 1 {
		t.Fatalf("undo must not step past the initial deal")
	}
}

func TestUndoStepsThroughSelection(t *testing.T) {
	g := NewGame(13)
	table := g.Table()

	var target Card
	for _, col := range table.Columns {
		if last, ok := col.Last(); ok {
			target = last
			break
		}
	}
	g.HandleCardClick(target.ID())
	if g.HistoryLen() != 2 {
		t.Fatalf("marking should commit a state, history %d", g.HistoryLen())
	}

	g.Undo()
	if len(g.Table().MarkedCards()) != 0 {
		t.Fatalf("undo should clear the marking step")
	}
}

func TestHistoryPushClonesState(t *testing.T) {
	var h History
	table := NewTable()
	table.Columns[0].Cards = []Card{openCard(SuitHearts, 4)}
	h.Push(table)

	table.Columns[0].Cards[0].Value = 9

	restored, ok := h.Undo()
	if ok {
		t.Fatalf("undo should refuse with a single entry")
	}
	_ = restored

	h.Push(table)
	restored, ok = h.Undo()
	if !ok || restored.Columns[0].Cards[0].Value != 4 {
		t.Fatalf("history tail aliased live state")
	}
}
