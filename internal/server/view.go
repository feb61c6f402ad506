package server

import "github.com/flaing/omingard/internal/engine"

type ColumnView struct {
	Index int       `json:"index"`
	Cards []CardDTO `json:"cards"`
}

type PileView struct {
	Index int       `json:"index"`
	Suit  string    `json:"suit"`
	Cards []CardDTO `json:"cards"`
}

type TableView struct {
	Columns   []ColumnView `json:"columns"`
	Piles     []PileView   `json:"piles"`
	StackSize int          `json:"stackSize"`
	Won       bool         `json:"won"`
	Stuck     bool         `json:"stuck"`
	Undoable  bool         `json:"undoable"`
	SessionID string       `json:"sessionId,omitempty"`
}

func BuildTableView(g *engine.Game, sessionID string) *TableView {
	t := g.Table()
	columns := make([]ColumnView, 0, len(t.Columns))
	for _, col := range t.Columns {
		cards := make([]CardDTO, 0, len(col.Cards))
		for _, c := range col.Cards {
			cards = append(cards, cardToDTO(c))
		}
		columns = append(columns, ColumnView{Index: col.Index, Cards: cards})
	}
	piles := make([]PileView, 0, len(t.Piles))
	for _, p := range t.Piles {
		cards := make([]CardDTO, 0, len(p.Cards))
		for _, c := range p.Cards {
			cards = append(cards, cardToDTO(c))
		}
		piles = append(piles, PileView{Index: p.Index, Suit: p.Suit.String(), Cards: cards})
	}
	return &TableView{
		Columns:   columns,
		Piles:     piles,
		StackSize: len(t.Stack),
		Won:       g.Won(),
		Stuck:     g.Stuck(),
		Undoable:  g.HistoryLen() > 1,
		SessionID: sessionID,
	}
}
