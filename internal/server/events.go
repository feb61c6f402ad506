package server

import (
	"strconv"

	"github.com/flaing/omingard/internal/engine"
)

type EventPayload struct {
	Count  int      `json:"count,omitempty"`
	From   string   `json:"from,omitempty"`
	To     string   `json:"to,omitempty"`
	Card   *CardDTO `json:"card,omitempty"`
	Pile   int      `json:"pile,omitempty"`
}

// buildEvents diffs two committed states into render hints for the
// client. The table itself is always resent; events only describe what
// changed.
func buildEvents(prev, next engine.Table, action engine.Action) []Event {
	events := []Event{}

	if action.Type == engine.ActionUndo {
		if !prev.Equal(next) {
			events = append(events, Event{Type: "undo_applied"})
		}
		return events
	}

	if served := len(prev.Stack) - len(next.Stack); served > 0 {
		events = append(events, Event{Type: "cards_served", Data: EventPayload{Count: served}})
	}

	for i := range next.Piles {
		if len(next.Piles[i].Cards) > len(prev.Piles[i].Cards) {
			top := next.Piles[i].Cards[len(next.Piles[i].Cards)-1]
			dto := cardToDTO(top)
			events = append(events, Event{Type: "card_discarded", Data: EventPayload{Pile: i, Card: &dto}})
		}
	}

	if from, to, count, ok := detectMove(prev, next); ok {
		events = append(events, Event{Type: "cards_moved", Data: EventPayload{From: from, To: to, Count: count}})
	}

	prevMarks := len(prev.MarkedCards())
	nextMarks := len(next.MarkedCards())
	if prevMarks != nextMarks {
		events = append(events, Event{Type: "selection_changed", Data: EventPayload{Count: nextMarks}})
	}

	if opened := countOpen(next) - countOpen(prev); opened > 0 && len(prev.Stack) == len(next.Stack) {
		events = append(events, Event{Type: "card_opened", Data: EventPayload{Count: opened}})
	}

	if engine.Won(next) && !engine.Won(prev) {
		events = append(events, Event{Type: "game_won"})
	}
	if engine.Stuck(next) && !engine.Stuck(prev) {
		events = append(events, Event{Type: "game_stuck"})
	}
	return events
}

// detectMove finds a column that gained cards from another column or a
// pile without the stack shrinking.
func detectMove(prev, next engine.Table) (from, to string, count int, ok bool) {
	if len(prev.Stack) != len(next.Stack) {
		return "", "", 0, false
	}
	grew := -1
	for i := range next.Columns {
		if len(next.Columns[i].Cards) > len(prev.Columns[i].Cards) {
			grew = i
			count = len(next.Columns[i].Cards) - len(prev.Columns[i].Cards)
		}
	}
	if grew < 0 {
		return "", "", 0, false
	}
	for i := range next.Columns {
		if len(next.Columns[i].Cards) < len(prev.Columns[i].Cards) {
			return columnName(i), columnName(grew), count, true
		}
	}
	for i := range next.Piles {
		if len(next.Piles[i].Cards) < len(prev.Piles[i].Cards) {
			return pileName(i), columnName(grew), count, true
		}
	}
	return "", "", 0, false
}

func countOpen(t engine.Table) int {
	n := 0
	for _, col := range t.Columns {
		for _, c := range col.Cards {
			if c.Open {
				n++
			}
		}
	}
	return n
}

func columnName(i int) string {
	return "column:" + strconv.Itoa(i)
}

func pileName(i int) string {
	return "pile:" + strconv.Itoa(i)
}
