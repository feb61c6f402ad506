package bots

import (
	"math/rand"

	"github.com/flaing/omingard/internal/engine"
)

// Bot picks the next action for a table, driving the game purely
// through the click protocol. ok=false means the bot sees no useful
// action (game won or stuck).
type Bot interface {
	ChooseAction(t engine.Table) (engine.Action, bool)
}

type GreedyBot struct{}

func NewGreedy() *GreedyBot {
	return &GreedyBot{}
}

// ChooseAction prefers, in order: finishing the pending selection,
// discarding, a move that uncovers a face-down card or empties a
// column, then serving.
func (b *GreedyBot) ChooseAction(t engine.Table) (engine.Action, bool) {
	if a, ok := resolveSelection(t); ok {
		return a, true
	}
	if clicks := discardClicks(t); len(clicks) > 0 {
		return clicks[0], true
	}
	if clicks := progressMoveClicks(t); len(clicks) > 0 {
		return clicks[0], true
	}
	if len(t.Stack) > 0 {
		return engine.Action{Type: engine.ActionServe}, true
	}
	if clicks := anyMoveClicks(t); len(clicks) > 0 {
		return clicks[0], true
	}
	return engine.Action{}, false
}

type EasyBot struct {
	RNG *rand.Rand
}

func NewEasy(seed int64) *EasyBot {
	return &EasyBot{RNG: rand.New(rand.NewSource(seed))}
}

// ChooseAction resolves a pending selection like the greedy bot, then
// picks uniformly among all remaining candidate clicks and serving.
func (b *EasyBot) ChooseAction(t engine.Table) (engine.Action, bool) {
	if a, ok := resolveSelection(t); ok {
		return a, true
	}
	candidates := append(discardClicks(t), progressMoveClicks(t)...)
	if len(t.Stack) > 0 {
		candidates = append(candidates, engine.Action{Type: engine.ActionServe})
	}
	if len(candidates) == 0 {
		candidates = anyMoveClicks(t)
	}
	if len(candidates) == 0 {
		return engine.Action{}, false
	}
	return candidates[b.RNG.Intn(len(candidates))], true
}

// resolveSelection finishes what a previous click started: confirm a
// marked discardable card, or click the destination of a marked run.
// A stale selection yields no action; the next marking click replaces
// it via the protocol.
func resolveSelection(t engine.Table) (engine.Action, bool) {
	marked := t.MarkedCards()
	if len(marked) == 0 {
		return engine.Action{}, false
	}
	if len(marked) == 1 && engine.Discardable(t, marked[0].ID()) {
		return clickAction(marked[0]), true
	}
	for _, col := range t.Columns {
		last, ok := col.Last()
		if !ok || !engine.CanBeAppendedTo(marked[0], col) {
			continue
		}
		return clickAction(last), true
	}
	return engine.Action{}, false
}

// anyMoveClicks marks any run with a legal destination, progress or
// not. Last resort once the stack is dry; keeps the bot's give-up
// condition aligned with engine.Stuck.
func anyMoveClicks(t engine.Table) []engine.Action {
	var out []engine.Action
	for _, col := range t.Columns {
		for _, c := range col.Cards {
			if !c.Open || !engine.SortedFromCard(col, c.ID()) {
				continue
			}
			for _, target := range t.Columns {
				if target.Index != col.Index && engine.CanBeAppendedTo(c, target) {
					out = append(out, clickAction(c))
					break
				}
			}
		}
	}
	return out
}

func discardClicks(t engine.Table) []engine.Action {
	var out []engine.Action
	for _, col := range t.Columns {
		if last, ok := col.Last(); ok && engine.Discardable(t, last.ID()) {
			out = append(out, clickAction(last))
		}
	}
	return out
}

// progressMoveClicks returns marking clicks for runs whose departure
// makes progress: the run sits on a face-down card or empties its
// column, and a legal destination exists.
func progressMoveClicks(t engine.Table) []engine.Action {
	var out []engine.Action
	for _, col := range t.Columns {
		for idx, c := range col.Cards {
			if !c.Open || !engine.SortedFromCard(col, c.ID()) {
				continue
			}
			if idx > 0 && col.Cards[idx-1].Open {
				continue
			}
			for _, target := range t.Columns {
				if target.Index != col.Index && engine.CanBeAppendedTo(c, target) {
					out = append(out, clickAction(c))
					break
				}
			}
			break
		}
	}
	return out
}

func clickAction(c engine.Card) engine.Action {
	id := c.ID()
	return engine.Action{Type: engine.ActionClickCard, Card: &id}
}
