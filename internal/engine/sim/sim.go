package sim

import (
	"fmt"

	"github.com/flaing/omingard/internal/bots"
	"github.com/flaing/omingard/internal/engine"
)

// RunSelfPlay plays one seeded game with the greedy bot, checking the
// table invariants after every action. Games that cap out on steps are
// fine; invariant violations and dead ends that are neither won nor
// stuck are not.
func RunSelfPlay(seed int64, maxSteps int) error {
	g := engine.NewGame(seed)
	bot := bots.NewGreedy()

	if err := checkInvariants(g.Table()); err != nil {
		return failure(seed, 0, err.Error())
	}
	for step := 1; step <= maxSteps; step++ {
		action, ok := bot.ChooseAction(g.Table())
		if !ok {
			if !g.Won() && !g.Stuck() {
				return failure(seed, step, "bot gave up on a live table")
			}
			return nil
		}
		g.Apply(action)
		if err := checkInvariants(g.Table()); err != nil {
			return failure(seed, step, err.Error())
		}
	}
	return nil
}

func failure(seed int64, step int, msg string) error {
	return fmt.Errorf("seed %d step %d: %s", seed, step, msg)
}

func checkInvariants(t engine.Table) error {
	if err := checkConservation(t); err != nil {
		return err
	}
	if err := checkPiles(t); err != nil {
		return err
	}
	return checkMarks(t)
}

// checkConservation verifies the 104 card identities exist exactly once
// across stack, columns, and piles.
func checkConservation(t engine.Table) error {
	seen := map[engine.CardID]bool{}
	total := 0
	note := func(c engine.Card) error {
		if seen[c.ID()] {
			return fmt.Errorf("duplicate card %s", c)
		}
		seen[c.ID()] = true
		total++
		return nil
	}
	for _, c := range t.Stack {
		if err := note(c); err != nil {
			return err
		}
	}
	for _, col := range t.Columns {
		for _, c := range col.Cards {
			if err := note(c); err != nil {
				return err
			}
		}
	}
	for _, p := range t.Piles {
		for _, c := range p.Cards {
			if err := note(c); err != nil {
				return err
			}
		}
	}
	if total != engine.DeckSize {
		return fmt.Errorf("card count %d, want %d", total, engine.DeckSize)
	}
	return nil
}

func checkPiles(t engine.Table) error {
	for _, p := range t.Piles {
		for i, c := range p.Cards {
			if c.Suit != p.Suit {
				return fmt.Errorf("pile %d holds foreign suit card %s", p.Index, c)
			}
			if c.Value != i+1 {
				return fmt.Errorf("pile %d out of order at %d: %s", p.Index, i, c)
			}
			if !c.Open {
				return fmt.Errorf("pile %d holds face-down card %s", p.Index, c)
			}
		}
	}
	return nil
}

// checkMarks verifies marked cards form the contiguous tail of exactly
// one column, or a single pile top.
func checkMarks(t engine.Table) error {
	containers := 0
	for _, col := range t.Columns {
		first := -1
		for i, c := range col.Cards {
			if c.Moving && first < 0 {
				first = i
			}
			if !c.Moving && first >= 0 {
				return fmt.Errorf("column %d marks not contiguous to tail", col.Index)
			}
		}
		if first >= 0 {
			containers++
		}
	}
	for _, p := range t.Piles {
		for i, c := range p.Cards {
			if c.Moving {
				if i != len(p.Cards)-1 {
					return fmt.Errorf("pile %d has a buried marked card", p.Index)
				}
				containers++
			}
		}
	}
	if containers > 1 {
		return fmt.Errorf("marks span %d containers", containers)
	}
	return nil
}
