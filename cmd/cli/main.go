package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/flaing/omingard/internal/bots"
	"github.com/flaing/omingard/internal/engine"
)

func main() {
	seed := time.Now().UnixNano()
	if len(os.Args) > 1 {
		if v, err := strconv.ParseInt(os.Args[1], 10, 64); err == nil {
			seed = v
		}
	}
	game := engine.NewGame(seed)
	hinter := bots.NewGreedy()

	pterm.DefaultHeader.Println("Omingard")
	render(game)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		pterm.Print(pterm.Gray("c<col> <row> click | p<pile> click pile | s serve | u undo | h hint | n new | q quit\n> "))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch {
		case fields[0] == "q":
			return
		case fields[0] == "s":
			game.ServeNewCards()
		case fields[0] == "u":
			game.Undo()
		case fields[0] == "n":
			game = engine.NewGame(time.Now().UnixNano())
		case fields[0] == "h":
			printHint(game, hinter)
			continue
		case strings.HasPrefix(fields[0], "p"):
			clickPile(game, fields[0][1:])
		case strings.HasPrefix(fields[0], "c") && len(fields) == 2:
			clickColumn(game, fields[0][1:], fields[1])
		default:
			pterm.Warning.Println("unrecognized command")
			continue
		}
		render(game)
		if game.Won() {
			pterm.Success.Println("All 104 cards discarded. You won!")
			return
		}
		if game.Stuck() {
			pterm.Error.Println("No moves left and the stack is empty. Game over.")
		}
	}
}

func clickColumn(game *engine.Game, colArg, rowArg string) {
	t := game.Table()
	col, err1 := strconv.Atoi(colArg)
	row, err2 := strconv.Atoi(rowArg)
	if err1 != nil || err2 != nil || col < 0 || col >= len(t.Columns) || row < 0 || row >= len(t.Columns[col].Cards) {
		pterm.Warning.Println("no card there")
		return
	}
	game.HandleCardClick(t.Columns[col].Cards[row].ID())
}

func clickPile(game *engine.Game, arg string) {
	t := game.Table()
	pile, err := strconv.Atoi(arg)
	if err != nil || pile < 0 || pile >= len(t.Piles) || len(t.Piles[pile].Cards) == 0 {
		pterm.Warning.Println("no card there")
		return
	}
	cards := t.Piles[pile].Cards
	game.HandleCardClick(cards[len(cards)-1].ID())
}

func printHint(game *engine.Game, hinter bots.Bot) {
	action, ok := hinter.ChooseAction(game.Table())
	if !ok {
		pterm.Info.Println("no useful action available")
		return
	}
	switch action.Type {
	case engine.ActionServe:
		pterm.Info.Println("hint: serve new cards (s)")
	case engine.ActionClickCard:
		pterm.Info.Printfln("hint: click %s", glyph(cardByID(game.Table(), *action.Card)))
	}
}

func cardByID(t engine.Table, id engine.CardID) engine.Card {
	if col, idx, ok := t.FindInColumns(id); ok {
		return t.Columns[col].Cards[idx]
	}
	if pile, ok := t.PileTop(id); ok {
		cards := t.Piles[pile].Cards
		return cards[len(cards)-1]
	}
	return engine.Card{Suit: id.Suit, Value: id.Value, Deck: id.Deck}
}

func render(game *engine.Game) {
	t := game.Table()

	var piles strings.Builder
	for _, p := range t.Piles {
		label := "--"
		if len(p.Cards) > 0 {
			label = glyph(p.Cards[len(p.Cards)-1])
		}
		fmt.Fprintf(&piles, "p%d %s %s  ", p.Index, suitGlyph(p.Suit), label)
	}
	pterm.Println(pterm.DefaultBox.WithTitle("piles").Sprint(piles.String()))

	var cols strings.Builder
	for _, col := range t.Columns {
		fmt.Fprintf(&cols, "c%d:", col.Index)
		for _, c := range col.Cards {
			cols.WriteString(" " + glyph(c))
		}
		cols.WriteString("\n")
	}
	pterm.Println(pterm.DefaultBox.WithTitle("columns").Sprint(strings.TrimRight(cols.String(), "\n")))
	pterm.Printfln("stack: %d cards", len(t.Stack))
}

func glyph(c engine.Card) string {
	if !c.Open {
		return pterm.Gray("[##]")
	}
	text := engine.ValueLabel(c.Value) + suitGlyph(c.Suit) + c.Deck.String()
	if c.Moving {
		text = "*" + text
	}
	if c.Suit.Red() {
		return pterm.LightRed(text)
	}
	return pterm.LightWhite(text)
}

func suitGlyph(s engine.Suit) string {
	switch s {
	case engine.SuitHearts:
		return "♥"
	case engine.SuitDiamonds:
		return "♦"
	case engine.SuitSpades:
		return "♠"
	default:
		return "♣"
	}
}
