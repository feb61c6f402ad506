package server

import (
	"errors"
	"strconv"

	"github.com/flaing/omingard/internal/engine"
)

// CardDTO carries a card plus the display contract: rank 1 is "A",
// 11-13 are "J"/"Q"/"K", suits map to red or black.
type CardDTO struct {
	Suit   string `json:"suit"`
	Rank   string `json:"rank"`
	Deck   string `json:"deck"`
	Color  string `json:"color"`
	Open   bool   `json:"open"`
	Moving bool   `json:"moving"`
}

// CardRefDTO identifies a card in a client request.
type CardRefDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
	Deck string `json:"deck"`
}

type ActionDTO struct {
	Type string      `json:"type"`
	Card *CardRefDTO `json:"card,omitempty"`
}

func (a *ActionDTO) ToEngine() (engine.Action, error) {
	if a == nil {
		return engine.Action{}, errors.New("action missing")
	}
	switch a.Type {
	case "click_card":
		if a.Card == nil {
			return engine.Action{}, errors.New("card required")
		}
		id, err := a.Card.toEngine()
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionClickCard, Card: &id}, nil
	case "serve":
		return engine.Action{Type: engine.ActionServe}, nil
	case "undo":
		return engine.Action{Type: engine.ActionUndo}, nil
	default:
		return engine.Action{}, errors.New("unknown action type")
	}
}

func ActionFromEngine(a engine.Action) ActionDTO {
	switch a.Type {
	case engine.ActionClickCard:
		if a.Card == nil {
			return ActionDTO{Type: "click_card"}
		}
		ref := cardRefDTO(*a.Card)
		return ActionDTO{Type: "click_card", Card: &ref}
	case engine.ActionServe:
		return ActionDTO{Type: "serve"}
	case engine.ActionUndo:
		return ActionDTO{Type: "undo"}
	default:
		return ActionDTO{Type: "unknown"}
	}
}

func (c CardRefDTO) toEngine() (engine.CardID, error) {
	s, err := parseSuit(c.Suit)
	if err != nil {
		return engine.CardID{}, err
	}
	v, err := parseRank(c.Rank)
	if err != nil {
		return engine.CardID{}, err
	}
	d, err := parseDeck(c.Deck)
	if err != nil {
		return engine.CardID{}, err
	}
	return engine.CardID{Suit: s, Value: v, Deck: d}, nil
}

func cardToDTO(c engine.Card) CardDTO {
	color := "black"
	if c.Suit.Red() {
		color = "red"
	}
	return CardDTO{
		Suit:   c.Suit.String(),
		Rank:   engine.ValueLabel(c.Value),
		Deck:   c.Deck.String(),
		Color:  color,
		Open:   c.Open,
		Moving: c.Moving,
	}
}

func cardRefDTO(id engine.CardID) CardRefDTO {
	return CardRefDTO{
		Suit: id.Suit.String(),
		Rank: engine.ValueLabel(id.Value),
		Deck: id.Deck.String(),
	}
}

func parseSuit(s string) (engine.Suit, error) {
	switch s {
	case "H":
		return engine.SuitHearts, nil
	case "D":
		return engine.SuitDiamonds, nil
	case "S":
		return engine.SuitSpades, nil
	case "C":
		return engine.SuitClubs, nil
	default:
		return engine.SuitHearts, errors.New("invalid suit")
	}
}

func parseRank(r string) (int, error) {
	switch r {
	case "A":
		return engine.ValueAce, nil
	case "J":
		return engine.ValueJack, nil
	case "Q":
		return engine.ValueQueen, nil
	case "K":
		return engine.ValueKing, nil
	default:
		v, err := strconv.Atoi(r)
		if err != nil || v < 2 || v > 10 {
			return 0, errors.New("invalid rank")
		}
		return v, nil
	}
}

func parseDeck(d string) (engine.DeckTag, error) {
	switch d {
	case "a":
		return engine.DeckA, nil
	case "b":
		return engine.DeckB, nil
	default:
		return engine.DeckA, errors.New("invalid deck tag")
	}
}
