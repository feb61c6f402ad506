package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flaing/omingard/internal/engine"
)

func TestCardDTODisplayContract(t *testing.T) {
	cases := []struct {
		card  engine.Card
		rank  string
		suit  string
		color string
	}{
		{engine.Card{Suit: engine.SuitHearts, Value: 1}, "A", "H", "red"},
		{engine.Card{Suit: engine.SuitDiamonds, Value: 11}, "J", "D", "red"},
		{engine.Card{Suit: engine.SuitSpades, Value: 12}, "Q", "S", "black"},
		{engine.Card{Suit: engine.SuitClubs, Value: 13}, "K", "C", "black"},
		{engine.Card{Suit: engine.SuitClubs, Value: 7}, "7", "C", "black"},
	}
	for _, tc := range cases {
		dto := cardToDTO(tc.card)
		assert.Equal(t, tc.rank, dto.Rank)
		assert.Equal(t, tc.suit, dto.Suit)
		assert.Equal(t, tc.color, dto.Color)
	}
}

func TestActionDTORoundTrip(t *testing.T) {
	id := engine.CardID{Suit: engine.SuitDiamonds, Value: 12, Deck: engine.DeckB}
	dto := ActionFromEngine(engine.Action{Type: engine.ActionClickCard, Card: &id})

	require.NotNil(t, dto.Card)
	assert.Equal(t, "Q", dto.Card.Rank)
	assert.Equal(t, "b", dto.Card.Deck)

	back, err := dto.ToEngine()
	require.NoError(t, err)
	require.NotNil(t, back.Card)
	assert.Equal(t, id, *back.Card)
}

func TestActionDTOValidation(t *testing.T) {
	_, err := (&ActionDTO{Type: "click_card"}).ToEngine()
	assert.Error(t, err, "click without card must fail")

	_, err = (&ActionDTO{Type: "click_card", Card: &CardRefDTO{Suit: "X", Rank: "A", Deck: "a"}}).ToEngine()
	assert.Error(t, err, "bad suit must fail")

	_, err = (&ActionDTO{Type: "click_card", Card: &CardRefDTO{Suit: "H", Rank: "14", Deck: "a"}}).ToEngine()
	assert.Error(t, err, "rank out of range must fail")

	_, err = (&ActionDTO{Type: "teleport"}).ToEngine()
	assert.Error(t, err, "unknown type must fail")

	var missing *ActionDTO
	_, err = missing.ToEngine()
	assert.Error(t, err, "nil action must fail")

	serve, err := (&ActionDTO{Type: "serve"}).ToEngine()
	require.NoError(t, err)
	assert.Equal(t, engine.ActionServe, serve.Type)
}
