package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/landlord-engine/internal/apperrors"
	"github.com/palemoky/landlord-engine/internal/game/card"
)

func newStore() *MemoryStore {
	return NewMemoryStore(
		Info{ID: "p1", Name: "王二狗"},
		Info{ID: "p2", Name: "周扒皮"},
	)
}

var testHand = []card.Card{
	{ID: 1, Suit: card.Spade, Rank: card.Rank3},
	{ID: 54, Suit: card.Joker, Rank: card.RankRedJoker},
	{ID: 5, Suit: card.Spade, Rank: card.Rank4},
}

func TestMemoryStore_SetHandSorts(t *testing.T) {
	t.Parallel()

	s := newStore()
	require.NoError(t, s.SetHand("p1", testHand))

	hand, err := s.Hand("p1")
	require.NoError(t, err)
	assert.Equal(t, []int{54, 5, 1}, card.IDs(hand))

	n, err := s.HandSize("p1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMemoryStore_AddCards(t *testing.T) {
	t.Parallel()

	s := newStore()
	require.NoError(t, s.SetHand("p1", testHand))
	require.NoError(t, s.AddCards("p1", []card.Card{{ID: 49, Suit: card.Spade, Rank: card.Rank2}}))

	hand, err := s.Hand("p1")
	require.NoError(t, err)
	assert.Equal(t, []int{54, 49, 5, 1}, card.IDs(hand))
}

func TestMemoryStore_Selection(t *testing.T) {
	t.Parallel()

	s := newStore()
	require.NoError(t, s.SetHand("p1", testHand))

	require.NoError(t, s.MarkSelected("p1", 1, true))
	require.NoError(t, s.MarkSelected("p1", 54, true))
	require.NoError(t, s.MarkSelected("p1", 54, false))

	selected, err := s.Selected("p1")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, card.IDs(selected))

	err = s.MarkSelected("p1", 42, true)
	assert.ErrorIs(t, err, apperrors.ErrCardNotInHand)
}

func TestMemoryStore_RemoveCards(t *testing.T) {
	t.Parallel()

	s := newStore()
	require.NoError(t, s.SetHand("p1", testHand))
	require.NoError(t, s.MarkSelected("p1", 5, true))

	require.NoError(t, s.RemoveCards("p1", []int{5}))
	hand, err := s.Hand("p1")
	require.NoError(t, err)
	assert.Equal(t, []int{54, 1}, card.IDs(hand))

	selected, err := s.Selected("p1")
	require.NoError(t, err)
	assert.Empty(t, selected)

	// 任何一张不在手中时整体失败
	err = s.RemoveCards("p1", []int{1, 99})
	assert.ErrorIs(t, err, apperrors.ErrCardNotInHand)
	n, _ := s.HandSize("p1")
	assert.Equal(t, 2, n)
}

func TestMemoryStore_UnknownPlayer(t *testing.T) {
	t.Parallel()

	s := newStore()
	_, err := s.Hand("ghost")
	assert.ErrorIs(t, err, apperrors.ErrPlayerNotFound)
	assert.ErrorIs(t, s.SetHand("ghost", nil), apperrors.ErrPlayerNotFound)
	_, err = s.HandSize("ghost")
	assert.ErrorIs(t, err, apperrors.ErrPlayerNotFound)
}

func TestMemoryStore_Players(t *testing.T) {
	t.Parallel()

	s := newStore()
	assert.Equal(t, []Info{{ID: "p1", Name: "王二狗"}, {ID: "p2", Name: "周扒皮"}}, s.Players())
}
