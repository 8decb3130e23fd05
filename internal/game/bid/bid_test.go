package bid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/landlord-engine/internal/apperrors"
	"github.com/palemoky/landlord-engine/internal/game/turn"
)

func newBidding(t *testing.T) *Bidding {
	t.Helper()
	ring, err := turn.NewRing("p1", "p2", "p3")
	require.NoError(t, err)
	return New(ring)
}

// decideAll 按当前轮到的玩家依次表态
func decideAll(t *testing.T, b *Bidding, accepts ...bool) State {
	t.Helper()
	var state State
	for _, accepted := range accepts {
		var err error
		state, err = b.Decide(b.Current(), accepted)
		require.NoError(t, err)
	}
	return state
}

func TestBidding_AllDecline(t *testing.T) {
	t.Parallel()

	b := newBidding(t)
	state := decideAll(t, b, false, false, false)

	assert.Equal(t, StateRestart, state)
	assert.True(t, b.Resolved())
	_, ok := b.Landlord()
	assert.False(t, ok)
	assert.Empty(t, b.Current())
	assert.Equal(t, 3, b.Round())
}

func TestBidding_SingleAccepter(t *testing.T) {
	t.Parallel()

	b := newBidding(t)
	state := decideAll(t, b, false, true, false)

	assert.Equal(t, StateLandlordAssigned, state)
	landlord, ok := b.Landlord()
	require.True(t, ok)
	assert.Equal(t, "p2", landlord)
	assert.Equal(t, "p2", b.Current())
	assert.Equal(t, []string{"p2"}, b.Accepters())
}

func TestBidding_FirstRoundAdvancesInRingOrder(t *testing.T) {
	t.Parallel()

	b := newBidding(t)
	assert.Equal(t, "p1", b.Current())

	state := decideAll(t, b, true)
	assert.Equal(t, StateAwaitingFirstRound, state)
	assert.Equal(t, "p2", b.Current())

	state = decideAll(t, b, false)
	assert.Equal(t, StateAwaitingFirstRound, state)
	assert.Equal(t, "p3", b.Current())
}

func TestBidding_SecondRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		firstRound    []bool
		secondBidder  string
		secondAccepts bool
		landlord      string
	}{
		{
			name:          "first accepter declines, last accepter wins",
			firstRound:    []bool{true, true, false},
			secondBidder:  "p1",
			secondAccepts: false,
			landlord:      "p2",
		},
		{
			name:          "first accepter grabs again",
			firstRound:    []bool{true, true, false},
			secondBidder:  "p1",
			secondAccepts: true,
			landlord:      "p1",
		},
		{
			name:          "skips player who declined",
			firstRound:    []bool{false, true, true},
			secondBidder:  "p2",
			secondAccepts: false,
			landlord:      "p3",
		},
		{
			name:          "everyone accepted",
			firstRound:    []bool{true, true, true},
			secondBidder:  "p1",
			secondAccepts: false,
			landlord:      "p3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := newBidding(t)
			state := decideAll(t, b, tt.firstRound...)
			require.Equal(t, StateSecondRound, state)
			require.Equal(t, tt.secondBidder, b.Current())

			state, err := b.Decide(tt.secondBidder, tt.secondAccepts)
			require.NoError(t, err)
			assert.Equal(t, StateLandlordAssigned, state)

			landlord, ok := b.Landlord()
			require.True(t, ok)
			assert.Equal(t, tt.landlord, landlord)
			assert.Equal(t, tt.landlord, b.Current())
			assert.Equal(t, 4, b.Round())
		})
	}
}

func TestBidding_DecideAfterResolvedIsNoop(t *testing.T) {
	t.Parallel()

	b := newBidding(t)
	decideAll(t, b, false, true, false)

	state, err := b.Decide("p1", true)
	require.NoError(t, err)
	assert.Equal(t, StateLandlordAssigned, state)
	assert.Equal(t, 3, b.Round())
	assert.Len(t, b.Decisions(), 3)
	landlord, _ := b.Landlord()
	assert.Equal(t, "p2", landlord)
}

func TestBidding_Errors(t *testing.T) {
	t.Parallel()

	b := newBidding(t)

	_, err := b.Decide("ghost", true)
	assert.ErrorIs(t, err, apperrors.ErrPlayerNotFound)

	_, err = b.Decide("p2", true)
	assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)

	assert.Equal(t, 0, b.Round())
	assert.Equal(t, "p1", b.Current())
}

func TestBidding_Decisions(t *testing.T) {
	t.Parallel()

	b := newBidding(t)
	decideAll(t, b, true, false, true)

	assert.Equal(t, []Decision{
		{PlayerID: "p1", Accepted: true},
		{PlayerID: "p2", Accepted: false},
		{PlayerID: "p3", Accepted: true},
	}, b.Decisions())
	assert.Equal(t, "SECOND_ROUND", b.State().String())
}
