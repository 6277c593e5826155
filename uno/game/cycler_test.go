package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Next()
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
}

func TestCyclerReverse(t *testing.T) {
	cycler := game.NewCycler(4)
	require.Equal(t, 1, cycler.Direction())
	cycler.Reverse()
	require.Equal(t, -1, cycler.Direction())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	cycler.Reverse()
	require.Equal(t, 1, cycler.Direction())
	assert.Equal(t, 3, cycler.Next())
}

func TestPeekAndAdvance(t *testing.T) {
	cycler := game.NewCycler(3)
	cycler.Set(2)
	assert.Equal(t, 0, cycler.Peek(1))
	assert.Equal(t, 1, cycler.Peek(2))
	assert.Equal(t, 2, cycler.Current())

	assert.Equal(t, 1, cycler.Advance(2))
	cycler.Reverse()
	assert.Equal(t, 2, cycler.Peek(2))
	assert.Equal(t, 0, cycler.Peek(1))
	assert.Equal(t, 0, cycler.Advance(1))
}
