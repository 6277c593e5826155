package color_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, c := range []color.Color{color.Red, color.Yellow, color.Green, color.Blue, color.Wild} {
		found, err := color.ByName(c.Name())
		require.NoError(t, err)
		require.Equal(t, c, found)
	}

	_, err := color.ByName("purple")
	require.Error(t, err)
}

func TestValid(t *testing.T) {
	require.False(t, color.None.Valid())
	require.False(t, color.Wild.Valid())
	for _, c := range color.Playable {
		require.True(t, c.Valid())
	}
}
