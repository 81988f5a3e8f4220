package maploader_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridpibt/maploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReader_Basic(t *testing.T) {
	src := "3 3\n" +
		". . .\n" +
		". @ .\n" +
		". . .\n"

	g, err := maploader.LoadReader(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 8, g.NumNodes())

	_, ok := g.GetNode(1, 1)
	assert.False(t, ok)
}

func TestLoadReader_CustomFreeToken(t *testing.T) {
	src := "2 1\nX #\n"
	g, err := maploader.LoadReader(strings.NewReader(src), maploader.WithFreeToken("X"))
	require.NoError(t, err)
	_, ok := g.GetNode(0, 0)
	assert.True(t, ok)
	_, ok = g.GetNode(1, 0)
	assert.False(t, ok)
}

func TestLoadReader_Errors(t *testing.T) {
	_, err := maploader.LoadReader(strings.NewReader(""))
	assert.ErrorIs(t, err, maploader.ErrTruncatedHeader)

	_, err = maploader.LoadReader(strings.NewReader("two 3\n"))
	assert.ErrorIs(t, err, maploader.ErrBadHeader)

	_, err = maploader.LoadReader(strings.NewReader("2 2\n. .\n. \n"))
	assert.ErrorIs(t, err, maploader.ErrTruncatedBody)
}
