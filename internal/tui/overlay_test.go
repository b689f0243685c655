package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverlayAtReplacesMiddleOfLine(t *testing.T) {
	base := "aaaaaa\nbbbbbb\ncccccc"

	out := overlayAt(base, "XX", 2, 1, 6, 3)
	lines := strings.Split(out, "\n")
	require.Equal(t, "aaaaaa", lines[0])
	require.Equal(t, "bbXXbb", lines[1])
	require.Equal(t, "cccccc", lines[2])
}

func TestOverlayAtIgnoresRowsOutsideBase(t *testing.T) {
	base := "aaaa"

	out := overlayAt(base, "X\nY", 0, 0, 4, 1)
	require.Equal(t, "Xaaa", out)
}

func TestOverlayCenteredLandsOnLastRow(t *testing.T) {
	base := "aaaaaaaa\nbbbbbbbb\ncccccccc"

	out := overlayCentered(base, "[ok]", 8)
	lines := strings.Split(out, "\n")
	require.Equal(t, "aaaaaaaa", lines[0])
	require.Equal(t, "cc[ok]cc", lines[2])
}
