package monogram

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out := Render("LS", 24, 10)
	require.NotEmpty(t, out)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.Equal(t, 24, utf8.RuneCountInString(line))
	}
	assert.Contains(t, out, "█")
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render("", 24, 10))
	assert.Empty(t, Render("  ", 24, 10))
	assert.Empty(t, Render("LS", 0, 10))
	assert.Empty(t, Render("LS", 24, 0))
}

func TestRender_BlankEdges(t *testing.T) {
	out := Render("I", 30, 10)
	lines := strings.Split(out, "\n")
	// padding keeps the outer columns clear
	for _, line := range lines {
		r := []rune(line)
		assert.Equal(t, ' ', r[0])
		assert.Equal(t, ' ', r[len(r)-1])
	}
}

func TestCached(t *testing.T) {
	first := Cached("CP", 20, 8)
	assert.Equal(t, Render("CP", 20, 8), first)
	assert.Equal(t, first, Cached("CP", 20, 8))
}

func TestScale(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			src.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	dst := scale(src, 2, 2)
	assert.Equal(t, image.Rect(0, 0, 2, 2), dst.Bounds())
	left, right := dst.GrayAt(0, 0).Y, dst.GrayAt(1, 0).Y
	assert.Greater(t, left, uint8(threshold))
	assert.Greater(t, left, right)
}
