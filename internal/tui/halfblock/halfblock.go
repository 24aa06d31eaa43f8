// Package halfblock renders images as terminal art using colored half-block cells.
package halfblock

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Render scales img to cols x rows terminal cells and draws it with '▀'.
// Each cell covers two vertical pixels: the foreground is the top pixel and
// the background the bottom one.
func Render(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	scaled := scale(img, cols, rows*2)

	var result strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := scaled.RGBAAt(col, row*2)
			bottom := scaled.RGBAAt(col, row*2+1)

			cell := lipgloss.NewStyle().
				Foreground(hex(top)).
				Background(hex(bottom)).
				Render("▀")
			result.WriteString(cell)
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

// scale resizes img into a new RGBA of the given size.
func scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Cache memoizes rendered images by key.
type Cache struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Get returns the cached rendering of key at the given size, rendering it with
// load on a miss. load errors are not cached.
func (c *Cache) Get(key string, cols, rows int, load func() (image.Image, error)) (string, error) {
	k := fmt.Sprintf("%s@%dx%d", key, cols, rows)

	c.mu.Lock()
	if cached, ok := c.entries[k]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	img, err := load()
	if err != nil {
		return "", err
	}
	rendered := Render(img, cols, rows)

	c.mu.Lock()
	c.entries[k] = rendered
	c.mu.Unlock()

	return rendered, nil
}

// Len returns the number of cached renderings.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
