// Package monogram renders short text, such as a character's initials, as
// large block art using half-block cells.
package monogram

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	faceSize  = 64
	padding   = 4
	threshold = 40
)

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

func loadFace() (font.Face, error) {
	faceOnce.Do(func() {
		fnt, err := opentype.Parse(gobold.TTF)
		if err != nil {
			faceErr = fmt.Errorf("parsing font: %w", err)
			return
		}
		face, faceErr = opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    faceSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face, faceErr
}

// Render draws text into cols x rows terminal cells using ▀▄█.
// It returns "" when there is nothing to draw.
func Render(text string, cols, rows int) string {
	if strings.TrimSpace(text) == "" || cols <= 0 || rows <= 0 {
		return ""
	}
	f, err := loadFace()
	if err != nil {
		return ""
	}

	bounds, advance := font.BoundString(f, text)
	textWidth := advance.Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	srcWidth := max(textWidth+padding*2, faceSize)
	srcHeight := max(textHeight+padding*2, faceSize)

	// Grow the canvas to the target aspect so the letters are not stretched.
	targetWidth, targetHeight := cols, rows*2
	if srcWidth*targetHeight < srcHeight*targetWidth {
		srcWidth = srcHeight * targetWidth / targetHeight
	} else {
		srcHeight = srcWidth * targetHeight / targetWidth
	}

	src := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	x := (srcWidth - textWidth) / 2
	y := (srcHeight-textHeight)/2 - bounds.Min.Y.Floor()

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)

	return toBlocks(scale(src, targetWidth, targetHeight), cols, rows)
}

// scale resizes a grayscale image; shrinking averages the covered pixels.
func scale(src *image.Gray, width, height int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// toBlocks maps each pair of vertical pixels to one cell.
func toBlocks(img *image.Gray, cols, rows int) string {
	on := func(x, y int) bool {
		return img.GrayAt(x, y).Y > threshold
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top, bottom := on(col, row*2), on(col, row*2+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]string)
)

// Cached returns the rendering of text at the given size, rendering it once.
func Cached(text string, cols, rows int) string {
	key := fmt.Sprintf("%s@%dx%d", text, cols, rows)

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if s, ok := cache[key]; ok {
		return s
	}
	s := Render(text, cols, rows)
	cache[key] = s
	return s
}
