// Package placeholder fetches the decorative random card pictures.
// The pictures have no link to the character; they are keyed only by index.
package placeholder

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strconv"

	_ "golang.org/x/image/webp"
)

// DefaultBaseURL is the public placeholder service.
const DefaultBaseURL = "https://picsum.photos/300"

// maxImageBytes bounds the body we are willing to decode.
const maxImageBytes = 8 << 20

// URL returns the picture URL for a card index.
func URL(base string, index int) string {
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("random", strconv.Itoa(index))
	u.RawQuery = q.Encode()
	return u.String()
}

// Fetch downloads and decodes the picture at target.
func Fetch(ctx context.Context, client *http.Client, target string) (image.Image, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching image: unexpected status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}
