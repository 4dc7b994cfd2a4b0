package photos

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	fetchTimeout = 10 * time.Second
	cacheQuality = 95
)

// Fetcher downloads speaker photos and keeps a content-addressed cache on
// disk, keyed by a hash of the source URL. Entries live forever unless
// they turn out to be unreadable, in which case they are dropped and
// fetched again.
type Fetcher struct {
	cacheDir string
	client   *retryablehttp.Client
}

func NewFetcher(cacheDir string) (*Fetcher, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.Logger = nil
	client.HTTPClient.Timeout = fetchTimeout

	return &Fetcher{cacheDir: cacheDir, client: client}, nil
}

func cacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])[:16]
}

func (f *Fetcher) cachePath(url string) string {
	return filepath.Join(f.cacheDir, cacheKey(url)+".jpg")
}

// Fetch returns the photo at url, or nil if it cannot be obtained.
// Failures are logged, never returned: a missing photo degrades to an
// avatar-less card.
func (f *Fetcher) Fetch(url string) image.Image {
	path := f.cachePath(url)

	if data, err := os.ReadFile(path); err == nil {
		img, err := imaging.Decode(bytes.NewReader(data))
		if err == nil {
			return img
		}
		// Unreadable entry, treat as a miss.
		log.Printf("Removing corrupted cache entry for %s: %v", url, err)
		os.Remove(path)
	}

	resp, err := f.client.Get(url)
	if err != nil {
		log.Printf("Failed to download photo %s: %v", url, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Failed to download photo %s: status code %d", url, resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Failed to read photo %s: %v", url, err)
		return nil
	}

	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		log.Printf("Failed to decode photo %s: %v", url, err)
		return nil
	}

	// The cache artifact is JPEG, so transparency is flattened onto
	// white before saving.
	flat := flatten(img)
	if err := f.store(path, flat); err != nil {
		log.Printf("Failed to cache photo %s: %v", url, err)
	}
	return flat
}

func flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), color.NRGBA{255, 255, 255, 255})
	return imaging.Overlay(canvas, img, image.Point{}, 1.0)
}

func (f *Fetcher) store(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return imaging.Encode(out, img, imaging.JPEG, imaging.JPEGQuality(cacheQuality))
}
