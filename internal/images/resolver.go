// Package images fetches remote vehicle photos and prepares them for
// embedding: bounded shrink-to-fit resize and fixed-quality JPEG re-encode.
package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"time"

	// Register decoders for the formats the media lists carry
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/cache"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/logging"
)

// ErrUnresolvable is returned when both fetch attempts fail. Callers treat
// the image as absent and continue.
var ErrUnresolvable = errors.New("image could not be resolved")

// jpegQuality is the fixed lossy quality used when re-encoding for embedding
const jpegQuality = 80

// Raster is a decoded image together with its source URL
type Raster struct {
	SourceURL string
	Image     image.Image
}

// Encoded is a re-encoded JPEG ready for embedding
type Encoded struct {
	Data   []byte
	Width  int
	Height int
}

// Resolver fetches and decodes remote images. Resolution is sequential by
// design: the document exporter awaits one image at a time.
type Resolver struct {
	client *http.Client
	cache  cache.Cache
	logger *logging.Logger
}

// NewResolver creates a resolver. cache may be nil to disable caching.
func NewResolver(client *http.Client, c cache.Cache, logger *logging.Logger) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Resolver{client: client, cache: c, logger: logger}
}

// Resolve fetches and decodes one image. The first attempt is tagged with an
// anonymous Origin header (mirroring a cross-origin fetch, which some CDNs
// require for cacheable responses); on failure it retries once untagged.
// Both failing yields ErrUnresolvable.
func (r *Resolver) Resolve(ctx context.Context, url string) (*Raster, error) {
	img, err := r.fetch(ctx, url, true)
	if err != nil {
		img, err = r.fetch(ctx, url, false)
	}
	if err != nil {
		r.logger.Debug("Image unresolvable", logging.WithFields(map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		}))
		return nil, ErrUnresolvable
	}
	return &Raster{SourceURL: url, Image: img}, nil
}

// ResolveEncoded resolves an image and returns it resized within the given
// bounds and re-encoded as JPEG. Results are cached keyed by URL and bounds.
func (r *Resolver) ResolveEncoded(ctx context.Context, url string, maxW, maxH int) (*Encoded, error) {
	key := fmt.Sprintf("img:%s|%dx%d", url, maxW, maxH)
	if r.cache != nil {
		if data, ok := r.cache.Get(key); ok {
			if enc := decodeCached(data); enc != nil {
				return enc, nil
			}
		}
	}

	raster, err := r.Resolve(ctx, url)
	if err != nil {
		return nil, err
	}

	resized := Resize(raster.Image, maxW, maxH)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode image %s: %w", url, err)
	}

	bounds := resized.Bounds()
	enc := &Encoded{
		Data:   buf.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	if r.cache != nil {
		r.cache.Set(key, enc.Data)
	}
	return enc, nil
}

func (r *Resolver) fetch(ctx context.Context, url string, tagged bool) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "image/*")
	if tagged {
		req.Header.Set("Origin", "null")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Resize scales an image preserving aspect ratio so that neither bound is
// exceeded. Images already within bounds are returned untouched; nothing is
// ever upscaled. Width is constrained first, then height corrected.
func Resize(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || (w <= maxW && h <= maxH) {
		return img
	}

	targetW, targetH := w, h
	if targetW > maxW {
		targetW = maxW
		targetH = targetW * h / w
	}
	if targetH > maxH {
		targetH = maxH
		targetW = targetH * w / h
	}
	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func decodeCached(data []byte) *Encoded {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return &Encoded{Data: data, Width: cfg.Width, Height: cfg.Height}
}
