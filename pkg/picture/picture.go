// Package picture loads the image a pinned window shows.
package picture

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/dixieflatline76/pin/pkg/geometry"
)

// ErrEmpty is returned for images with no pixels.
var ErrEmpty = errors.New("image has no pixels")

// Picture is an immutable decoded image.
type Picture struct {
	Path   string
	Format string
	Image  image.Image
}

// Load decodes the image at path, applying any EXIF orientation so the
// natural size matches what the user sees.
func Load(path string) (*Picture, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("decoding %s: %w", path, ErrEmpty)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = f.String()
	}

	return &Picture{Path: path, Format: format, Image: img}, nil
}

// Size returns the natural size in pixels.
func (p *Picture) Size() geometry.Size {
	b := p.Image.Bounds()
	return geometry.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Aspect returns the natural aspect ratio.
func (p *Picture) Aspect() float64 {
	return p.Size().Aspect()
}

// Rounded returns a copy of the image with its corners cut to radius pixels.
// Edge pixels of the arc are partially transparent so the curve is smooth.
func (p *Picture) Rounded(radius float64) *image.NRGBA {
	return RoundCorners(p.Image, radius)
}

// RoundCorners returns an NRGBA copy of img with transparent rounded corners.
func RoundCorners(img image.Image, radius float64) *image.NRGBA {
	dst := imaging.Clone(img)
	w, h := dst.Rect.Dx(), dst.Rect.Dy()

	radius = math.Min(radius, math.Min(float64(w), float64(h))/2)
	if radius <= 0 {
		return dst
	}

	r := int(math.Ceil(radius))
	for y := 0; y < r; y++ {
		for x := 0; x < r; x++ {
			// Distance from the arc center to this pixel's center.
			dx := radius - (float64(x) + 0.5)
			dy := radius - (float64(y) + 0.5)
			cover := radius + 0.5 - math.Hypot(dx, dy)
			if cover >= 1 {
				continue
			}
			if cover < 0 {
				cover = 0
			}
			for _, pt := range [4][2]int{{x, y}, {w - 1 - x, y}, {x, h - 1 - y}, {w - 1 - x, h - 1 - y}} {
				i := dst.PixOffset(pt[0], pt[1])
				dst.Pix[i+3] = uint8(float64(dst.Pix[i+3]) * cover)
			}
		}
	}
	return dst
}
