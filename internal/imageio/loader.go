// Package imageio decodes frames and masks from disk.
package imageio

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Loader decodes frame and mask images. The zero value is ready to use.
type Loader struct{}

// NewLoader returns a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadImage decodes the frame at path as stored, keeping its color model.
func (l *Loader) LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", path, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("decode frame %s: empty image", path)
	}
	return img, nil
}

// LoadMask decodes the mask at path as a single-channel image. If size is
// non-zero and differs from the mask's size the mask is resized to it with
// nearest-neighbour sampling, which keeps a binary mask binary.
func (l *Loader) LoadMask(path string, size image.Point) (*image.Gray, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode mask %s: %w", path, err)
	}

	if size != (image.Point{}) && img.Bounds().Size() != size {
		img = imaging.Resize(img, size.X, size.Y, imaging.NearestNeighbor)
	}
	return toGray(img), nil
}

// toGray converts img to *image.Gray with its origin at (0, 0).
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Rect.Min == (image.Point{}) {
		return g
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Rect, img, b.Min, draw.Src)
	return gray
}
