package imaging

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// LoadGray decodes the image file at path into an 8-bit grayscale buffer.
//
// PNG, JPEG and TIFF inputs are supported. Color inputs are converted to
// grayscale using the standard luminance weights. A failure to open or
// decode the file is returned to the caller; the scanner treats it as a
// recoverable per-image error.
func LoadGray(path string) (*image.Gray, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return ToGray(img), nil
}

// ToGray converts any image to *image.Gray with bounds anchored at (0,0).
// Images that already satisfy both are returned unchanged.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Bounds().Min == image.Pt(0, 0) {
		return g
	}
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray
}
