package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/segment"
)

// BinarizeLevel is the global intensity cut separating crater shadow from
// lit terrain. Samples strictly above it become foreground (255). The same
// constant is applied to every image; crater interiors are dark enough that
// an adaptive threshold buys nothing on this dataset.
const BinarizeLevel uint8 = 30

// gaussian5 is a 5x5 Gaussian kernel with sigma ~1.4, sum 273.
var gaussian5 = [5][5]float64{
	{1, 4, 7, 4, 1},
	{4, 16, 26, 16, 4},
	{7, 26, 41, 26, 7},
	{4, 16, 26, 16, 4},
	{1, 4, 7, 4, 1},
}

const gaussian5Sum = 273.0

// Smooth applies the fixed 5x5 Gaussian kernel to reduce sensor noise before
// thresholding. Border samples are replicated so the convolution introduces
// no artificial boundaries at the image edge.
func Smooth(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64
			for ky := -2; ky <= 2; ky++ {
				for kx := -2; kx <= 2; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					sum += float64(gray.GrayAt(px, py).Y) * gaussian5[ky+2][kx+2]
				}
			}
			out.Pix[y*out.Stride+x] = uint8(sum/gaussian5Sum + 0.5)
		}
	}
	return out
}

// Binarize maps every sample strictly greater than level to 255 and the rest
// to 0. segment.Threshold keeps samples >= its level, hence the +1. No sample
// exceeds 255, so that level produces an all-background map instead of
// wrapping the threshold around to 0.
func Binarize(gray *image.Gray, level uint8) *image.Gray {
	if level == math.MaxUint8 {
		bounds := gray.Bounds()
		return image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	}
	return segment.Threshold(gray, level+1)
}

// clamp constrains v to [min, max]. Used for replicated-border convolution.
func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
