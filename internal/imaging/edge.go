package imaging

import (
	"image"
	"math"
)

// Default hysteresis thresholds for EdgeMap, applied to raw Sobel gradient
// magnitudes on the 0-255 intensity scale.
const (
	EdgeLowThreshold  = 50.0
	EdgeHighThreshold = 150.0
)

var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// EdgeMap produces a binary edge map (edges 255, background 0) from a
// grayscale image using gradient analysis:
//
//  1. Sobel gradients: magnitude = sqrt(Gx² + Gy²), direction = atan2(Gy, Gx)
//  2. Non-maximum suppression: keep only local maxima along the gradient
//     direction, thinning edges toward 1-pixel width
//  3. Hysteresis: magnitudes >= high are strong edges and always kept;
//     magnitudes in [low, high) are kept only when adjacent to a strong edge
//
// The result is fully deterministic for a given input.
func EdgeMap(gray *image.Gray, low, high float64) *image.Gray {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	magnitude := make([][]float64, height)
	direction := make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					v := float64(gray.GrayAt(px, py).Y)
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression, comparing the two neighbors that lie along
	// the gradient direction. y grows downward, so a gradient at +45
	// degrees runs along the main (down-right) diagonal. Border pixels are
	// dropped: their gradient neighborhood is incomplete.
	//
	// Plateau ties break asymmetrically (strict against n1): a hard
	// intensity step yields a two-pixel ridge of equal magnitudes, and
	// keeping both sides would double every edge.
	suppressed := make([][]float64, height)
	for y := 0; y < height; y++ {
		suppressed[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				continue
			}

			angle := direction[y][x]
			mag := magnitude[y][x]

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1 = magnitude[y][x-1]
				n2 = magnitude[y][x+1]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1 = magnitude[y-1][x-1]
				n2 = magnitude[y+1][x+1]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1 = magnitude[y-1][x]
				n2 = magnitude[y+1][x]
			default:
				n1 = magnitude[y-1][x+1]
				n2 = magnitude[y+1][x-1]
			}

			if mag > n1 && mag >= n2 {
				suppressed[y][x] = mag
			}
		}
	}

	out := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			mag := suppressed[y][x]
			if mag >= high {
				out.Pix[y*out.Stride+x] = 255
				continue
			}
			if mag < low {
				continue
			}
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					if suppressed[py][px] >= high {
						out.Pix[y*out.Stride+x] = 255
					}
				}
			}
		}
	}
	return out
}
