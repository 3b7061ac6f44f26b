// Package overlay renders detected ellipses over the source image for visual
// inspection of fits.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"crater-scan/internal/detection"
)

// goldenAngle spaces detection hues so neighboring indices stay visually
// distinct.
const goldenAngle = 137.508

// Render draws each ellipse outline over a copy of the source image, one
// hue per detection, with a small cross at the center.
func Render(gray *image.Gray, ellipses []detection.Ellipse) *image.NRGBA {
	bounds := gray.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), gray, bounds.Min, draw.Src)

	for i, e := range ellipses {
		col := detectionColor(i)
		drawEllipse(out, e, col)
		drawCross(out, int(e.CenterX+0.5), int(e.CenterY+0.5), col)
	}
	return out
}

// Save renders the overlay and writes it as PNG, creating parent directories
// as needed.
func Save(gray *image.Gray, ellipses []detection.Ellipse, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create overlay directory: %w", err)
	}
	if err := imaging.Save(Render(gray, ellipses), path); err != nil {
		return fmt.Errorf("failed to save overlay %s: %w", path, err)
	}
	return nil
}

func detectionColor(i int) color.NRGBA {
	c := colorful.Hsv(math.Mod(float64(i)*goldenAngle, 360), 0.85, 0.95)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func drawEllipse(img *image.NRGBA, e detection.Ellipse, col color.NRGBA) {
	sin, cos := math.Sincos(e.RotationDeg * math.Pi / 180)

	// Step count scales with the perimeter so the outline stays closed.
	steps := int(8 * e.SemiMajor)
	if steps < 64 {
		steps = 64
	}
	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		dx := e.SemiMajor * math.Cos(t)
		dy := e.SemiMinor * math.Sin(t)
		x := int(e.CenterX + dx*cos - dy*sin + 0.5)
		y := int(e.CenterY + dx*sin + dy*cos + 0.5)
		setPx(img, x, y, col)
	}
}

func drawCross(img *image.NRGBA, cx, cy int, col color.NRGBA) {
	for d := -2; d <= 2; d++ {
		setPx(img, cx+d, cy, col)
		setPx(img, cx, cy+d, col)
	}
}

func setPx(img *image.NRGBA, x, y int, col color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, col)
	}
}
