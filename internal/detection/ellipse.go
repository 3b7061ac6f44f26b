package detection

import (
	"image"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Ellipse is one fitted crater rim.
type Ellipse struct {
	CenterX float64
	CenterY float64
	// SemiMajor and SemiMinor are semi-axis lengths in pixels.
	// SemiMajor >= SemiMinor > 0 always holds.
	SemiMajor float64
	SemiMinor float64
	// RotationDeg is the major-axis angle from the +X axis (Y down),
	// in degrees, normalized to [0, 180).
	RotationDeg float64
}

// Options holds the detection policy thresholds.
type Options struct {
	// BinarizeLevel is the global intensity threshold: samples strictly
	// above it are foreground. The maximum level 255 leaves no foreground.
	BinarizeLevel uint8
	// EdgeLow and EdgeHigh are the hysteresis thresholds for edge
	// extraction.
	EdgeLow  float64
	EdgeHigh float64
	// MinCurvePoints is the minimum boundary curve length accepted for
	// fitting. Below 5 points a conic fit is underdetermined.
	MinCurvePoints int
	// MinAxisPx rejects fits where either full axis (2x the semi-axis)
	// is shorter than this many pixels.
	MinAxisPx float64
}

// DefaultOptions returns the tuned thresholds for the crater dataset.
func DefaultOptions() Options {
	return Options{
		BinarizeLevel:  30,
		EdgeLow:        50,
		EdgeHigh:       150,
		MinCurvePoints: 5,
		MinAxisPx:      10,
	}
}

// FitEllipse fits the least-squares ellipse through a boundary curve.
//
// The reported (_, false) covers every rejection: curves shorter than
// MinCurvePoints, degenerate point sets, conics that are not ellipses, and
// fits below the MinAxisPx size filter.
func FitEllipse(curve []image.Point, opts Options) (Ellipse, bool) {
	n := len(curve)
	if n < opts.MinCurvePoints {
		return Ellipse{}, false
	}

	// Shift to the centroid for numerical conditioning.
	var mx, my float64
	for _, p := range curve {
		mx += float64(p.X)
		my += float64(p.Y)
	}
	mx /= float64(n)
	my /= float64(n)

	// Least-squares solve of A x² + B xy + C y² + D x + E y = 1.
	design := mat.NewDense(n, 5, nil)
	rhs := mat.NewVecDense(n, nil)
	for i, p := range curve {
		x := float64(p.X) - mx
		y := float64(p.Y) - my
		design.SetRow(i, []float64{x * x, x * y, y * y, x, y})
		rhs.SetVec(i, 1)
	}

	var coef mat.VecDense
	if err := coef.SolveVec(design, rhs); err != nil {
		return Ellipse{}, false
	}
	a, b, c := coef.AtVec(0), coef.AtVec(1), coef.AtVec(2)
	d, e := coef.AtVec(3), coef.AtVec(4)

	// An ellipse requires 4AC - B² > 0.
	det := 4*a*c - b*b
	if det <= 0 {
		return Ellipse{}, false
	}

	cx := (b*e - 2*c*d) / det
	cy := (b*d - 2*a*e) / det

	// Conic value at the center; negative inside a real ellipse.
	mu := a*cx*cx + b*cx*cy + c*cy*cy + d*cx + e*cy - 1
	if mu >= 0 || math.IsNaN(mu) {
		return Ellipse{}, false
	}

	// Axis lengths and orientation from the quadratic form
	// [[A, B/2], [B/2, C]]. Eigenvalues come back in ascending order, so
	// the first eigenpair is the major axis.
	var eig mat.EigenSym
	if !eig.Factorize(mat.NewSymDense(2, []float64{a, b / 2, b / 2, c}), true) {
		return Ellipse{}, false
	}
	vals := eig.Values(nil)
	if vals[0] <= 0 || vals[1] <= 0 {
		return Ellipse{}, false
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	fullMajor := 2 * math.Sqrt(-mu/vals[0])
	fullMinor := 2 * math.Sqrt(-mu/vals[1])
	angle := math.Atan2(vecs.At(1, 0), vecs.At(0, 0)) * 180 / math.Pi

	if fullMajor < opts.MinAxisPx || fullMinor < opts.MinAxisPx {
		return Ellipse{}, false
	}
	if fullMinor > fullMajor {
		fullMajor, fullMinor = fullMinor, fullMajor
	}

	for angle < 0 {
		angle += 180
	}
	for angle >= 180 {
		angle -= 180
	}

	return Ellipse{
		CenterX:     cx + mx,
		CenterY:     cy + my,
		SemiMajor:   fullMajor / 2,
		SemiMinor:   fullMinor / 2,
		RotationDeg: angle,
	}, true
}
