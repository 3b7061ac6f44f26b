package detection

import (
	"image"
	"math"
	"testing"
)

func TestFitEllipse_RecoversParameters(t *testing.T) {
	tests := []struct {
		name                 string
		cx, cy               float64
		semiMajor, semiMinor float64
		rotDeg               float64
	}{
		{"axis aligned", 100, 100, 20, 10, 0},
		{"rotated 30", 100, 100, 20, 10, 30},
		{"rotated 120", 80, 60, 30, 12, 120},
		{"near circle", 50, 50, 15, 14, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve := ellipsePoints(tt.cx, tt.cy, tt.semiMajor, tt.semiMinor, tt.rotDeg, 72)

			e, ok := FitEllipse(curve, DefaultOptions())
			if !ok {
				t.Fatal("fit rejected a well-formed ellipse")
			}

			if math.Abs(e.CenterX-tt.cx) > 0.5 || math.Abs(e.CenterY-tt.cy) > 0.5 {
				t.Errorf("center: got (%.2f, %.2f), want (%.1f, %.1f)", e.CenterX, e.CenterY, tt.cx, tt.cy)
			}
			if math.Abs(e.SemiMajor-tt.semiMajor) > 1 {
				t.Errorf("semi-major: got %.2f, want %.1f", e.SemiMajor, tt.semiMajor)
			}
			if math.Abs(e.SemiMinor-tt.semiMinor) > 1 {
				t.Errorf("semi-minor: got %.2f, want %.1f", e.SemiMinor, tt.semiMinor)
			}
			// Rotation is only well defined away from circles.
			if tt.semiMajor-tt.semiMinor > 2 {
				if angleDist(e.RotationDeg, tt.rotDeg) > 3 {
					t.Errorf("rotation: got %.2f, want %.1f", e.RotationDeg, tt.rotDeg)
				}
			}
		})
	}
}

func TestFitEllipse_AxisOrderInvariant(t *testing.T) {
	// The generator's first axis (8) is the short one: rotating it to
	// vertical leaves the 25 axis horizontal. The fitter must come back
	// ordered major-first with the rotation following the long axis, so
	// the expected angle is 0, not the 90 handed to the generator.
	curve := ellipsePoints(60, 60, 8, 25, 90, 72)

	e, ok := FitEllipse(curve, DefaultOptions())
	if !ok {
		t.Fatal("fit rejected a well-formed ellipse")
	}
	if e.SemiMajor < e.SemiMinor {
		t.Errorf("axis order violated: semi-major %.2f < semi-minor %.2f", e.SemiMajor, e.SemiMinor)
	}
	if e.SemiMinor <= 0 {
		t.Errorf("semi-minor must be positive, got %.2f", e.SemiMinor)
	}
	if math.Abs(e.SemiMajor-25) > 1 {
		t.Errorf("semi-major: got %.2f, want 25", e.SemiMajor)
	}
	if math.Abs(e.SemiMinor-8) > 1 {
		t.Errorf("semi-minor: got %.2f, want 8", e.SemiMinor)
	}
	if angleDist(e.RotationDeg, 0) > 3 {
		t.Errorf("rotation: got %.2f, want 0", e.RotationDeg)
	}
	if e.RotationDeg < 0 || e.RotationDeg >= 180 {
		t.Errorf("rotation %.2f outside [0, 180)", e.RotationDeg)
	}
}

func TestFitEllipse_RejectsShortCurves(t *testing.T) {
	curve := ellipsePoints(50, 50, 20, 10, 0, 4)
	if _, ok := FitEllipse(curve, DefaultOptions()); ok {
		t.Error("curves below the 5-point minimum must be rejected")
	}
	if _, ok := FitEllipse(nil, DefaultOptions()); ok {
		t.Error("empty curves must be rejected")
	}
}

func TestFitEllipse_RejectsSmallAxes(t *testing.T) {
	// Full axes 18 x 8: the minor axis is under the 10-pixel floor.
	curve := ellipsePoints(50, 50, 9, 4, 20, 72)
	if _, ok := FitEllipse(curve, DefaultOptions()); ok {
		t.Error("fits with a full axis under MinAxisPx must be rejected")
	}
}

func TestFitEllipse_RejectsDegenerateCurves(t *testing.T) {
	var line []image.Point
	for i := 0; i < 30; i++ {
		line = append(line, image.Pt(10+i, 20+i))
	}
	if _, ok := FitEllipse(line, DefaultOptions()); ok {
		t.Error("a straight line must not fit an ellipse")
	}
}

// ellipsePoints samples n integer points along an ellipse boundary.
func ellipsePoints(cx, cy, semiMajor, semiMinor, rotDeg float64, n int) []image.Point {
	sin, cos := math.Sincos(rotDeg * math.Pi / 180)
	pts := make([]image.Point, 0, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		dx := semiMajor * math.Cos(t)
		dy := semiMinor * math.Sin(t)
		x := cx + dx*cos - dy*sin
		y := cy + dx*sin + dy*cos
		pts = append(pts, image.Pt(int(math.Round(x)), int(math.Round(y))))
	}
	return pts
}

// angleDist returns the distance between two axis orientations in degrees,
// accounting for the 180-degree wraparound.
func angleDist(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 180)
	if d > 90 {
		d = 180 - d
	}
	return d
}
