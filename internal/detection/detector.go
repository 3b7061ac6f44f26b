package detection

import (
	"image"

	"crater-scan/internal/imaging"
)

// DetectCraters runs the full rim detection pipeline on one grayscale image:
// smooth, binarize, extract edges, trace boundaries, fit ellipses. The
// returned ellipses are in boundary discovery order. An empty slice means the
// image was processed and nothing qualified; the caller decides how to
// represent that.
func DetectCraters(gray *image.Gray, opts Options) []Ellipse {
	smoothed := imaging.Smooth(gray)
	binary := imaging.Binarize(smoothed, opts.BinarizeLevel)
	edges := imaging.EdgeMap(binary, opts.EdgeLow, opts.EdgeHigh)

	var detections []Ellipse
	for _, curve := range TraceBoundaries(edges) {
		if e, ok := FitEllipse(curve, opts); ok {
			detections = append(detections, e)
		}
	}
	return detections
}
