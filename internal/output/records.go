// Package output converts per-image detection sets into solution rows and
// writes them as CSV for the downstream scoring tools.
package output

import (
	"math"

	"crater-scan/internal/detection"
)

// ClassificationPlaceholder fills the crater_classification column of every
// row; classification is never computed.
const ClassificationPlaceholder = "-1"

// Record is one output row: either a fitted rim or the no-detection sentinel.
// Sentinel rows carry -1 in all five geometric fields.
type Record struct {
	Image       string
	CenterX     float64
	CenterY     float64
	SemiMajor   float64
	SemiMinor   float64
	RotationDeg float64
	Sentinel    bool
}

// BuildRecords converts one image's detections into rows. An empty detection
// set produces exactly one sentinel row, so every processed image is
// represented in the output. Otherwise there is one row per ellipse, in
// discovery order, with geometric fields rounded to two decimals.
func BuildRecords(id string, ellipses []detection.Ellipse) []Record {
	if len(ellipses) == 0 {
		return []Record{{
			Image:       id,
			CenterX:     -1,
			CenterY:     -1,
			SemiMajor:   -1,
			SemiMinor:   -1,
			RotationDeg: -1,
			Sentinel:    true,
		}}
	}

	records := make([]Record, 0, len(ellipses))
	for _, e := range ellipses {
		records = append(records, Record{
			Image:       id,
			CenterX:     round2(e.CenterX),
			CenterY:     round2(e.CenterY),
			SemiMajor:   round2(e.SemiMajor),
			SemiMinor:   round2(e.SemiMinor),
			RotationDeg: round2(e.RotationDeg),
		})
	}
	return records
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
