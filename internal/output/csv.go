package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Header is the exact column set expected by the scoring tools.
var Header = []string{
	"ellipseCenterX(px)",
	"ellipseCenterY(px)",
	"ellipseSemimajor(px)",
	"ellipseSemiminor(px)",
	"ellipseRotation(deg)",
	"inputImage",
	"crater_classification",
}

// Writer emits records as comma-separated rows. It is not safe for
// concurrent use; the scanner serializes writes so each image's rows land as
// one contiguous block.
type Writer struct {
	csv *csv.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

func (w *Writer) WriteHeader() error {
	if err := w.csv.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// WriteRecords writes one image's rows. Detection fields use fixed
// two-decimal formatting; sentinel fields are the integer -1.
func (w *Writer) WriteRecords(records []Record) error {
	for _, r := range records {
		var row []string
		if r.Sentinel {
			row = []string{"-1", "-1", "-1", "-1", "-1", r.Image, ClassificationPlaceholder}
		} else {
			row = []string{
				formatPx(r.CenterX),
				formatPx(r.CenterY),
				formatPx(r.SemiMajor),
				formatPx(r.SemiMinor),
				formatPx(r.RotationDeg),
				r.Image,
				ClassificationPlaceholder,
			}
		}
		if err := w.csv.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", r.Image, err)
		}
	}
	return nil
}

// Flush commits buffered rows and reports any deferred write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
