// Package detection turns a binary edge map into fitted crater rim ellipses.
//
// The pipeline for one image is:
//
//  1. Boundary extraction: edge pixels are grouped into 8-connected
//     components and the external boundary of each component is traced into
//     an ordered pixel curve. Internal (nested) boundaries are not reported.
//     Collinear runs are compressed away so long straight segments keep only
//     their endpoints.
//  2. Ellipse fitting: each boundary curve with at least Options.MinCurvePoints
//     points gets a least-squares conic fit. Fits whose conic is not an
//     ellipse are discarded.
//  3. Filtering: fits where either full axis is shorter than Options.MinAxisPx
//     are discarded as noise. Rejection at any step is silent; it contributes
//     no detection and is not an error.
//
// # Geometry conventions
//
// Coordinates follow the image convention: origin at the top-left, X
// rightward, Y downward. Ellipse rotation is the angle of the major axis
// from the +X axis in degrees, normalized to [0, 180). SemiMajor >= SemiMinor
// holds for every returned ellipse.
//
// The thresholds are policy values, not mathematical requirements (except
// the 5-point minimum, below which a conic fit is underdetermined). They are
// exposed on Options so callers can tighten or relax them.
package detection
