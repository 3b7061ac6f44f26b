// Package imaging provides the pixel-level stages of the crater detection
// pipeline: grayscale loading, Gaussian smoothing, global binarization, and
// Canny-style edge extraction.
//
// All operations work on *image.Gray buffers with (0,0) at the top-left
// corner, X increasing rightward and Y increasing downward. Every stage
// returns a new buffer with the same dimensions as its input; inputs are
// never modified, so buffers can be shared freely across concurrent
// per-image pipelines.
package imaging
