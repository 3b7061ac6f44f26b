package detection

import "image"

// moore lists the 8-neighborhood offsets in clockwise order starting west.
var moore = [8]image.Point{
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
}

// TraceBoundaries extracts the external boundary of every 8-connected
// component of foreground pixels in a binary edge map, as ordered pixel
// curves with collinear runs compressed away.
//
// Components are discovered in scan order (top to bottom, left to right), so
// the output order is deterministic. Only the outer boundary of each
// component is traced; holes inside a component are never reported.
func TraceBoundaries(edges *image.Gray) [][]image.Point {
	bounds := edges.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	fg := func(p image.Point) bool {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return false
		}
		return edges.Pix[p.Y*edges.Stride+p.X] != 0
	}

	seen := make([]bool, width*height)
	var curves [][]image.Point

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !fg(image.Pt(x, y)) || seen[y*width+x] {
				continue
			}
			markComponent(fg, seen, width, height, image.Pt(x, y))
			curve := traceBoundary(fg, image.Pt(x, y), width*height)
			curves = append(curves, compressCollinear(curve))
		}
	}
	return curves
}

// markComponent flood-fills the 8-connected component containing start,
// marking every pixel as seen. Iterative to keep large components off the
// call stack.
func markComponent(fg func(image.Point) bool, seen []bool, width, height int, start image.Point) {
	stack := []image.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fg(p) || seen[p.Y*width+p.X] {
			continue
		}
		seen[p.Y*width+p.X] = true

		for _, d := range moore {
			n := p.Add(d)
			if n.X >= 0 && n.X < width && n.Y >= 0 && n.Y < height {
				stack = append(stack, n)
			}
		}
	}
}

// traceBoundary walks the external boundary of the component containing
// start using Moore-neighbor tracing. start must be the component's first
// pixel in scan order, which guarantees its west neighbor is background.
// The walk terminates when it re-enters the start pixel from the starting
// backtrack direction.
func traceBoundary(fg func(image.Point) bool, start image.Point, maxPixels int) []image.Point {
	boundary := []image.Point{start}
	cur := start
	backtrack := 0 // index into moore: west of start is background

	for steps := 0; steps < 4*maxPixels; steps++ {
		found := -1
		for i := 1; i <= 8; i++ {
			if fg(cur.Add(moore[(backtrack+i)%8])) {
				found = (backtrack + i) % 8
				break
			}
		}
		if found < 0 {
			return boundary // isolated pixel
		}

		next := cur.Add(moore[found])
		// The neighbor checked just before the hit is background and
		// adjacent to next; it becomes the new backtrack.
		prevBg := cur.Add(moore[(found+7)%8])
		nextBacktrack := mooreIndex(prevBg.Sub(next))

		if next == start && nextBacktrack == 0 {
			return boundary
		}
		cur = next
		backtrack = nextBacktrack
		boundary = append(boundary, cur)
	}
	return boundary
}

func mooreIndex(d image.Point) int {
	for i, m := range moore {
		if m == d {
			return i
		}
	}
	return 0
}

// compressCollinear drops interior points whose incoming and outgoing unit
// steps are identical, so straight runs keep only their endpoints.
func compressCollinear(curve []image.Point) []image.Point {
	if len(curve) < 3 {
		return curve
	}
	out := make([]image.Point, 0, len(curve))
	out = append(out, curve[0])
	for i := 1; i < len(curve)-1; i++ {
		if curve[i].Sub(curve[i-1]) != curve[i+1].Sub(curve[i]) {
			out = append(out, curve[i])
		}
	}
	return append(out, curve[len(curve)-1])
}
