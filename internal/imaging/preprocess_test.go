package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestSmooth_UniformStaysUniform(t *testing.T) {
	img := uniformGray(20, 20, 128)

	out := Smooth(img)

	if out.Bounds() != img.Bounds() {
		t.Fatalf("bounds: got %v, want %v", out.Bounds(), img.Bounds())
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if got := out.GrayAt(x, y).Y; got != 128 {
				t.Fatalf("smoothed[%d][%d]: got %d, want 128", y, x, got)
			}
		}
	}
}

func TestSmooth_SpreadsBrightSpot(t *testing.T) {
	img := uniformGray(11, 11, 0)
	img.SetGray(5, 5, color.Gray{Y: 255})

	out := Smooth(img)

	if out.GrayAt(5, 5).Y >= 255 {
		t.Error("bright spot should be reduced after smoothing")
	}
	if out.GrayAt(4, 5).Y == 0 || out.GrayAt(6, 5).Y == 0 || out.GrayAt(5, 4).Y == 0 || out.GrayAt(5, 6).Y == 0 {
		t.Error("neighbors should receive some brightness from smoothing")
	}
}

func TestSmooth_ReplicatedBorders(t *testing.T) {
	// A uniform image must stay uniform at the borders too; zero padding
	// would darken the outer two rows and columns.
	img := uniformGray(10, 10, 200)

	out := Smooth(img)

	for x := 0; x < 10; x++ {
		if got := out.GrayAt(x, 0).Y; got != 200 {
			t.Fatalf("border pixel (%d,0): got %d, want 200", x, got)
		}
	}
}

func TestBinarize(t *testing.T) {
	tests := []struct {
		name  string
		value uint8
		want  uint8
	}{
		{"black stays background", 0, 0},
		{"at threshold is background", 30, 0},
		{"just above threshold is foreground", 31, 255},
		{"midtone is foreground", 128, 255},
		{"white is foreground", 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := uniformGray(4, 4, tt.value)
			out := Binarize(img, BinarizeLevel)
			if got := out.GrayAt(2, 2).Y; got != tt.want {
				t.Errorf("binarize(%d): got %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestBinarize_MaxLevelIsAllBackground(t *testing.T) {
	// No 8-bit sample is strictly greater than 255; the threshold must not
	// wrap around and flip the whole image to foreground.
	img := uniformGray(6, 6, 255)
	out := Binarize(img, 255)
	for i, p := range out.Pix {
		if p != 0 {
			t.Fatalf("pixel %d: got %d, want 0 at the maximum level", i, p)
		}
	}
}

func TestBinarize_PreservesDimensions(t *testing.T) {
	img := uniformGray(17, 9, 100)
	out := Binarize(img, BinarizeLevel)
	if out.Bounds().Dx() != 17 || out.Bounds().Dy() != 9 {
		t.Errorf("dimensions: got %dx%d, want 17x9", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("clamp(%d, %d, %d): got %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

// uniformGray creates a width x height grayscale image filled with value.
func uniformGray(width, height int, value uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}
