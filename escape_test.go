package julia

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdd(t *testing.T) {
	got := Add(Complex{1.5, -2}, Complex{-0.5, 3})
	if got != (Complex{1, 1}) {
		t.Errorf("Add = %v, want {1 1}", got)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want Complex
	}{
		{Complex{0, 1}, Complex{0, 1}, Complex{-1, 0}},
		{Complex{2, 3}, Complex{4, -5}, Complex{23, 2}},
		{Complex{1, 0}, Complex{-0.8, 0.156}, Complex{-0.8, 0.156}},
		{Complex{0, 0}, Complex{7, 7}, Complex{0, 0}},
	}
	for _, tt := range tests {
		if got := Mul(tt.a, tt.b); got != tt.want {
			t.Errorf("Mul(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAbsSq(t *testing.T) {
	if got := (Complex{3, 4}).AbsSq(); got != 25 {
		t.Errorf("AbsSq = %v, want 25", got)
	}
}

// TestOrbitGolden pins the first iterates from the origin for the default
// constant. The expected values are exact IEEE-754 doubles.
func TestOrbitGolden(t *testing.T) {
	want := []Complex{
		{-0x1.999999999999ap-1, 0x1.3f7ced916872bp-3},
		{-0x1.7985271bcdbbcp-3, -0x1.7f62b6ae7d568p-4},
		{-0x1.8cb01f0f6a292p-1, 0x1.8628e68d9a054p-3},
		{-0x1.e357c8819d3fcp-3, -0x1.1d16c28695439p-3},
		{-0x1.8700d42d2f0fep-1, 0x1.c60dda53f22d4p-3},
		{-0x1.1054fd4297f10p-2, -0x1.7603b3386b261p-3},
	}
	got := Orbit(Complex{}, DefaultConstant, len(want))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("orbit mismatch (-want +got):\n%s", diff)
	}

	// z1 = c and z2 = c² + c by construction.
	c := DefaultConstant
	if got[0] != c {
		t.Errorf("z1 = %v, want c = %v", got[0], c)
	}
	if z2 := Add(Mul(c, c), c); got[1] != z2 {
		t.Errorf("z2 = %v, want %v", got[1], z2)
	}
}

func TestOrbitEmpty(t *testing.T) {
	if got := Orbit(Complex{}, DefaultConstant, 0); got != nil {
		t.Errorf("Orbit(k=0) = %v, want nil", got)
	}
}

func TestStartPoint(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		mag        float64
		want       Complex
	}{
		{"centre even", 2, 2, 4, 4, 2, Complex{0, 0}},
		{"centre odd", 2, 1, 5, 3, 1, Complex{0, 0}},
		{"top-left", 0, 0, 4, 4, 2, Complex{-0.25, -0.25}},
		// Both axes divide by height.
		{"wide grid", 0, 0, 8, 4, 1, Complex{-1, -0.5}},
		{"tall grid", 3, 7, 4, 8, 0.5, Complex{0.25, 0.75}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartPoint(tt.x, tt.y, tt.w, tt.h, tt.mag)
			if got != tt.want {
				t.Errorf("StartPoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	c := DefaultConstant
	tests := []struct {
		name    string
		z0      Complex
		maxIter int
		want    int
	}{
		{"far point escapes immediately", Complex{10, 10}, 1000, 0},
		{"origin", Complex{}, 1000, 251},
		{"top-left of 4x4", StartPoint(0, 0, 4, 4, 2), 1000, 161},
		{"bounded by cap", Complex{}, 100, 100},
		{"zero cap", Complex{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.z0, c, tt.maxIter, 2); got != tt.want {
				t.Errorf("Escape = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEscape_RadiusIsStrict(t *testing.T) {
	// z1 = 0² + 2 lies exactly on the circle of radius 2: not escaped.
	// z2 = 4 + 2 = 6 escapes at loop index 1.
	if got := Escape(Complex{}, Complex{2, 0}, 10, 2); got != 1 {
		t.Errorf("Escape = %d, want 1", got)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		n, maxIter int
		want       uint8
	}{
		{0, 1000, 0},
		{1000, 1000, 255},
		{1001, 1000, 255},
		{-3, 1000, 0},
		{161, 1000, 85},
		{251, 1000, 111},
		{33, 1000, 33},
		{128, 256, 168},
	}
	for _, tt := range tests {
		if got := Level(tt.n, tt.maxIter, 256, 0.6); got != tt.want {
			t.Errorf("Level(%d, %d) = %d, want %d", tt.n, tt.maxIter, got, tt.want)
		}
	}
}

func TestLevel_AlwaysInRange(t *testing.T) {
	for _, maxIter := range []int{1, 2, 7, 256, 1000} {
		for _, levels := range []int{2, 16, 256} {
			top := uint8(levels - 1)
			prev := uint8(0)
			for n := -2; n <= maxIter+2; n++ {
				got := Level(n, maxIter, levels, DefaultGamma)
				if got > top {
					t.Fatalf("Level(%d, %d, %d) = %d > %d", n, maxIter, levels, got, top)
				}
				if got < prev {
					t.Fatalf("Level not monotonic at n=%d (maxIter %d)", n, maxIter)
				}
				prev = got
			}
			if got := Level(maxIter, maxIter, levels, DefaultGamma); got != top {
				t.Errorf("Level(max) = %d, want %d", got, top)
			}
		}
	}
}

func TestLevel_ZeroIterations(t *testing.T) {
	if got := Level(5, 0, 256, 0.6); got != 0 {
		t.Errorf("Level with maxIter 0 = %d, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(1.5, 0, 1); got != 1 {
		t.Errorf("clamp(1.5) = %v", got)
	}
	if got := clamp(-1, 0, 255); got != 0 {
		t.Errorf("clamp(-1) = %v", got)
	}
	if got := clamp(math.Inf(1), 0, 1); got != 1 {
		t.Errorf("clamp(+Inf) = %v", got)
	}
}
