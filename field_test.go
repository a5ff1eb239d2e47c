package julia

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFillFlat(t *testing.T) {
	img := newTestColorImage(t, 3, 3, Black)
	Flat{Color: Teal}.Apply(img)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := img.At(x, y); got != Teal {
				t.Fatalf("At(%d, %d) = %v, want %v", x, y, got, Teal)
			}
		}
	}
}

func TestFillDiagonalGradient_4x4(t *testing.T) {
	img := newTestColorImage(t, 4, 4, RGB{G: 99})
	DiagonalGradient{}.Apply(img)

	wantR := []uint8{
		255, 223, 191, 159,
		223, 191, 159, 127,
		191, 159, 127, 95,
		159, 127, 95, 63,
	}
	wantB := []uint8{
		0, 31, 63, 95,
		31, 63, 95, 127,
		63, 95, 127, 159,
		95, 127, 159, 191,
	}
	if diff := cmp.Diff(wantR, img.Plane(Red)); diff != "" {
		t.Errorf("R plane mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantB, img.Plane(Blue)); diff != "" {
		t.Errorf("B plane mismatch (-want +got):\n%s", diff)
	}
	for i, v := range img.Plane(Green) {
		if v != 0 {
			t.Fatalf("G[%d] = %d, want 0", i, v)
		}
	}
}

func TestFillDiagonalGradient_Corners(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {100, 50}, {37, 211}, {1000, 1000}} {
		w, h := size[0], size[1]
		img := newTestColorImage(t, w, h, Black)
		FillDiagonalGradient(img)

		if got := img.At(0, 0); got.R != 255 || got.B != 0 {
			t.Errorf("%dx%d: top-left = %v, want R 255 B 0", w, h, got)
		}

		far := img.At(w-1, h-1)
		// R = 255*2/(w+h) and B = 255*(w+h-2)/(w+h).
		if want := uint8(255 * 2 / (w + h)); far.R != want {
			t.Errorf("%dx%d: bottom-right R = %d, want %d", w, h, far.R, want)
		}
		if want := uint8(255 * (w + h - 2) / (w + h)); far.B != want {
			t.Errorf("%dx%d: bottom-right B = %d, want %d", w, h, far.B, want)
		}
	}
}

func TestFillDiagonalGradient_Empty(t *testing.T) {
	FillDiagonalGradient(nil)
}
