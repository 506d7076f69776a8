package image

import (
	"bytes"
	"image/color"
	"testing"
)

func glyphs(tiles []tile) []string {
	out := make([]string, len(tiles))
	for i, t := range tiles {
		out[i] = t.Glyph
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAlphabetStart(t *testing.T) {
	tests := []struct {
		name     string
		alphabet []string
		want     int
	}{
		{"ideograph in the middle", []string{"a", "b", "你", "c"}, 2},
		{"ideograph first", []string{"一", "a"}, 0},
		{"kana before ideograph", []string{"a", "あ", "ア", "丁"}, 3},
		{"latin only", []string{"a", "b", "c"}, 0},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := alphabetStart(tt.alphabet); got != tt.want {
				t.Errorf("alphabetStart = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLayoutTilesRotation(t *testing.T) {
	f := testFont(t)
	alphabet := []string{"a", "b", "你", "c"}

	tiles := layoutTiles(42, 28, alphabet, 1, 14, f)
	want := []string{"你", "c", "a", "b", "你", "c"}
	if got := glyphs(tiles); !equalStrings(got, want) {
		t.Errorf("glyphs = %v, want %v", got, want)
	}

	tiles = layoutTiles(42, 14, alphabet, 7, 14, f)
	want = []string{"你", "b", "a"}
	if got := glyphs(tiles); !equalStrings(got, want) {
		t.Errorf("glyphs with wrapping step = %v, want %v", got, want)
	}

	tiles = layoutTiles(28, 14, []string{"x", "y", "z"}, 1, 14, f)
	want = []string{"x", "y"}
	if got := glyphs(tiles); !equalStrings(got, want) {
		t.Errorf("glyphs without ideographs = %v, want %v", got, want)
	}
}

func TestLayoutTilesPositions(t *testing.T) {
	f := testFont(t)

	tiles := layoutTiles(28, 28, []string{"a"}, 1, 14, f)
	if len(tiles) != 4 {
		t.Fatalf("tiles = %d, want 4", len(tiles))
	}

	want := [][2]float64{{0.5, 0.5}, {14.5, 0.5}, {0.5, 14.5}, {14.5, 14.5}}
	for i, tl := range tiles {
		if tl.X != want[i][0] || tl.Y != want[i][1] {
			t.Errorf("tile %d at (%v, %v), want (%v, %v)", i, tl.X, tl.Y, want[i][0], want[i][1])
		}
	}

	// 30x20 needs a 3x2 grid of 14px boxes, overhanging evenly on both sides.
	tiles = layoutTiles(30, 20, []string{"a"}, 1, 14, f)
	if len(tiles) != 6 {
		t.Fatalf("tiles = %d, want 6", len(tiles))
	}
	if tiles[0].X != -5.5 || tiles[0].Y != -3.5 {
		t.Errorf("first tile at (%v, %v), want (-5.5, -3.5)", tiles[0].X, tiles[0].Y)
	}
}

func TestGridCountCoversCanvas(t *testing.T) {
	for _, size := range []int{1, 13, 14, 15, 27, 28, 29, 700} {
		for _, box := range []int{1, 7, 14, 20} {
			n := gridCount(size, box)
			if n*box < size {
				t.Errorf("gridCount(%d, %d) = %d does not cover the canvas", size, box, n)
			}
			if (n-1)*box >= size {
				t.Errorf("gridCount(%d, %d) = %d has a spare row", size, box, n)
			}
		}
	}
}

func TestDrawTextBackground(t *testing.T) {
	f := testFont(t)
	grey := color.RGBA{R: 200, G: 200, B: 200, A: 255}

	a := newTestCanvas(56, 42)
	b := newTestCanvas(56, 42)
	DrawTextBackground(a, []string{"A", "B", "C"}, 2, 14, f, grey)
	DrawTextBackground(b, []string{"A", "B", "C"}, 2, 14, f, grey)

	if bytes.Equal(a.Pix, newTestCanvas(56, 42).Pix) {
		t.Fatal("nothing was drawn")
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("identical calls produced different tilings")
	}
}

func TestDrawTextBackgroundEmptyAlphabet(t *testing.T) {
	f := testFont(t)
	canvas := newTestCanvas(28, 28)
	DrawTextBackground(canvas, nil, 1, 14, f, color.White)

	if !bytes.Equal(canvas.Pix, newTestCanvas(28, 28).Pix) {
		t.Fatal("empty alphabet should leave the canvas untouched")
	}
}
