package squircle

import (
	"errors"
	"math"
	"testing"
)

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		n    float64
		prec int
		want string
	}{
		{20, 4, "20"},
		{0, 4, "0"},
		{math.Copysign(0, -1), 4, "0"},
		{-0.00001, 4, "0"},
		{35.52284749830794, 4, "35.5228"},
		{4.477152501692064, 4, "4.4772"},
		{1.5, 4, "1.5"},
		{-1.25, 1, "-1.2"},
		{100, 0, "100"},
		{0.1, 0, "0.1"},
		{1.0 / 3, 0, "0.3333333333333333"},
	}
	for _, tt := range tests {
		if got := formatCoord(tt.n, tt.prec); got != tt.want {
			t.Errorf("formatCoord(%v, %d) = %q, want %q", tt.n, tt.prec, got, tt.want)
		}
	}
}

func TestSVG(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 20))
	p.LineTo(Pt(0, 80))
	p.CubicTo(Pt(0, 91.04569), Pt(8.95431, 100), Pt(20, 100))
	p.ClosePath()

	diff(t, "M0,20 L0,80 C0,91.0457 8.9543,100 20,100 Z", p.SVG(SVGOptions{MaxPrecision: 4}))
	diff(t, "M0,20 L0,80 C0,91.04569 8.95431,100 20,100 Z", p.SVG(SVGOptions{}))
	diff(t, "", BezPath(nil).SVG(SVGOptions{}))
}

type failingWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(b), nil
}

func TestWriteSVGError(t *testing.T) {
	p := mustPath(t, Params{Width: 40, Height: 40, Radius: 10})
	for n := range 4 {
		if err := p.WriteSVG(&failingWriter{n: n}, SVGOptions{}); !errors.Is(err, errWrite) {
			t.Errorf("after %d writes: got %v, want %v", n, err, errWrite)
		}
	}
}
