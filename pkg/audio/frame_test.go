package audio

import (
	"math"
	"testing"
)

func TestFrameOps(t *testing.T) {
	a := Frame{6, -4}
	b := Frame{2, 2}

	tests := []struct {
		name string
		got  Frame
		want Frame
	}{
		{"Add", a.Add(b), Frame{8, -2}},
		{"Sub", a.Sub(b), Frame{4, -6}},
		{"Mul", a.Mul(b), Frame{12, -8}},
		{"Div", a.Div(b), Frame{3, -2}},
		{"Rem", a.Rem(b), Frame{0, 0}},
		{"Neg", a.Neg(), Frame{-6, 4}},
		{"Scale", a.Scale(0.5), Frame{3, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestFrameRemSign(t *testing.T) {
	got := Frame{7.5, -7.5}.Rem(Frame{2, 2})
	want := Frame{1.5, -1.5}
	if math.Abs(got[0]-want[0]) > 1e-12 || math.Abs(got[1]-want[1]) > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFrameOf(t *testing.T) {
	if got := FrameOf(0.25); got != (Frame{0.25, 0.25}) {
		t.Errorf("got %v", got)
	}
}

func TestSum(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		// An empty mix is silence, not the unit frame.
		if got := Sum(nil); got != (Frame{}) {
			t.Errorf("got %v, want zero frame", got)
		}
	})

	t.Run("Voices", func(t *testing.T) {
		frames := []Frame{{1, 2}, {3, 4}, {-1, -1}}
		if got := Sum(frames); got != (Frame{3, 5}) {
			t.Errorf("got %v, want {3 5}", got)
		}
	})
}

func TestProduct(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := Product(nil); got != (Frame{1, 1}) {
			t.Errorf("got %v, want unit frame", got)
		}
	})

	t.Run("Gains", func(t *testing.T) {
		frames := []Frame{{2, 3}, {0.5, 2}}
		if got := Product(frames); got != (Frame{1, 6}) {
			t.Errorf("got %v, want {1 6}", got)
		}
	})
}
