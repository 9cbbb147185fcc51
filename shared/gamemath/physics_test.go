package gamemath

import (
	"testing"

	"pgregory.net/rapid"
)

func TestClampFall(t *testing.T) {
	tests := []struct {
		name   string
		speed  float64
		limit  float64
		expect float64
	}{
		{"below limit", 100, 1500, 100},
		{"above limit", 2000, 1500, 1500},
		{"rising", -640, 1500, -640},
		{"no limit", 5000, 0, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampFall(tt.speed, tt.limit); got != tt.expect {
				t.Errorf("ClampFall(%v, %v) = %v, want %v", tt.speed, tt.limit, got, tt.expect)
			}
		})
	}
}

func TestOverlapTouchingEdges(t *testing.T) {
	if Overlap(0, 10, 10, 20) {
		t.Error("touching spans should not overlap")
	}
	if !Overlap(0, 10, 9.5, 20) {
		t.Error("spans sharing half a unit should overlap")
	}
	if !Overlap(0, 100, 40, 60) {
		t.Error("contained span should overlap")
	}
}

func TestOverlapIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a0 := rapid.Float64Range(-1000, 1000).Draw(t, "a0")
		aw := rapid.Float64Range(0, 500).Draw(t, "aw")
		b0 := rapid.Float64Range(-1000, 1000).Draw(t, "b0")
		bw := rapid.Float64Range(0, 500).Draw(t, "bw")

		if Overlap(a0, a0+aw, b0, b0+bw) != Overlap(b0, b0+bw, a0, a0+aw) {
			t.Fatalf("overlap not symmetric for [%v,%v) and [%v,%v)", a0, a0+aw, b0, b0+bw)
		}
	})
}

func TestSweepX(t *testing.T) {
	tests := []struct {
		name   string
		x, w   float64
		dx     float64
		bx, bw float64
		expect float64
	}{
		{"stops flush moving right", 0, 10, 8, 15, 20, 5},
		{"stops flush moving left", 50, 10, -8, 30, 15, -5},
		{"already touching right", 0, 10, 4, 10, 20, 0},
		{"already touching left", 30, 10, -4, 10, 20, 0},
		{"short of blocker", 0, 10, 2, 15, 20, 2},
		{"no move", 0, 10, 0, 15, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SweepX(tt.x, tt.w, tt.dx, tt.bx, tt.bw); got != tt.expect {
				t.Errorf("SweepX = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestSweepXNeverEntersBlocker(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.Float64Range(1, 100).Draw(t, "w")
		bw := rapid.Float64Range(1, 100).Draw(t, "bw")
		gap := rapid.Float64Range(0, 200).Draw(t, "gap")
		dx := rapid.Float64Range(0, 400).Draw(t, "dx")

		// blocker to the right of the span
		x := 0.0
		bx := w + gap
		moved := SweepX(x, w, dx, bx, bw)
		if x+moved+w > bx+1e-9 {
			t.Fatalf("moved %v into blocker at %v", moved, bx)
		}
		if moved > dx {
			t.Fatalf("moved %v, more than requested %v", moved, dx)
		}
	})
}
