package domain

import (
	"math"
	"testing"
)

func TestPlace(t *testing.T) {
	t.Run("quadrant labels", func(t *testing.T) {
		cases := []struct {
			name              string
			energy, structure int
			want              Quadrant
		}{
			{"low energy low structure", 10, 10, QuadrantCultivate},
			{"high energy low structure", 80, 10, QuadrantMaintain},
			{"low energy high structure", 10, 80, QuadrantSteward},
			{"high energy high structure", 80, 80, QuadrantPartner},
			{"threshold counts as high", 50, 50, QuadrantPartner},
			{"just under threshold is low", 49, 49, QuadrantCultivate},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if got := Place(tc.energy, tc.structure).Quadrant; got != tc.want {
					t.Errorf("Place(%d, %d).Quadrant = %q, want %q", tc.energy, tc.structure, got, tc.want)
				}
			})
		}
	})

	t.Run("corners stay inside the padding", func(t *testing.T) {
		bottomLeft := Place(0, 0)
		if bottomLeft.X != 40 {
			t.Errorf("x = %v, want 40", bottomLeft.X)
		}
		// Zero energy sits at the bottom of the canvas, which is the
		// largest y in screen coordinates.
		if bottomLeft.Y != 960 {
			t.Errorf("y = %v, want 960", bottomLeft.Y)
		}

		topRight := Place(100, 100)
		if topRight.X != 960 {
			t.Errorf("x = %v, want 960", topRight.X)
		}
		if topRight.Y != 40 {
			t.Errorf("y = %v, want 40", topRight.Y)
		}
	})

	t.Run("midpoint lands in the center", func(t *testing.T) {
		p := Place(50, 50)
		if math.Abs(p.X-500) > 1e-9 || math.Abs(p.Y-500) > 1e-9 {
			t.Errorf("Place(50, 50) = (%v, %v), want (500, 500)", p.X, p.Y)
		}
	})

	t.Run("higher energy moves the point up", func(t *testing.T) {
		low := Place(20, 50)
		high := Place(80, 50)
		if high.Y >= low.Y {
			t.Errorf("y(%v) should be above y(%v)", high.Y, low.Y)
		}
	})
}

func TestValidScore(t *testing.T) {
	for _, s := range []int{0, 50, 100} {
		if !ValidScore(s) {
			t.Errorf("ValidScore(%d) = false, want true", s)
		}
	}
	for _, s := range []int{-1, 101} {
		if ValidScore(s) {
			t.Errorf("ValidScore(%d) = true, want false", s)
		}
	}
}
