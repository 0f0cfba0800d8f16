package core

import "testing"

func TestDist2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected int
	}{
		{
			name:     "same point",
			a:        Point{X: 3, Y: 3},
			b:        Point{X: 3, Y: 3},
			expected: 0,
		},
		{
			name:     "horizontal neighbors",
			a:        Point{X: 0, Y: 0},
			b:        Point{X: 1, Y: 0},
			expected: 1,
		},
		{
			name:     "diagonal neighbors",
			a:        Point{X: 0, Y: 0},
			b:        Point{X: 1, Y: 1},
			expected: 2,
		},
		{
			name:     "3-4-5 triangle",
			a:        Point{X: 0, Y: 0},
			b:        Point{X: 3, Y: 4},
			expected: 25,
		},
		{
			name:     "order independent",
			a:        Point{X: 7, Y: 2},
			b:        Point{X: 2, Y: 7},
			expected: 50,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Dist2(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Dist2() = %d, expected %d", result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, expected 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d, expected 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %d, expected 10", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %v, expected 0.5", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %v, expected 0", got)
	}
	if got := ClampF(2.5, 0, 2); got != 2 {
		t.Errorf("ClampF(2.5, 0, 2) = %v, expected 2", got)
	}
}
