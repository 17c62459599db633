package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	base := Box{Center: Vec2{X: 0, Y: 0}, HalfW: 50, HalfH: 25}

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{
			name:  "identical boxes overlap",
			other: Box{Center: Vec2{X: 0, Y: 0}, HalfW: 50, HalfH: 25},
			want:  true,
		},
		{
			name:  "partial overlap on the right",
			other: Box{Center: Vec2{X: 80, Y: 0}, HalfW: 50, HalfH: 25},
			want:  true,
		},
		{
			name:  "touching edges do not overlap",
			other: Box{Center: Vec2{X: 100, Y: 0}, HalfW: 50, HalfH: 25},
			want:  false,
		},
		{
			name:  "fully to the left",
			other: Box{Center: Vec2{X: -200, Y: 0}, HalfW: 50, HalfH: 25},
			want:  false,
		},
		{
			name:  "overlap in x but not in y",
			other: Box{Center: Vec2{X: 0, Y: 100}, HalfW: 50, HalfH: 25},
			want:  false,
		},
		{
			name:  "small box inside",
			other: Box{Center: Vec2{X: 10, Y: -5}, HalfW: 2, HalfH: 2},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(6, 3) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(2, 8) {
		t.Error("bottom edge is exclusive")
	}
	if !r.Contains(5, 7) {
		t.Error("last inner cell should be inside")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d, want 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %d, want 10", got)
	}

	if got := ClampF(-400.5, -360.0, 360.0); got != -360.0 {
		t.Errorf("ClampF(-400.5) = %f, want -360", got)
	}
}
