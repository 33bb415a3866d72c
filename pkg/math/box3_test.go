package math

import "testing"

func TestEmptyBox3(t *testing.T) {
	b := EmptyBox3()
	if !b.IsEmpty() {
		t.Error("EmptyBox3 should be empty")
	}
	if b.Size() != (Vec3{}) {
		t.Errorf("empty box size = %v, want zero", b.Size())
	}
}

func TestBox3Expand(t *testing.T) {
	b := EmptyBox3().
		Expand(Vec3{-1, 0, 2}).
		Expand(Vec3{3, -4, 0})

	if b.IsEmpty() {
		t.Fatal("expanded box should not be empty")
	}
	if b.Min != (Vec3{-1, -4, 0}) {
		t.Errorf("Min = %v", b.Min)
	}
	if b.Max != (Vec3{3, 0, 2}) {
		t.Errorf("Max = %v", b.Max)
	}
	if b.Size() != (Vec3{4, 4, 2}) {
		t.Errorf("Size = %v", b.Size())
	}
	if b.Center() != (Vec3{1, -2, 1}) {
		t.Errorf("Center = %v", b.Center())
	}
}

func TestBox3Contains(t *testing.T) {
	b := Box3{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}

	tests := []struct {
		p    Vec3
		want bool
	}{
		{Vec3{0, 0, 0}, true},
		{Vec3{1, 1, 1}, true},
		{Vec3{1.5, 0, 0}, false},
		{Vec3{0, -2, 0}, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
