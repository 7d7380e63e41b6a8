package component

import (
	"math"
	"testing"
)

func TestSpriteEffectiveSize(t *testing.T) {
	tests := []struct {
		deg          int
		wantW, wantH float64
	}{
		{0, 24, 104},
		{90, 104, 24},
		{180, 24, 104},
		{270, 104, 24},
	}

	for _, tc := range tests {
		rot, err := RotationFromDegrees(tc.deg)
		if err != nil {
			t.Fatalf("RotationFromDegrees(%d): %v", tc.deg, err)
		}
		s := Sprite{Width: 24, Height: 104, Rotation: rot}
		if s.EffectiveWidth() != tc.wantW || s.EffectiveHeight() != tc.wantH {
			t.Errorf("%d°: got %vx%v, want %vx%v", tc.deg, s.EffectiveWidth(), s.EffectiveHeight(), tc.wantW, tc.wantH)
		}
		ox, oy := s.Origin()
		if ox != tc.wantW/2 || oy != tc.wantH/2 {
			t.Errorf("%d°: origin %v,%v", tc.deg, ox, oy)
		}
	}
}

func TestRotationAngles(t *testing.T) {
	tests := []struct {
		rot   Rotation
		draw  float64
		exact float64
	}{
		{Rotation0, 0.0, 0},
		{Rotation90, 1.57, math.Pi / 2},
		{Rotation180, 3.14, math.Pi},
		{Rotation270, 4.71, 3 * math.Pi / 2},
	}

	for _, tc := range tests {
		if got := tc.rot.DrawAngle(); got != tc.draw {
			t.Errorf("%v DrawAngle() = %v, want %v", tc.rot, got, tc.draw)
		}
		if got := tc.rot.ExactAngle(); math.Abs(got-tc.exact) > 1e-12 {
			t.Errorf("%v ExactAngle() = %v, want %v", tc.rot, got, tc.exact)
		}

		s := Sprite{Rotation: tc.rot}
		if s.Angle() != tc.draw {
			t.Errorf("%v default angle should use the literal constant", tc.rot)
		}
		s.ExactAngle = true
		if s.Angle() != tc.rot.ExactAngle() {
			t.Errorf("%v exact angle not applied", tc.rot)
		}
	}
}

func TestRotationFromDegreesRejectsOthers(t *testing.T) {
	for _, deg := range []int{-90, 45, 360} {
		if _, err := RotationFromDegrees(deg); err == nil {
			t.Errorf("expected error for %d", deg)
		}
	}
}

func TestVelocityReflect(t *testing.T) {
	v := Velocity{X: -5, Y: 0}
	v.Reflect()
	if v.X != 5 || v.Y != 0 {
		t.Fatalf("expected (5,0), got (%v,%v)", v.X, v.Y)
	}
	v.Reflect()
	if v.X != -5 || v.Y != 0 {
		t.Fatalf("expected (-5,0), got (%v,%v)", v.X, v.Y)
	}
}
