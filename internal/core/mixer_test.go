package core

import (
	"math"
	"testing"

	"AquaRover/internal/model"
)

func TestMixPureSurge(t *testing.T) {
	got := Mix(1, 0, 0)
	want := model.Powers{Front: MaxMotorPower, Back: MaxMotorPower, Left: 0, Right: 0}
	if got != want {
		t.Fatalf("Mix(1,0,0) = %+v, want %+v", got, want)
	}
}

func TestMixPureYaw(t *testing.T) {
	got := Mix(0, 0, 1)
	want := model.Powers{Front: MaxMotorPower, Back: -MaxMotorPower, Left: MaxMotorPower, Right: -MaxMotorPower}
	if got != want {
		t.Fatalf("Mix(0,0,1) = %+v, want %+v", got, want)
	}
}

func TestMixClampsBeforeScaling(t *testing.T) {
	if Mix(5, 0, 0) != Mix(1, 0, 0) {
		t.Fatalf("Mix(5,0,0) = %+v, want same as Mix(1,0,0) = %+v", Mix(5, 0, 0), Mix(1, 0, 0))
	}
	if Mix(0, -7, 0) != Mix(0, -1, 0) {
		t.Fatalf("Mix(0,-7,0) = %+v, want same as Mix(0,-1,0)", Mix(0, -7, 0))
	}
}

func TestMixOutputBounded(t *testing.T) {
	gains := []float64{-10, -1.5, -1, -0.3, 0, 0.3, 1, 1.5, 10}
	for _, s := range gains {
		for _, l := range gains {
			for _, y := range gains {
				p := Mix(s, l, y)
				for name, v := range map[string]float64{"front": p.Front, "back": p.Back, "left": p.Left, "right": p.Right} {
					if math.Abs(v) > MaxMotorPower {
						t.Fatalf("Mix(%v,%v,%v) %s = %v exceeds full scale", s, l, y, name, v)
					}
				}
			}
		}
	}
}

func TestMixCombinedSurgeYaw(t *testing.T) {
	got := Mix(0.5, 0, 0.25)
	want := model.Powers{
		Front: MaxMotorPower * 0.75,
		Back:  MaxMotorPower * 0.25,
		Left:  MaxMotorPower * 0.25,
		Right: MaxMotorPower * -0.25,
	}
	if got != want {
		t.Fatalf("Mix(0.5,0,0.25) = %+v, want %+v", got, want)
	}
}
