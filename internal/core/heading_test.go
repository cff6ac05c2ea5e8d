package core

import "testing"

func TestAngleDiff(t *testing.T) {
	tests := []struct {
		a, b Heading
		want int
	}{
		{XPlus, XPlus, 0},
		{XPlus, YPlus, 90},
		{XPlus, XMinus, 180},
		{XPlus, YMinus, 90},
		{YPlus, YMinus, 180},
		{YMinus, XMinus, 90},
	}

	for _, tt := range tests {
		got := AngleDiff(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("AngleDiff(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCounterClockwise(t *testing.T) {
	tests := []struct {
		in, want Heading
	}{
		{XPlus, YPlus},
		{YPlus, XMinus},
		{XMinus, YMinus},
		{YMinus, XPlus},
	}

	for _, tt := range tests {
		got := CounterClockwise(tt.in)
		if got != tt.want {
			t.Errorf("CounterClockwise(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHeadingAngleMapping(t *testing.T) {
	tests := []struct {
		h    Heading
		want int
	}{
		{XPlus, 0},
		{YPlus, 90},
		{XMinus, 180},
		{YMinus, 270},
	}
	for _, tt := range tests {
		if got := tt.h.Angle(); got != tt.want {
			t.Errorf("%v.Angle() = %d, want %d", tt.h, got, tt.want)
		}
	}
}
