// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"
	"testing"
)

func TestLowPass_SeedsWithFirstSample(t *testing.T) {
	t.Parallel()

	lp := NewLowPass(0.001)
	if got := lp.Smooth(60); got != 60 {
		t.Errorf("first Smooth(60) = %v, want 60", got)
	}
}

func TestLowPass_Step(t *testing.T) {
	t.Parallel()

	lp := NewLowPass(0.5)
	lp.Smooth(0)

	want := []float64{5, 7.5, 8.75}
	for i, w := range want {
		if got := lp.Smooth(10); math.Abs(got-w) > 1e-12 {
			t.Errorf("step %d: Smooth(10) = %v, want %v", i, got, w)
		}
	}
}

func TestLowPass_Coefficient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "inside", in: 0.2, want: 0.2},
		{name: "negative", in: -1, want: 0},
		{name: "above one", in: 2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lp := NewLowPass(0.5)
			lp.SetCoefficient(tt.in)
			if got := lp.Coefficient(); got != tt.want {
				t.Errorf("Coefficient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLowPass_Extremes(t *testing.T) {
	t.Parallel()

	frozen := NewLowPass(0)
	frozen.Smooth(1)
	if got := frozen.Smooth(100); got != 1 {
		t.Errorf("coefficient 0: Smooth(100) = %v, want 1", got)
	}

	pass := NewLowPass(1)
	pass.Smooth(1)
	if got := pass.Smooth(100); got != 100 {
		t.Errorf("coefficient 1: Smooth(100) = %v, want 100", got)
	}
}

func TestLowPass_Reset(t *testing.T) {
	t.Parallel()

	lp := NewLowPass(0.1)
	lp.Smooth(10)
	lp.Smooth(20)
	lp.Reset()

	if lp.Value() != 0 {
		t.Errorf("Value() after Reset = %v, want 0", lp.Value())
	}
	if lp.Coefficient() != 0.1 {
		t.Errorf("Reset changed coefficient to %v", lp.Coefficient())
	}
	if got := lp.Smooth(42); got != 42 {
		t.Errorf("Smooth after Reset = %v, want 42", got)
	}
}
