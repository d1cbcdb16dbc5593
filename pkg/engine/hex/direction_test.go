package hex

import "testing"

func TestRotate_Wraps(t *testing.T) {
	tests := []struct {
		d     Direction
		steps int
		want  Direction
	}{
		{East, 1, NorthEast},
		{East, -1, SouthEast},
		{SouthEast, 1, East},
		{West, 3, East},
		{NorthWest, -7, NorthEast},
		{SouthWest, 12, SouthWest},
		{NorthEast, 0, NorthEast},
	}
	for _, tt := range tests {
		if got := tt.d.Rotate(tt.steps); got != tt.want {
			t.Errorf("%v.Rotate(%d) = %v, want %v", tt.d, tt.steps, got, tt.want)
		}
	}
}

func TestOpposite_CancelsDelta(t *testing.T) {
	for _, d := range AllDirections() {
		sum := d.Delta().Add(d.Opposite().Delta())
		if sum != Origin {
			t.Errorf("%v + %v = %v, want origin", d, d.Opposite(), sum)
		}
	}
}

func TestDirection_InvalidDelta(t *testing.T) {
	if Direction(9).IsValid() {
		t.Error("Direction(9).IsValid() = true")
	}
	if got := Direction(-1).Delta(); got != Origin {
		t.Errorf("Direction(-1).Delta() = %v, want zero", got)
	}
	if got := Direction(7).String(); got != "Unknown" {
		t.Errorf("Direction(7).String() = %q", got)
	}
}
