package core

import "testing"

func TestIntervalContainsAndSurrounds(t *testing.T) {
	iv := NewInterval(1, 3)
	if !iv.Contains(1) || !iv.Contains(3) {
		t.Error("Contains should include both endpoints")
	}
	if iv.Surrounds(1) || iv.Surrounds(3) {
		t.Error("Surrounds should exclude both endpoints")
	}
	if !iv.Surrounds(2) {
		t.Error("Surrounds should include interior points")
	}
}

func TestIntervalEmptyAndUniverse(t *testing.T) {
	if EmptyInterval().Contains(0) {
		t.Error("empty interval should contain nothing")
	}
	if !UniverseInterval().Contains(1e300) || !UniverseInterval().Contains(-1e300) {
		t.Error("universe interval should contain everything")
	}
}

func TestIntervalClamp(t *testing.T) {
	iv := NewInterval(0, 10)
	if got := iv.Clamp(-5); got != 0 {
		t.Errorf("Clamp(-5) = %v, want 0", got)
	}
	if got := iv.Clamp(15); got != 10 {
		t.Errorf("Clamp(15) = %v, want 10", got)
	}
	if got := iv.Clamp(5); got != 5 {
		t.Errorf("Clamp(5) = %v, want 5", got)
	}
}

func TestIntervalExpandIsSymmetric(t *testing.T) {
	iv := NewInterval(5, 5).Expand(2)
	if iv.Lo != 4 || iv.Hi != 6 {
		t.Errorf("Expand(2) of [5,5] = %v, want [4,6]", iv)
	}
}

func TestIntervalUnion(t *testing.T) {
	a := NewInterval(0, 2)
	b := NewInterval(-1, 1)
	u := IntervalUnion(a, b)
	if u.Lo != -1 || u.Hi != 2 {
		t.Errorf("Union = %v, want [-1,2]", u)
	}
}
