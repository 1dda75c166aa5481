package random

import "testing"

func TestLocked_DeterministicForSeed(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs for the same seed: %d vs %d", i, x, y)
		}
	}
}

func TestBetween_Inclusive(t *testing.T) {
	src := New(7)
	seenLo, seenHi := false, false
	for i := 0; i < 2000; i++ {
		v := Between(src, 20, 34)
		if v < 20 || v > 34 {
			t.Fatalf("Between out of range: %d", v)
		}
		seenLo = seenLo || v == 20
		seenHi = seenHi || v == 34
	}
	if !seenLo || !seenHi {
		t.Fatalf("expected both bounds to be reachable lo=%v hi=%v", seenLo, seenHi)
	}
}

func TestPickTwo_Distinct(t *testing.T) {
	src := New(9)
	items := []string{"India", "Australia", "England"}
	for i := 0; i < 500; i++ {
		a, b := PickTwo(src, items)
		if a == b {
			t.Fatalf("PickTwo returned the same item twice: %q", a)
		}
	}
}
