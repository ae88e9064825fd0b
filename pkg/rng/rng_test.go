package rng

import "testing"

func TestNextIntDeterministic(t *testing.T) {
	r1 := NewRandom(42)
	r2 := NewRandom(42)
	for i := 0; i < 1000; i++ {
		if r1.NextInt(256) != r2.NextInt(256) {
			t.Fatalf("NextInt diverged at draw %d", i)
		}
	}
}

func TestNextIntRange(t *testing.T) {
	r := NewRandom(1234567)
	for i := 0; i < 10000; i++ {
		v := r.NextInt(5)
		if v < 0 || v >= 5 {
			t.Fatalf("NextInt(5) out of range: %d", v)
		}
	}
}

func TestNextIntPowerOfTwoRange(t *testing.T) {
	r := NewRandom(99)
	for i := 0; i < 10000; i++ {
		v := r.NextInt(256)
		if v < 0 || v >= 256 {
			t.Fatalf("NextInt(256) out of range: %d", v)
		}
	}
}

func TestNextDoubleRange(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 10000; i++ {
		v := r.NextDouble()
		if v < 0.0 || v >= 1.0 {
			t.Fatalf("NextDouble out of range: %f", v)
		}
	}
}

func TestAdvance4MatchesTwoDiscardedDoubles(t *testing.T) {
	a := NewRandom(55)
	b := NewRandom(55)
	a.NextDouble()
	a.NextDouble()
	b.Advance4()
	if a.seed != b.seed {
		t.Fatalf("Advance4 state %d != two next_double state %d", b.seed, a.seed)
	}
}

func TestAdvance6MatchesThreeDiscardedDoubles(t *testing.T) {
	a := NewRandom(909090)
	b := NewRandom(909090)
	a.NextDouble()
	a.NextDouble()
	a.NextDouble()
	b.Advance6()
	if a.seed != b.seed {
		t.Fatalf("Advance6 state %d != three next_double state %d", b.seed, a.seed)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	r1 := NewRandom(1)
	r2 := NewRandom(2)
	same := 0
	for i := 0; i < 100; i++ {
		if r1.NextInt(1000) == r2.NextInt(1000) {
			same++
		}
	}
	if same > 5 {
		t.Errorf("different seeds produced %d/100 identical draws", same)
	}
}
