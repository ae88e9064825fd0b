package noise

import (
	"testing"

	"github.com/duskforge/seedscry/pkg/rng"
)

func TestInitOctavesPermutationIsValid(t *testing.T) {
	r := rng.NewRandom(12345)
	tables := InitOctaves(r, 4)
	for oi, table := range tables {
		seen := make(map[uint8]bool, 256)
		for i := 0; i < 256; i++ {
			v := table.Permutations[i]
			if seen[v] {
				t.Fatalf("octave %d: value %d repeated in first 256 entries", oi, v)
			}
			seen[v] = true
			if table.Permutations[i+256] != v {
				t.Fatalf("octave %d: mirror at %d (%d) != base (%d)", oi, i+256, table.Permutations[i+256], v)
			}
		}
	}
}

func TestInitOctavesDeterministic(t *testing.T) {
	a := InitOctaves(rng.NewRandom(777), 4)
	b := InitOctaves(rng.NewRandom(777), 4)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("octave %d differs between identically-seeded runs", i)
		}
	}
}

func TestGenerateFixedNoiseBounded(t *testing.T) {
	tables := InitOctaves(rng.NewRandom(42), 4)
	buf := make([]float64, 16*16)
	GenerateFixedNoise(buf, 0, 0, 16, 16, 0.025, 0.025, tables)
	for _, v := range buf {
		if v < -2.0 || v > 2.0 {
			t.Errorf("fixed noise value out of expected range: %f", v)
		}
	}
}

func TestGenerateNoiseSpecializedDeterministic(t *testing.T) {
	tables := InitOctaves(rng.NewRandom(9001), 8)
	a := make([]float64, 110)
	b := make([]float64, 110)
	GenerateNoise(a, 0, 0, 0, 10, 11, 1, 684.412/80, 684.412/160, 684.412/80, tables, KernelSpecialized)
	GenerateNoise(b, 0, 0, 0, 10, 11, 1, 684.412/80, 684.412/160, 684.412/80, tables, KernelSpecialized)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("specialized kernel not deterministic at %d", i)
		}
	}
}

func TestSimplexFixedNoiseBounded(t *testing.T) {
	tables := InitOctaves(rng.NewRandom(24680), 4)
	buf := make([]float64, 16*16)
	GetFixedNoise(buf, 0, 0, 16, 16, 0.025, 0.025, 0.25, tables)
	for _, v := range buf {
		if v < -2.0 || v > 2.0 {
			t.Errorf("simplex noise value out of expected range: %f", v)
		}
	}
}
