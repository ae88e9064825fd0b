// Package noise implements the legacy generator's gradient-noise kernels:
// a permutation-table octave builder, the classic Perlin kernel (with its
// historical quirks preserved exactly), and a 2D simplex kernel.
package noise

import "github.com/duskforge/seedscry/pkg/rng"

// PermutationTable is one octave's shuffled gradient-hash table plus the
// per-octave coordinate offsets drawn before the shuffle. Yo is unused by
// the 2D-fixed kernel and Zo by the simplex kernel, same as the original.
type PermutationTable struct {
	Xo, Yo, Zo   float64
	Permutations [512]uint8
}

// InitOctaves builds count independent permutation tables from a single
// PRNG stream: each table draws its xo/yo/zo offsets, then Fisher-Yates
// shuffles an identity permutation using the PRNG's own NextInt, mirroring
// the table into [256:512] so callers never need to wrap indices.
//
// The swap step guards on index != randomIndex before XOR-swapping, exactly
// like the original — removing that guard would corrupt permutations[i]
// whenever the shuffle picks i itself (XOR-swapping a value with itself
// zeroes it).
func InitOctaves(r *rng.Random, count int) []PermutationTable {
	octaves := make([]PermutationTable, count)
	for i := range octaves {
		o := &octaves[i]
		o.Xo = r.NextDouble() * 256.0
		o.Yo = r.NextDouble() * 256.0
		o.Zo = r.NextDouble() * 256.0
		for j := 0; j < 256; j++ {
			o.Permutations[j] = uint8(j)
		}
		for index := 0; index < 256; index++ {
			randomIndex := int(r.NextInt(int32(256-index))) + index
			if randomIndex != index {
				o.Permutations[index] ^= o.Permutations[randomIndex]
				o.Permutations[randomIndex] ^= o.Permutations[index]
				o.Permutations[index] ^= o.Permutations[randomIndex]
			}
			o.Permutations[index+256] = o.Permutations[index]
		}
	}
	return octaves
}
