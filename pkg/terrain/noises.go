package terrain

import (
	"github.com/duskforge/seedscry/pkg/noise"
	"github.com/duskforge/seedscry/pkg/rng"
)

// Noises holds every octave stack the column builder and surface
// post-processor draw from. ShoresBottomComposition is only populated (and
// only consumed) by the legacy no-biome path: the fast path burns the
// equivalent PRNG draws without keeping the resulting table, see
// InitTerrain's doc comment.
type Noises struct {
	MinLimit                []noise.PermutationTable
	MaxLimit                []noise.PermutationTable
	MainLimit               []noise.PermutationTable
	ShoresBottomComposition []noise.PermutationTable
	SurfaceElevation        []noise.PermutationTable
	Scale                   []noise.PermutationTable
	Depth                   []noise.PermutationTable
}

// InitTerrain builds the fast/biome-aware octave stacks for a world seed.
//
// After minLimit/maxLimit/mainLimit, the original burns four rounds of a
// "shore and river composition" step: advance6 plus a full 256-entry
// Fisher-Yates shuffle run purely for its PRNG side effects, with the
// resulting permutation table discarded (the struct field for it is
// commented out in the source this is grounded on). That burn must happen
// here, in this exact shape, or every octave initialized afterward
// (surfaceElevation, scale, depth) draws from the wrong PRNG state.
func InitTerrain(worldSeed int64) *Noises {
	r := rng.NewRandom(worldSeed)
	n := &Noises{
		MinLimit:  noise.InitOctaves(r, 16),
		MaxLimit:  noise.InitOctaves(r, 16),
		MainLimit: noise.InitOctaves(r, 8),
	}
	for j := 0; j < 4; j++ {
		r.Advance6()
		for i := 0; i < 256; i++ {
			r.NextInt(int32(256 - i))
		}
	}
	n.SurfaceElevation = noise.InitOctaves(r, 4)
	n.Scale = noise.InitOctaves(r, 10)
	n.Depth = noise.InitOctaves(r, 16)
	return n
}

// InitTerrainLegacy builds the legacy/no-biome octave stacks. Unlike
// InitTerrain, shoresBottomComposition's four octaves are kept and later
// consumed by ReplaceBlockForBiomesLegacy's sand/gravel fields instead of
// being burned and discarded.
func InitTerrainLegacy(worldSeed int64) *Noises {
	r := rng.NewRandom(worldSeed)
	return &Noises{
		MinLimit:                noise.InitOctaves(r, 16),
		MaxLimit:                noise.InitOctaves(r, 16),
		MainLimit:               noise.InitOctaves(r, 8),
		ShoresBottomComposition: noise.InitOctaves(r, 4),
		SurfaceElevation:        noise.InitOctaves(r, 4),
		Scale:                   noise.InitOctaves(r, 10),
		Depth:                   noise.InitOctaves(r, 16),
	}
}

// FastChunkSeed derives the per-chunk PRNG seed the fast/biome-aware
// surface post-processor's decoration draws run on.
func FastChunkSeed(chunkX, chunkZ int32) *rng.Random {
	return rng.FromWorldSeed(int64(chunkX)*0x4f9939f508 + int64(chunkZ)*0x1ef1565bd5)
}

// LegacyChunkSeed derives the per-chunk PRNG seed the legacy no-biome
// surface post-processor's decoration draws run on.
func LegacyChunkSeed(chunkX, chunkZ int32) *rng.Random {
	return rng.FromWorldSeed(int64(chunkX)*341873128712 + int64(chunkZ)*132897987541)
}
