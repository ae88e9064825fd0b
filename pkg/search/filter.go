// Package search batch-scans world seeds against a terrain-height
// signature, spreading the work across a worker pool the way the
// teacher's server package spreads per-player background loops across
// goroutines with a stop channel.
package search

import (
	"sync"

	"github.com/duskforge/seedscry/pkg/biome"
	"github.com/duskforge/seedscry/pkg/terrain"
)

// RejectBiomes are the seven biomes that disqualify a seed before any
// terrain work is done on it: any of them appearing anywhere in the
// 16x16 biome grid skips the chunk outright.
var RejectBiomes = [7]biome.Biome{
	biome.Rainforest,
	biome.Swampland,
	biome.Savanna,
	biome.Taiga,
	biome.Desert,
	biome.IceDesert,
	biome.Tundra,
}

// OffsetZ is the z-row the canonical single-chunk match starts at in
// world-chunk-local terms; heights is already just the OffsetZ..15 strip
// ProvideChunk returns, so filterOneSeed indexes into it from row 0.
const OffsetZ = 12

// Match reports a single-chunk signature hit.
type Match struct {
	Seed   int64
	ChunkX int32
	ChunkZ int32
	X      int // world-space x coordinate of the matching column
}

// FilterSeeds scans a single fixed chunk (chunkX, chunkZ) for each seed in
// seeds, reporting every x column whose four-row height strip
// (z = OffsetZ..15) matches signature exactly. A seed is skipped before
// any terrain work runs if its chunk's biome grid contains any of
// RejectBiomes anywhere in the 16x16 window.
//
// This is grounded on the fast/canonical filter: it reports the actual
// matching world x (chunkX*16+x) rather than the constant the original's
// diagnostic print computed regardless of which x matched.
func FilterSeeds(seeds []int64, chunkX, chunkZ int32, signature []uint8, workers int) []Match {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan int64)
	results := make(chan Match)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				filterOneSeed(seed, chunkX, chunkZ, signature, results)
			}
		}()
	}

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var matches []Match
	for m := range results {
		matches = append(matches, m)
	}
	return matches
}

func filterOneSeed(seed int64, chunkX, chunkZ int32, signature []uint8, results chan<- Match) {
	biomeResult := biome.BiomeWrapper(seed, chunkX, chunkZ)
	for _, b := range biomeResult.Biomes {
		for _, reject := range RejectBiomes {
			if b == reject {
				return
			}
		}
	}

	n := terrain.InitTerrain(seed)
	heights := terrain.ProvideChunk(seed, chunkX, chunkZ, n)

	rows := len(signature)
	for x := 0; x < 16; x++ {
		match := true
		for z := 0; z < rows; z++ {
			if heights[x*4+z] != signature[z] {
				match = false
				break
			}
		}
		if match {
			results <- Match{Seed: seed, ChunkX: chunkX, ChunkZ: chunkZ, X: int(chunkX)*16 + x}
		}
	}
}
