package terrain

import (
	"testing"

	"github.com/duskforge/seedscry/pkg/biome"
)

func biomeFields(worldSeed int64, chunkX, chunkZ int32) (temperature, humidity []float64) {
	res := biome.BiomeWrapper(worldSeed, chunkX, chunkZ)
	return res.Temperature, res.Humidity
}

func TestGenerateTerrainDeterministic(t *testing.T) {
	n := InitTerrain(1234)
	temperature, humidity := biomeFields(1234, 0, 0)

	a := GenerateTerrain(0, 0, temperature, humidity, n)
	b := GenerateTerrain(0, 0, temperature, humidity, n)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("block at %d differs between identical calls: %v != %v", i, a[i], b[i])
		}
	}
}

func TestGenerateTerrainFullAwareOnlyFillsActiveBand(t *testing.T) {
	n := InitTerrain(55)
	temperature, humidity := biomeFields(55, 1, 1)

	cache := GenerateTerrainFullAware(1, 1, temperature, humidity, n)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 0; y < 128; y++ {
				idx := (x*16+z)*128 + y
				block := cache[idx]
				inBand := z >= 12 && z < 16 && y >= 72 && y < 80
				if !inBand && block != Air {
					t.Fatalf("voxel (%d,%d,%d) outside the active band is %v, want Air", x, z, y, block)
				}
			}
		}
	}
}

func TestGenerateTerrainLegacyPlacesWaterBelowSeaLevel(t *testing.T) {
	// Seed 1's chunk (0,0) lies below sea level (its top stone is at
	// y=53..55), so its air voxels under y=64 must all be water.
	n := InitTerrainLegacy(1)
	cache := GenerateTerrainLegacy(0, 0, n)

	sawWater := false
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 0; y < 64; y++ {
				idx := (x*16+z)*128 + y
				if cache[idx] == MovingWater {
					sawWater = true
				}
				if cache[idx] == Stone {
					continue
				}
			}
		}
	}
	if !sawWater {
		t.Fatalf("expected at least one MovingWater voxel below sea level across a 16x16 column")
	}
}

func TestReplaceBlockForBiomesProducesPlausibleHeights(t *testing.T) {
	n := InitTerrain(42)
	temperature, humidity := biomeFields(42, 3, -2)
	cache := GenerateTerrain(3, -2, temperature, humidity, n)
	worldRandom := FastChunkSeed(3, -2)

	heights := ReplaceBlockForBiomes(3, -2, cache, worldRandom, n)
	if len(heights) != 64 {
		t.Fatalf("expected 64 chunk heights, got %d", len(heights))
	}
	for i, h := range heights {
		if h != 0 && (h < 72 || h > 80) {
			t.Errorf("height[%d] = %d outside the 72..80 scan band", i, h)
		}
	}
}

func TestReplaceBlockForBiomesDeterministic(t *testing.T) {
	n := InitTerrain(7)
	temperature, humidity := biomeFields(7, 0, 0)

	cacheA := GenerateTerrain(0, 0, temperature, humidity, n)
	heightsA := ReplaceBlockForBiomes(0, 0, cacheA, FastChunkSeed(0, 0), n)

	cacheB := GenerateTerrain(0, 0, temperature, humidity, n)
	heightsB := ReplaceBlockForBiomes(0, 0, cacheB, FastChunkSeed(0, 0), n)

	for i := range heightsA {
		if heightsA[i] != heightsB[i] {
			t.Fatalf("height[%d] differs between identically-seeded runs: %d != %d", i, heightsA[i], heightsB[i])
		}
	}
}

func TestReplaceBlockForBiomesLegacyNeverPanics(t *testing.T) {
	n := InitTerrainLegacy(321)
	cache := GenerateTerrainLegacy(2, 5, n)
	worldRandom := LegacyChunkSeed(2, 5)
	ReplaceBlockForBiomesLegacy(2, 5, cache, worldRandom, n)

	sawNonAir := false
	for _, b := range cache {
		if b != Air {
			sawNonAir = true
			break
		}
	}
	if !sawNonAir {
		t.Fatalf("expected the legacy surface pass to leave some non-air voxels")
	}
}

func TestReplaceBlockForBiomesFullAwareNeverPanics(t *testing.T) {
	n := InitTerrain(654)
	temperature, humidity := biomeFields(654, 4, 4)
	cache := GenerateTerrainFullAware(4, 4, temperature, humidity, n)
	worldRandom := FastChunkSeed(4, 4)
	ReplaceBlockForBiomesFullAware(4, 4, cache, worldRandom, n)
}

func TestProvideChunkMatchesManualPipeline(t *testing.T) {
	n := InitTerrain(88)
	got := ProvideChunk(88, 1, -1, n)

	n2 := InitTerrain(88)
	temperature, humidity := biomeFields(88, 1, -1)
	cache := GenerateTerrain(1, -1, temperature, humidity, n2)
	want := ReplaceBlockForBiomes(1, -1, cache, FastChunkSeed(1, -1), n2)

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("ProvideChunk diverged from the manual pipeline at %d", i)
		}
	}
}

func TestProvideChunkLegacyHeightsWithinWorld(t *testing.T) {
	n := InitTerrainLegacy(5)
	chunk := ProvideChunkLegacy(5, 0, 0, n)
	if len(chunk.Heights) != 256 {
		t.Fatalf("expected 256 legacy heights, got %d", len(chunk.Heights))
	}
	for i, h := range chunk.Heights {
		if h > 127 {
			t.Errorf("height[%d] = %d exceeds world height", i, h)
		}
	}
}

func TestProvideChunkFullAwareReturnsChunk(t *testing.T) {
	n := InitTerrain(6)
	chunk := ProvideChunkFullAware(6, 2, 2, n)
	if chunk == nil {
		t.Fatalf("ProvideChunkFullAware returned nil")
	}
}

func TestDifferentWorldSeedsDivergeHeights(t *testing.T) {
	nA := InitTerrain(1)
	tempA, humA := biomeFields(1, 0, 0)
	cacheA := GenerateTerrain(0, 0, tempA, humA, nA)
	heightsA := ReplaceBlockForBiomes(0, 0, cacheA, FastChunkSeed(0, 0), nA)

	nB := InitTerrain(2)
	tempB, humB := biomeFields(2, 0, 0)
	cacheB := GenerateTerrain(0, 0, tempB, humB, nB)
	heightsB := ReplaceBlockForBiomes(0, 0, cacheB, FastChunkSeed(0, 0), nB)

	same := true
	for i := range heightsA {
		if heightsA[i] != heightsB[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected different world seeds to diverge somewhere across 64 heights")
	}
}
