package terrain

import "github.com/duskforge/seedscry/pkg/biome"

// Chunk is a fully materialized 16x16x128 voxel column, as returned by
// ProvideChunkLegacy or ProvideChunkFullAware. Heights is only filled in
// by ProvideChunkLegacy; ProvideChunkFullAware leaves it nil.
type Chunk struct {
	ChunkX, ChunkZ int32
	Voxels         []Block // length 16*16*128, indexed (x*16+z)*128+y
	Heights        []uint8 // length 256, indexed x*16+z
}

// BlockAt returns the voxel at chunk-local (x, z, y). It panics on an
// out-of-range y the same way a direct slice index would, since callers
// are expected to stay within the 128-level column.
func (c *Chunk) BlockAt(x, z, y int) Block {
	return c.Voxels[(x*16+z)*128+y]
}

// ProvideChunk runs the fast/biome-aware generator end to end for a
// single chunk: biome classification, density column, densification, and
// the surface post-processor that yields the 64-entry height strip the
// batch filters scan. It mirrors the original's provideChunk/
// TerrainInternalWrapper chain, minus the full voxel grid that path never
// actually produces.
func ProvideChunk(worldSeed int64, chunkX, chunkZ int32, n *Noises) []uint8 {
	biomes := biome.BiomeWrapper(worldSeed, chunkX, chunkZ)
	cache := GenerateTerrain(int(chunkX), int(chunkZ), biomes.Temperature, biomes.Humidity, n)
	worldRandom := FastChunkSeed(chunkX, chunkZ)
	return ReplaceBlockForBiomes(chunkX, chunkZ, cache, worldRandom, n)
}

// ProvideChunkFullAware runs the full/biome-aware generator end to end,
// returning the complete 16x16x128 voxel grid (mostly air outside the
// z=12..15/y=72..79 band the density input populates) after the surface
// pass has painted grass/dirt/sand/gravel into it.
func ProvideChunkFullAware(worldSeed int64, chunkX, chunkZ int32, n *Noises) *Chunk {
	biomes := biome.BiomeWrapper(worldSeed, chunkX, chunkZ)
	cache := GenerateTerrainFullAware(int(chunkX), int(chunkZ), biomes.Temperature, biomes.Humidity, n)
	worldRandom := FastChunkSeed(chunkX, chunkZ)
	ReplaceBlockForBiomesFullAware(chunkX, chunkZ, cache, worldRandom, n)
	return &Chunk{ChunkX: chunkX, ChunkZ: chunkZ, Voxels: cache}
}

// ProvideChunkLegacy runs the full/no-biome generator end to end,
// returning a complete voxel chunk plus a full 16x16 height map (not just
// the narrow 4-row strip the fast path produces) computed by scanning
// straight down from the top of the world.
func ProvideChunkLegacy(worldSeed int64, chunkX, chunkZ int32, n *Noises) *Chunk {
	cache := GenerateTerrainLegacy(int(chunkX), int(chunkZ), n)
	worldRandom := LegacyChunkSeed(chunkX, chunkZ)
	ReplaceBlockForBiomesLegacy(chunkX, chunkZ, cache, worldRandom, n)

	heights := make([]uint8, 16*16)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 127; y >= 0; y-- {
				if cache[(x*16+z)*128+y] != Air {
					heights[x*16+z] = uint8(y)
					break
				}
			}
		}
	}
	return &Chunk{ChunkX: chunkX, ChunkZ: chunkZ, Voxels: cache, Heights: heights}
}
