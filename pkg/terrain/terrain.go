// Package terrain implements the legacy generator's density-field terrain
// builder: a noise-driven column builder, a trilinear densifier that turns
// columns into a voxel grid, and a surface post-processor that replaces
// the topmost stone with biome-appropriate blocks.
//
// Two complete families exist because the original shipped two divergent
// implementations of the same generator. The "fast" family (grounded on
// terrainGen/fullGen.cpp) is biome-aware and only computes the narrow
// 16x4x8 surface-height band the search tool actually needs. The "legacy"
// family (grounded on GenTerrain.cpp) has no biome input, computes the
// full 16x16x128 voxel column, and disagrees with the fast family on
// several constants — each disagreement is preserved and documented at
// its point of use rather than reconciled.
package terrain

// Block identifies a single voxel's material. Values and order match the
// original generator's enum exactly.
type Block uint8

const (
	Air Block = iota
	Stone
	Grass
	Dirt
	Bedrock
	MovingWater
	Sand
	Gravel
	Ice
)

// DecorationBound is the upper bound passed to the PRNG-alignment decoration
// draws by ReplaceBlockForBiomes and ReplaceBlockForBiomesFullAware. The
// legacy/no-biome pass uses LegacyDecorationBound instead. None of the
// surface passes takes the bound as a parameter; each uses its constant
// unconditionally.
const DecorationBound = 5

// LegacyDecorationBound is the bound the no-biome surface pass always uses.
const LegacyDecorationBound = 6
