package terrain

import (
	"github.com/duskforge/seedscry/pkg/noise"
	"github.com/duskforge/seedscry/pkg/rng"
)

// rowOffset is the z-row at which the fast surface pass's four "active"
// rows start; rows before it only exist to keep the shared worldRandom
// stream aligned with the full/no-shortcut variants.
const rowOffset = 12

// ReplaceBlockForBiomes is the fast/canonical surface post-processor: it
// walks the 512-byte narrow chunkCache GenerateTerrain produced and writes
// a surface height per (x, z) into chunkHeights (length 64, indexed
// x*4+(z-12)). The first 12 z-rows of every x never touch chunkCache at
// all — they exist purely to burn PRNG draws so the four active rows see
// the same stream position the full/no-shortcut variants would leave
// behind, using Advance6/Advance4 in place of the discarded NextDouble
// calls those rows would otherwise make.
func ReplaceBlockForBiomes(chunkX, chunkZ int32, chunkCache []Block, worldRandom *rng.Random, n *Noises) []uint8 {
	heightField := make([]float64, 16*16)
	noise.GenerateNoise(heightField, float64(chunkX)*16, float64(chunkZ)*16, 0, 16, 16, 1, 0.03125*2.0, 0.03125*2.0, 0.03125*2.0, n.SurfaceElevation, noise.KernelNormal)

	chunkHeights := make([]uint8, 64)
	for x := 0; x < 16; x++ {
		for k := 0; k < 12; k++ {
			worldRandom.Advance6()
			for w := 0; w < 128; w++ {
				worldRandom.NextInt(DecorationBound)
			}
		}
		for z := rowOffset; z < 16; z++ {
			worldRandom.Advance4()
			elevation := int(heightField[x+z*16]/3.0 + 3.0 + worldRandom.NextDouble()*0.25)
			state := -1
			for y := 79; y >= 72; y-- {
				pos := x<<5 | (z-rowOffset)<<3 | (y - 72)
				previous := chunkCache[pos]
				if previous == Air {
					state = -1
					continue
				}
				if previous != Stone {
					continue
				}
				if state == -1 {
					if elevation <= 0 {
						chunkHeights[x*4+(z-rowOffset)] = uint8(y)
					} else {
						chunkHeights[x*4+(z-rowOffset)] = uint8(y + 1)
					}
					break
				}
			}
			for k := 0; k < 128; k++ {
				worldRandom.NextInt(DecorationBound)
			}
		}
	}
	return chunkHeights
}

// ReplaceBlockForBiomesFullAware is the non-shortcut biome-aware surface
// pass: instead of Advance4/Advance6 it draws the real next_double calls
// those shortcuts replace, and instead of only emitting a height it also
// paints GRASS/DIRT/SAND/GRAVEL into the full chunkCache. It scans
// y=127..64 (oceanLevel) rather than the fast path's y=79..72 band, over
// the full 16x16x128 buffer GenerateTerrainFullAware produced.
//
// The gravel-field noise call swaps chunkX and chunkZ as position
// arguments relative to sandFields/heightField — this is not a transcription
// error on this repo's part, it reproduces a documented bug ("beware this
// error in alpha") in the original generator that downstream seed search
// must match bit-for-bit.
func ReplaceBlockForBiomesFullAware(chunkX, chunkZ int32, chunkCache []Block, worldRandom *rng.Random, n *Noises) {
	const oceanLevel = 64
	const noiseFactor = 0.03125

	sandFields := make([]float64, 16*16)
	gravelField := make([]float64, 16*16)
	heightField := make([]float64, 16*16)
	noise.GenerateNoise(sandFields, float64(chunkX)*16, float64(chunkZ)*16, 0, 16, 16, 1, noiseFactor, noiseFactor, 1.0, n.ShoresBottomComposition, noise.KernelNormal)
	noise.GenerateNoise(gravelField, float64(chunkZ)*16, 109.0134, float64(chunkX)*16, 16, 1, 16, noiseFactor, 1.0, noiseFactor, n.ShoresBottomComposition, noise.KernelNormal)
	noise.GenerateNoise(heightField, float64(chunkX)*16, float64(chunkZ)*16, 0, 16, 16, 1, noiseFactor*2.0, noiseFactor*2.0, noiseFactor*2.0, n.SurfaceElevation, noise.KernelNormal)

	for x := 0; x < 16; x++ {
		for k := 0; k < 12; k++ {
			worldRandom.NextDouble()
			worldRandom.NextDouble()
			worldRandom.NextDouble()
			for w := 0; w < 128; w++ {
				worldRandom.NextInt(DecorationBound)
			}
		}
		for z := rowOffset; z < 16; z++ {
			sandy := sandFields[x+z*16]+worldRandom.NextDouble()*0.20000000000000001 > 0.0
			gravelly := gravelField[x+z*16]+worldRandom.NextDouble()*0.20000000000000001 > 3
			elevation := int(heightField[x+z*16]/3.0 + 3.0 + worldRandom.NextDouble()*0.25)
			state := -1
			above := Grass
			below := Dirt

			for y := 127; y >= oceanLevel; y-- {
				pos := (x*16+z)*128 + y
				previous := chunkCache[pos]
				if previous == Air {
					state = -1
					continue
				}
				if previous != Stone {
					continue
				}
				if state == -1 {
					if elevation <= 0 {
						above = Air
						below = Stone
					} else if y <= oceanLevel+1 {
						above = Grass
						below = Dirt
						if gravelly {
							above = Air
							below = Gravel
						}
						if sandy {
							above = Sand
							below = Sand
						}
					}
					state = elevation
					chunkCache[pos] = above
					continue
				}
				if state > 0 {
					state--
					chunkCache[pos] = below
				}
			}
			for k := 0; k < 128; k++ {
				worldRandom.NextInt(DecorationBound)
			}
		}
	}
}

// ReplaceBlockForBiomesLegacy is the no-biome surface pass: it walks the
// full column (y=127..0, not just down to sea level) and draws decoration
// ints with bound 6, not 5. It preserves two quirks verbatim:
//
//   - the gravel-field noise call swaps chunkX/chunkZ exactly like the
//     biome-aware variant, plus bakes in a fixed "Y position" of
//     109.0134 — the original's own comment flags this as a known alpha
//     bug, not something to silently correct;
//   - the y >= oceanLevel-1 branch assigns chunkCache and continues, then
//     has a second assign+continue immediately after that can never run.
//     That dead code is kept so a byte-for-byte port of the branch stays
//     recognizable against the source it's grounded on.
func ReplaceBlockForBiomesLegacy(chunkX, chunkZ int32, chunkCache []Block, worldRandom *rng.Random, n *Noises) {
	const oceanLevel = 64
	const noiseFactor = 0.03125

	sandFields := make([]float64, 16*16)
	gravelField := make([]float64, 16*16)
	heightField := make([]float64, 16*16)
	noise.GenerateNoise(sandFields, float64(chunkX)*16, float64(chunkZ)*16, 0, 16, 16, 1, noiseFactor, noiseFactor, 1.0, n.ShoresBottomComposition, noise.KernelNormal)
	noise.GenerateNoise(gravelField, float64(chunkZ)*16, 109.0134, float64(chunkX)*16, 16, 1, 16, noiseFactor, 1.0, noiseFactor, n.ShoresBottomComposition, noise.KernelNormal)
	noise.GenerateNoise(heightField, float64(chunkX)*16, float64(chunkZ)*16, 0, 16, 16, 1, noiseFactor*2.0, noiseFactor*2.0, noiseFactor*2.0, n.SurfaceElevation, noise.KernelNormal)

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			sandy := sandFields[x+z*16]+worldRandom.NextDouble()*0.2 > 0.0
			gravelly := gravelField[x+z*16]+worldRandom.NextDouble()*0.2 > 3
			elevation := int(heightField[x+z*16]/3.0 + 3.0 + worldRandom.NextDouble()*0.25)
			state := -1
			above := Grass
			below := Dirt

			for y := 127; y >= 0; y-- {
				pos := (x*16+z)*128 + y
				previous := chunkCache[pos]
				if previous == Air {
					state = -1
					continue
				}
				if previous != Stone {
					continue
				}
				if state == -1 {
					if elevation <= 0 {
						above = Air
						below = Stone
					} else if y >= oceanLevel-4 && y <= oceanLevel+1 {
						above = Grass
						below = Dirt
					}
					if gravelly {
						above = Air
					}
					if gravelly {
						below = Gravel
					}
					if sandy {
						above = Sand
						below = Sand
					}
				}
				state = elevation
				if y >= oceanLevel-1 {
					chunkCache[pos] = above
					continue
					// Dead code below, kept to mirror a verbatim duplicate
					// assign-and-continue in the source this is grounded on:
					// the branch above already returns to the loop, so this
					// never executes.
					chunkCache[pos] = above //lint:ignore SA4006 dead by construction, see comment above
					continue
				}
				if state > 0 {
					state--
					chunkCache[pos] = below
				}
			}
			for k := 0; k < 128; k++ {
				worldRandom.NextInt(LegacyDecorationBound)
			}
		}
	}
}
