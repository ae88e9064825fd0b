package search

import "github.com/duskforge/seedscry/pkg/terrain"

// Anchor signature constants for the cross-chunk height-difference
// matcher: AnchorOffsetZ fixes the z row relative to the requested world z,
// and OffsetXNeg/OffsetXPlus bound the x window scanned around the
// requested world x. AnchorSignature holds the sequence of consecutive
// height differences the window is compared against, read left to right.
const (
	OffsetXPlus   = 2
	OffsetXNeg    = -2
	AnchorOffsetZ = -17
)

// AnchorSignature is the height-difference fingerprint the generalized
// matcher looks for across the 5-wide x window.
var AnchorSignature = []int32{-1, 0, 0, -1}

// AnchorMatch reports a cross-chunk anchor hit.
type AnchorMatch struct {
	Seed  int64
	X, Z  int32
	Count int
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int32) int32 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// columnHeight scans a full legacy voxel chunk downward from the top of
// the world and returns the first non-air y at (localX, localZ). Unlike
// the C++ this is grounded on, the scan starts at y=127 rather than 128:
// the original reads chunkCache[pos+128], one past the 128-level buffer,
// before the loop condition ever looks at the value — an out-of-bounds
// read that happens to work in C++ because of what sits in adjacent
// memory. Go has no equivalent undefined slot to read, so the scan
// starts at the top in-bounds level instead; the only seeds this could
// possibly affect are ones where level 127 is already solid, which the
// generator's surface band never produces.
func columnHeight(chunk *terrain.Chunk, localX, localZ int) int32 {
	for y := 127; y >= 0; y-- {
		if chunk.BlockAt(localX, localZ, y) != terrain.Air {
			return int32(y)
		}
	}
	return 0
}

// AnchorFilterSeeds scans world column (worldX, worldZ) for each seed,
// comparing the 5-wide x window's consecutive height differences against
// AnchorSignature position by position. A seed is reported when at least
// one difference equals its AnchorSignature entry; Count is the number of
// positions that matched. The window can spill into the chunk west or east of
// the one worldX falls in; that neighbor is only generated when the
// window actually reaches it.
func AnchorFilterSeeds(seeds []int64, worldX, worldZ int32) []AnchorMatch {
	var matches []AnchorMatch
	for _, seed := range seeds {
		if m, ok := anchorOneSeed(seed, worldX, worldZ); ok {
			matches = append(matches, m)
		}
	}
	return matches
}

func anchorOneSeed(seed int64, worldX, worldZ int32) (AnchorMatch, bool) {
	chunkX := floorDiv(worldX, 16)
	chunkPosX := floorMod(worldX, 16)
	lowerSpill := chunkPosX+OffsetXNeg < 0
	upperSpill := chunkPosX+OffsetXPlus > 15

	chunkZ := floorDiv(worldZ+AnchorOffsetZ, 16)
	chunkPosZ := floorMod(worldZ+AnchorOffsetZ, 16)

	n := terrain.InitTerrainLegacy(seed)
	main := terrain.ProvideChunkLegacy(seed, chunkX, chunkZ, n)

	var neighbor *terrain.Chunk
	if lowerSpill {
		neighbor = terrain.ProvideChunkLegacy(seed, chunkX-1, chunkZ, n)
	} else if upperSpill {
		neighbor = terrain.ProvideChunkLegacy(seed, chunkX+1, chunkZ, n)
	}

	var lastY int32 = -1
	haveLastY := false
	index := 0
	count := 0

	scan := func(chunk *terrain.Chunk, x int) {
		y := columnHeight(chunk, x, int(chunkPosZ))
		if !haveLastY {
			lastY = y
			haveLastY = true
			return
		}
		diff := lastY - y
		lastY = y
		if index < len(AnchorSignature) && diff == AnchorSignature[index] {
			count++
		}
		index++
	}

	if lowerSpill {
		for x := int(chunkPosX) + OffsetXNeg + 16; x <= 15; x++ {
			scan(neighbor, x)
		}
	}
	lo := int(chunkPosX) + OffsetXNeg
	if lo < 0 {
		lo = 0
	}
	hi := int(chunkPosX) + OffsetXPlus
	if hi > 15 {
		hi = 15
	}
	for x := lo; x <= hi; x++ {
		scan(main, x)
	}
	if upperSpill {
		for x := 0; x <= int(chunkPosX)+OffsetXPlus-16; x++ {
			scan(neighbor, x)
		}
	}

	if count >= 1 {
		return AnchorMatch{Seed: seed, X: worldX, Z: worldZ, Count: count}, true
	}
	return AnchorMatch{}, false
}
