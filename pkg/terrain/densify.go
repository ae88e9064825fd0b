package terrain

// GenerateTerrain densifies the fast 20-value noise strip into the narrow
// 16x4x8 surface-search band (chunkCache indexed x<<7|xOffset<<5|zOffset<<3
// |heightOffset, length 64*8) that ReplaceBlockForBiomes scans. It never
// places water: this band only ever covers the y=72..79 range near the
// surface, which this generator's single chunk-column caller never expects
// to be underwater before the surface pass runs.
func GenerateTerrain(chunkX, chunkZ int, temperature, humidity []float64, n *Noises) []Block {
	chunkCache := make([]Block, 64*8)
	column := make([]float64, 20)
	FillNoiseColumn(column, chunkX*4, chunkZ*4, temperature, humidity, n)

	for x := 0; x < 4; x++ {
		firstNoise00 := column[x*4]
		firstNoise01 := column[x*4+2]
		firstNoise10 := column[x*4+4]
		firstNoise11 := column[x*4+6]
		stepFirst00 := (column[x*4+1] - firstNoise00) * 0.125
		stepFirst01 := (column[x*4+3] - firstNoise01) * 0.125
		stepFirst10 := (column[x*4+5] - firstNoise10) * 0.125
		stepFirst11 := (column[x*4+7] - firstNoise11) * 0.125

		for heightOffset := 0; heightOffset < 8; heightOffset++ {
			secondNoise00 := firstNoise00
			secondNoise01 := firstNoise01
			stepSecond10 := (firstNoise10 - firstNoise00) * 0.25
			stepSecond11 := (firstNoise11 - firstNoise01) * 0.25

			for xOffset := 0; xOffset < 4; xOffset++ {
				stoneLimit := secondNoise00
				stepThird01 := (secondNoise01 - secondNoise00) * 0.25

				for zOffset := 0; zOffset < 4; zOffset++ {
					index := x<<7 | xOffset<<5 | zOffset<<3 | heightOffset
					block := Air
					if stoneLimit > 0.0 {
						block = Stone
					}
					chunkCache[index] = block
					stoneLimit += stepThird01
				}

				secondNoise00 += stepSecond10
				secondNoise01 += stepSecond11
			}

			firstNoise00 += stepFirst00
			firstNoise01 += stepFirst01
			firstNoise10 += stepFirst10
			firstNoise11 += stepFirst11
		}
	}
	return chunkCache
}

// GenerateTerrainFullAware densifies the biome-aware density grid into a
// full 16x16x128 voxel chunk (same index layout as GenerateTerrainLegacy).
// It only ever fills the z=12..15, y=72..79 band — every other voxel stays
// air — because the density grid it reads from (FillNoiseColumnFullAware)
// only ever populates that same narrow band; the full-size buffer exists
// so the biome-aware surface pass below can scan it with the legacy
// index scheme.
func GenerateTerrainFullAware(chunkX, chunkZ int, temperature, humidity []float64, n *Noises) []Block {
	const quadrant, columnSize, cellSize = 4, 17, 5
	const interpFirst, interpSecond, interpThird = 0.125, 0.25, 0.25

	chunkCache := make([]Block, 16*16*128)
	column := make([]float64, cellSize*cellSize*columnSize)
	FillNoiseColumnFullAware(column, chunkX*quadrant, chunkZ*quadrant, temperature, humidity, n)

	for x := 0; x < quadrant; x++ {
		z := 3
		for height := 9; height < 10; height++ {
			off00 := x*cellSize + z
			off01 := x*cellSize + (z + 1)
			off10 := (x+1)*cellSize + z
			off11 := (x+1)*cellSize + (z + 1)

			firstNoise00 := column[off00*columnSize+height]
			firstNoise01 := column[off01*columnSize+height]
			firstNoise10 := column[off10*columnSize+height]
			firstNoise11 := column[off11*columnSize+height]
			stepFirst00 := (column[off00*columnSize+height+1] - firstNoise00) * interpFirst
			stepFirst01 := (column[off01*columnSize+height+1] - firstNoise01) * interpFirst
			stepFirst10 := (column[off10*columnSize+height+1] - firstNoise10) * interpFirst
			stepFirst11 := (column[off11*columnSize+height+1] - firstNoise11) * interpFirst

			for heightOffset := 0; heightOffset < 8; heightOffset++ {
				secondNoise00 := firstNoise00
				secondNoise01 := firstNoise01
				stepSecond10 := (firstNoise10 - firstNoise00) * interpSecond
				stepSecond11 := (firstNoise11 - firstNoise01) * interpSecond

				for xOffset := 0; xOffset < 4; xOffset++ {
					currentHeight := height*8 + heightOffset
					index := (xOffset+x*4)<<11 | (z*4)<<7 | currentHeight
					stoneLimit := secondNoise00
					stepThird01 := (secondNoise01 - secondNoise00) * interpThird

					for zOffset := 0; zOffset < 4; zOffset++ {
						block := Air
						if stoneLimit > 0.0 {
							block = Stone
						}
						chunkCache[index] = block
						index += 128
						stoneLimit += stepThird01
					}

					secondNoise00 += stepSecond10
					secondNoise01 += stepSecond11
				}

				firstNoise00 += stepFirst00
				firstNoise01 += stepFirst01
				firstNoise10 += stepFirst10
				firstNoise11 += stepFirst11
			}
		}
	}
	return chunkCache
}

// GenerateTerrainLegacy densifies the full 5x17x5 legacy noise grid into a
// full 16x16x128 voxel chunk (index layout (xOffset+x*4)<<11|(z*4)<<7|
// currentHeight — a different bit packing from GenerateTerrain's, since
// this variant stores every Y level rather than an 8-wide surface band).
// Anything below sea level that isn't stone is moving water.
func GenerateTerrainLegacy(chunkX, chunkZ int, n *Noises) []Block {
	const quadrant, columnSize, cellSize, seaLevel = 4, 17, 5, 64
	const interpFirst, interpSecond, interpThird = 0.125, 0.25, 0.25

	chunkCache := make([]Block, 16*16*128)
	column := make([]float64, cellSize*cellSize*columnSize)
	FillNoiseColumnLegacy(column, chunkX*quadrant, chunkZ*quadrant, n)

	for x := 0; x < quadrant; x++ {
		for z := 0; z < quadrant; z++ {
			for height := 0; height < columnSize-1; height++ {
				off00 := x*cellSize + z
				off01 := x*cellSize + (z + 1)
				off10 := (x+1)*cellSize + z
				off11 := (x+1)*cellSize + (z + 1)

				firstNoise00 := column[off00*columnSize+height]
				firstNoise01 := column[off01*columnSize+height]
				firstNoise10 := column[off10*columnSize+height]
				firstNoise11 := column[off11*columnSize+height]
				stepFirst00 := (column[off00*columnSize+height+1] - firstNoise00) * interpFirst
				stepFirst01 := (column[off01*columnSize+height+1] - firstNoise01) * interpFirst
				stepFirst10 := (column[off10*columnSize+height+1] - firstNoise10) * interpFirst
				stepFirst11 := (column[off11*columnSize+height+1] - firstNoise11) * interpFirst

				for heightOffset := 0; heightOffset < 8; heightOffset++ {
					secondNoise00 := firstNoise00
					secondNoise01 := firstNoise01
					stepSecond10 := (firstNoise10 - firstNoise00) * interpSecond
					stepSecond11 := (firstNoise11 - firstNoise01) * interpSecond

					for xOffset := 0; xOffset < 4; xOffset++ {
						currentHeight := height*8 + heightOffset
						index := (xOffset+x*4)<<11 | (z*4)<<7 | currentHeight
						stoneLimit := secondNoise00
						stepThird01 := (secondNoise01 - secondNoise00) * interpThird

						for zOffset := 0; zOffset < 4; zOffset++ {
							block := Air
							if currentHeight < seaLevel {
								block = MovingWater
							}
							if stoneLimit > 0.0 {
								block = Stone
							}
							chunkCache[index] = block
							index += 128
							stoneLimit += stepThird01
						}

						secondNoise00 += stepSecond10
						secondNoise01 += stepSecond11
					}

					firstNoise00 += stepFirst00
					firstNoise01 += stepFirst01
					firstNoise10 += stepFirst10
					firstNoise11 += stepFirst11
				}
			}
		}
	}
	return chunkCache
}
