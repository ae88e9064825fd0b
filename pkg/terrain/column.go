package terrain

import "github.com/duskforge/seedscry/pkg/noise"

// possibleCellCounter selects the 10 of 25 5x5 cells the fast column
// builder actually needs: the interpolation in GenerateTerrain only ever
// reads columns 9 and 10 of each of these cells' 11-level noise strip.
var possibleCellCounter = [10]int{3, 4, 8, 9, 13, 14, 18, 19, 23, 24}

// FillNoiseColumn builds the fast/biome-aware 20-value density strip (10
// cells x 2 columns) used by GenerateTerrain. temperature/humidity are the
// 16x16 biome fields for the same chunk (row-major, 16 wide) and drive an
// aridity term that dries out the surface noise in hot, dry cells.
func FillNoiseColumn(dst []float64, chunkX, chunkZ int, temperature, humidity []float64, n *Noises) {
	const d = 684.41200000000003

	surfaceNoise := make([]float64, 25)
	depthNoise := make([]float64, 25)
	noise.GenerateFixedNoise(surfaceNoise, float64(chunkX), float64(chunkZ), 5, 5, 1.121, 1.121, n.Scale)
	noise.GenerateFixedNoise(depthNoise, float64(chunkX), float64(chunkZ), 5, 5, 200.0, 200.0, n.Depth)

	mainLimit := make([]float64, 110)
	minLimit := make([]float64, 110)
	maxLimit := make([]float64, 110)
	noise.GenerateNoise(mainLimit, float64(chunkX), 0, float64(chunkZ), 10, 11, 1, d/80, d/160, d/80, n.MainLimit, noise.KernelSpecialized)
	noise.GenerateNoise(minLimit, float64(chunkX), 0, float64(chunkZ), 10, 11, 1, d, d, d, n.MinLimit, noise.KernelSpecialized)
	noise.GenerateNoise(maxLimit, float64(chunkX), 0, float64(chunkZ), 10, 11, 1, d, d, d, n.MaxLimit, noise.KernelSpecialized)

	noiseIndex := 0
	for indd, cellCounter := range possibleCellCounter {
		x := (cellCounter/5)*3 + 1
		z := (cellCounter%5)*3 + 1

		aridity := 1.0 - humidity[x*16+z]*temperature[x*16+z]
		aridity *= aridity
		aridity *= aridity
		aridity = 1.0 - aridity

		surface := (surfaceNoise[cellCounter]/512.0 + 256.0/512.0) * aridity
		if surface > 1.0 {
			surface = 1.0
		}

		depth := depthNoise[cellCounter] / 8000.0
		if depth < 0.0 {
			depth = -depth * 0.29999999999999999
		}
		depth = depth*3 - 2
		if depth < 0.0 {
			depth /= 2.0
			if depth < -1 {
				depth = -1
			}
			depth /= 1.3999999999999999
			depth /= 2.0
			surface = 0.0
		} else {
			if depth > 1.0 {
				depth = 1.0
			}
			depth /= 8.0
		}
		if surface < 0.0 {
			surface = 0.0
		}
		surface += 0.5
		depth = (depth * 17.0) / 16.0
		depthColumn := 17.0/2.0 + depth*4.0

		for column := 9; column < 11; column++ {
			columnPerSurface := ((float64(column) - depthColumn) * 12.0) / surface
			if columnPerSurface < 0.0 {
				columnPerSurface *= 4.0
			}
			lo := minLimit[indd*11+column] / 512.0
			hi := maxLimit[indd*11+column] / 512.0
			main := (mainLimit[indd*11+column]/10.0 + 1.0) / 2.0
			var limit float64
			switch {
			case main < 0.0:
				limit = lo
			case main > 1.0:
				limit = hi
			default:
				limit = lo + (hi-lo)*main
			}
			limit -= columnPerSurface
			dst[noiseIndex] = limit
			noiseIndex++
		}
	}
}

// FillNoiseColumnFullAware builds the same biome-aware density values as
// FillNoiseColumn, but into a full cellSizeX*cellSizeZ*columnSize (5*5*17)
// buffer addressed as cellCounter*17+column instead of a packed 20-value
// strip — every cell this doesn't touch is left at zero (air). This
// layout is what the full biome-aware surface pass (grounded on
// heightmap/heightmapGen.cpp) scans.
func FillNoiseColumnFullAware(dst []float64, chunkX, chunkZ int, temperature, humidity []float64, n *Noises) {
	const d = 684.41200000000003

	surfaceNoise := make([]float64, 25)
	depthNoise := make([]float64, 25)
	noise.GenerateFixedNoise(surfaceNoise, float64(chunkX), float64(chunkZ), 5, 5, 1.121, 1.121, n.Scale)
	noise.GenerateFixedNoise(depthNoise, float64(chunkX), float64(chunkZ), 5, 5, 200.0, 200.0, n.Depth)

	mainLimit := make([]float64, 5*17*5)
	minLimit := make([]float64, 5*17*5)
	maxLimit := make([]float64, 5*17*5)
	noise.GenerateNoise(mainLimit, float64(chunkX), 0, float64(chunkZ), 5, 17, 5, d/80, d/160, d/80, n.MainLimit, noise.KernelNormal)
	noise.GenerateNoise(minLimit, float64(chunkX), 0, float64(chunkZ), 5, 17, 5, d, d, d, n.MinLimit, noise.KernelNormal)
	noise.GenerateNoise(maxLimit, float64(chunkX), 0, float64(chunkZ), 5, 17, 5, d, d, d, n.MaxLimit, noise.KernelNormal)

	for _, cellCounter := range possibleCellCounter {
		x := (cellCounter/5)*3 + 1
		z := (cellCounter%5)*3 + 1

		aridity := 1.0 - humidity[x*16+z]*temperature[x*16+z]
		aridity *= aridity
		aridity *= aridity
		aridity = 1.0 - aridity

		surface := (surfaceNoise[cellCounter]/512.0 + 256.0/512.0) * aridity
		if surface > 1.0 {
			surface = 1.0
		}

		depth := depthNoise[cellCounter] / 8000.0
		if depth < 0.0 {
			depth = -depth * 0.29999999999999999
		}
		depth = depth*3 - 2
		if depth < 0.0 {
			depth /= 2.0
			if depth < -1 {
				depth = -1
			}
			depth /= 1.3999999999999999
			depth /= 2.0
			surface = 0.0
		} else {
			if depth > 1.0 {
				depth = 1.0
			}
			depth /= 8.0
		}
		if surface < 0.0 {
			surface = 0.0
		}
		surface += 0.5
		depth = (depth * 17.0) / 16.0
		depthColumn := 17.0/2.0 + depth*4.0

		for column := 9; column < 11; column++ {
			columnCounter := cellCounter*17 + column
			columnPerSurface := ((float64(column) - depthColumn) * 12.0) / surface
			if columnPerSurface < 0.0 {
				columnPerSurface *= 4.0
			}
			lo := minLimit[columnCounter] / 512.0
			hi := maxLimit[columnCounter] / 512.0
			main := (mainLimit[columnCounter]/10.0 + 1.0) / 2.0
			var limit float64
			switch {
			case main < 0.0:
				limit = lo
			case main > 1.0:
				limit = hi
			default:
				limit = lo + (hi-lo)*main
			}
			limit -= columnPerSurface
			dst[columnCounter] = limit
		}
	}
}

// FillNoiseColumnLegacy builds the full/no-biome 5x17x5 density grid
// (cellSizeX * columnSize * cellSizeZ) used by GenerateTerrainLegacy. It
// has no aridity term (no biome input) and a different depth formula
// (offsets -3/÷6 instead of -2/÷8), plus a taper that pulls the top
// three Y levels of each column toward open air.
func FillNoiseColumnLegacy(dst []float64, chunkX, chunkZ int, n *Noises) {
	const cellSizeX, columnSize, cellSizeZ = 5, 17, 5
	const noiseSize = 684.412

	surfaceNoise := make([]float64, cellSizeX*cellSizeZ)
	noise.GenerateFixedNoise(surfaceNoise, float64(chunkX), float64(chunkZ), cellSizeX, cellSizeZ, 1.0, 1.0, n.Scale)
	depthNoise := make([]float64, cellSizeX*cellSizeZ)
	noise.GenerateFixedNoise(depthNoise, float64(chunkX), float64(chunkZ), cellSizeX, cellSizeZ, 100.0, 100.0, n.Depth)

	mainLimit := make([]float64, cellSizeX*columnSize*cellSizeZ)
	minLimit := make([]float64, cellSizeX*columnSize*cellSizeZ)
	maxLimit := make([]float64, cellSizeX*columnSize*cellSizeZ)
	noise.GenerateNoise(mainLimit, float64(chunkX), 0, float64(chunkZ), cellSizeX, columnSize, cellSizeZ, noiseSize/80, noiseSize/160, noiseSize/80, n.MainLimit, noise.KernelNormal)
	noise.GenerateNoise(minLimit, float64(chunkX), 0, float64(chunkZ), cellSizeX, columnSize, cellSizeZ, noiseSize, noiseSize, noiseSize, n.MinLimit, noise.KernelNormal)
	noise.GenerateNoise(maxLimit, float64(chunkX), 0, float64(chunkZ), cellSizeX, columnSize, cellSizeZ, noiseSize, noiseSize, noiseSize, n.MaxLimit, noise.KernelNormal)

	index2d := 0
	index3d := 0
	for cellX := 0; cellX < cellSizeX; cellX++ {
		for cellZ := 0; cellZ < cellSizeZ; cellZ++ {
			surface := surfaceNoise[index2d]/512.0 + 256.0/512.0
			if surface > 1.0 {
				surface = 1.0
			}
			depth := depthNoise[index2d] / 8000.0
			if depth < 0.0 {
				depth = -depth
			}
			depth = depth*3.0 - 3.0
			if depth < 0.0 {
				depth /= 2.0
				if depth < -1.0 {
					depth = -1.0
				}
				depth /= 1.4
				depth /= 2.0
				surface = 0.0
			} else {
				if depth > 1.0 {
					depth = 1.0
				}
				depth /= 6.0
			}
			surface += 0.5
			depth = (depth * float64(columnSize)) / 16.0
			depthColumn := float64(columnSize)/2.0 + depth*4.0
			index2d++

			for cellY := 0; cellY < columnSize; cellY++ {
				columnPerSurface := ((float64(cellY) - depthColumn) * 12.0) / surface
				if columnPerSurface < 0.0 {
					columnPerSurface *= 4.0
				}
				lo := minLimit[index3d] / 512.0
				hi := maxLimit[index3d] / 512.0
				main := (mainLimit[index3d]/10.0 + 1.0) / 2.0
				var limit float64
				switch {
				case main < 0.0:
					limit = lo
				case main > 1.0:
					limit = hi
				default:
					limit = lo + (hi-lo)*main
				}
				limit -= columnPerSurface

				// Taper the top three Y levels toward open air (-10) instead
				// of letting the raw density decide; the mirrored bottom
				// taper below is dead code (cellY never goes negative) but
				// is kept to match the original's (unreachable) branch.
				if cellY > columnSize-4 {
					correction := float64(cellY-(columnSize-4)) / 3.0
					limit = limit*(1.0-correction) + -10.0*correction
				}
				if cellY < 0 {
					correction := (0.0 - float64(cellY)) / 4.0
					if correction < 0.0 {
						correction = 0.0
					}
					if correction > 1.0 {
						correction = 1.0
					}
					limit = limit*(1.0-correction) + -10.0*correction
				}
				dst[index3d] = limit
				index3d++
			}
		}
	}
}
