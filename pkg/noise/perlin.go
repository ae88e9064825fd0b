package noise

// grad hashes a gradient-table entry into one of sixteen fixed direction
// vectors and dots it with (x, y, z). Cases 0xD and 0xF both alias to
// "-y+z"/"-y-z" forms rather than the reflected "y+z"/"y-z" variants a
// from-scratch port would guess at — this repeats exactly and is part of
// the noise field's contract, not a bug to fix.
func grad(hash uint8, x, y, z float64) float64 {
	switch hash & 0xF {
	case 0x0:
		return x + y
	case 0x1:
		return -x + y
	case 0x2:
		return x - y
	case 0x3:
		return -x - y
	case 0x4:
		return x + z
	case 0x5:
		return -x + z
	case 0x6:
		return x - z
	case 0x7:
		return -x - z
	case 0x8:
		return y + z
	case 0x9:
		return -y + z
	case 0xA:
		return y - z
	case 0xB:
		return -y - z
	case 0xC:
		return y + x
	case 0xD:
		return -y + z
	case 0xE:
		return y - x
	case 0xF:
		return -y - z
	default:
		panic("noise: unreachable gradient hash")
	}
}

func grad2D(hash uint8, x, z float64) float64 {
	return grad(hash, x, 0, z)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// floorCoord replicates the original's truncate-then-correct-for-negatives
// pattern: C's (int32_t) cast truncates toward zero, so a manual decrement
// is needed to get a true floor for negative coordinates.
func floorCoord(v float64) (cell int32, frac float64) {
	cell = int32(v)
	if v < float64(cell) {
		cell--
	}
	frac = v - float64(cell)
	return
}

// possibleX/possibleZ are the ten (x, z) cell offsets the specialized
// surface-height kernel actually needs out of a full 5x5x17 column grid —
// see fillNoiseColumn's "we only care about" comment in the grounding
// source. Reproducing this table keeps the specialized kernel's buffer
// indexing bit-identical to the original.
var possibleX = [10]int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4}
var possibleZ = [10]int{3, 4, 3, 4, 3, 4, 3, 4, 3, 4}

// GeneratePermutationsSpecialized is the 10-corner, Y in [0,11) kernel used
// by the fast surface-height column builder: of a full 5x5x17 grid it only
// ever needs the eight corners of ten specific X/Z cells, across eleven Y
// levels (Y can't be bounded tighter without breaking the interpolation
// below it). buf must have length 110 (10*11) and already hold prior
// octaves' contributions — each call adds this octave's contribution.
func GeneratePermutationsSpecialized(buf []float64, x, y, z, noiseFactorX, noiseFactorY, noiseFactorZ, octaveSize float64, table PermutationTable) {
	octaveWidth := 1.0 / octaveSize
	perms := table.Permutations[:]
	i2 := int32(-1)
	var x1, x2, xx1, xx2 float64
	columnIndex := 0
	for index := 0; index < 10; index++ {
		xCoord := (x+float64(possibleX[index]))*noiseFactorX + table.Xo
		clampedX, xCoordFrac := floorCoord(xCoord)
		xBottoms := uint8(uint32(clampedX) & 0xff)
		fadeX := fade(xCoordFrac)

		zCoord := (z+float64(possibleZ[index]))*noiseFactorZ + table.Zo
		clampedZ, zCoordFrac := floorCoord(zCoord)
		zBottoms := uint8(uint32(clampedZ) & 0xff)
		fadeZ := fade(zCoordFrac)

		for y8 := 0; y8 < 11; y8++ {
			yCoord := (y+float64(y8))*noiseFactorY + table.Yo
			clampedY, yCoordFrac := floorCoord(yCoord)
			yBottoms := uint8(uint32(clampedY) & 0xff)
			fadeY := fade(yCoordFrac)

			// Cache key is yBottoms alone: the corner gradients are always
			// recomputed at y8 == 0 (the start of each X/Z cell), but within
			// a column they are reused for every sample in the same Y cell,
			// still holding the y fraction of the first sample there. That
			// is the original's actual behavior and callers rely on its
			// exact (slightly wrong) output.
			if y8 == 0 || yBottoms != uint8(i2) {
				i2 = int32(yBottoms)
				k2 := uint16(perms[perms[xBottoms]+yBottoms]) + uint16(zBottoms)
				l2 := uint16(perms[perms[xBottoms]+yBottoms+1]) + uint16(zBottoms)
				k3 := uint16(perms[perms[xBottoms+1]+yBottoms]) + uint16(zBottoms)
				l3 := uint16(perms[perms[xBottoms+1]+yBottoms+1]) + uint16(zBottoms)
				x1 = lerp(fadeX, grad(perms[k2], xCoordFrac, yCoordFrac, zCoordFrac), grad(perms[k3], xCoordFrac-1.0, yCoordFrac, zCoordFrac))
				x2 = lerp(fadeX, grad(perms[l2], xCoordFrac, yCoordFrac-1.0, zCoordFrac), grad(perms[l3], xCoordFrac-1.0, yCoordFrac-1.0, zCoordFrac))
				xx1 = lerp(fadeX, grad(perms[k2+1], xCoordFrac, yCoordFrac, zCoordFrac-1.0), grad(perms[k3+1], xCoordFrac-1.0, yCoordFrac, zCoordFrac-1.0))
				xx2 = lerp(fadeX, grad(perms[l2+1], xCoordFrac, yCoordFrac-1.0, zCoordFrac-1.0), grad(perms[l3+1], xCoordFrac-1.0, yCoordFrac-1.0, zCoordFrac-1.0))
			}
			y1 := lerp(fadeY, x1, x2)
			y2 := lerp(fadeY, xx1, xx2)
			buf[columnIndex] += lerp(fadeZ, y1, y2) * octaveWidth
			columnIndex++
		}
	}
}

// GenerateFixedPermutations is the 2D-fixed kernel (y never varies, so the
// y-plane gradient lookup collapses to grad2D). buf has length sizeX*sizeZ.
func GenerateFixedPermutations(buf []float64, x, z float64, sizeX, sizeZ int, noiseFactorX, noiseFactorZ, octaveSize float64, table PermutationTable) {
	octaveWidth := 1.0 / octaveSize
	perms := table.Permutations[:]
	index := 0
	for xi := 0; xi < sizeX; xi++ {
		xCoord := (x+float64(xi))*noiseFactorX + table.Xo
		clampedX, xCoordFrac := floorCoord(xCoord)
		xBottoms := uint16(uint32(clampedX) & 0xff)
		fadeX := fade(xCoordFrac)
		for zi := 0; zi < sizeZ; zi++ {
			zCoord := (z+float64(zi))*noiseFactorZ + table.Zo
			clampedZ, zCoordFrac := floorCoord(zCoord)
			zBottoms := uint16(uint32(clampedZ) & 0xff)
			fadeZ := fade(zCoordFrac)

			hhxz := (uint16(perms[perms[xBottoms]&0xff]&0xff) + zBottoms) & 0xff
			hhx1z := (uint16(perms[perms[(xBottoms+1)&0xff]&0xff]&0xff) + zBottoms) & 0xff
			Hhhxz := perms[hhxz&0xff]
			Hhhx1z := perms[hhx1z&0xff]
			Hhhxz1 := perms[(hhxz+1)&0xff]
			Hhhx1z1 := perms[(hhx1z+1)&0xff]

			x1 := lerp(fadeX, grad2D(Hhhxz, xCoordFrac, zCoordFrac), grad2D(Hhhx1z, xCoordFrac-1.0, zCoordFrac))
			x2 := lerp(fadeX, grad2D(Hhhxz1, xCoordFrac, zCoordFrac-1.0), grad2D(Hhhx1z1, xCoordFrac-1.0, zCoordFrac-1.0))
			y1 := lerp(fadeZ, x1, x2)
			buf[index] += y1 * octaveWidth
			index++
		}
	}
}

// GenerateNormalPermutations is the general 3D kernel used when the caller
// needs every cell of a sizeX*sizeZ*sizeY grid (not just the ten cells the
// specialized kernel covers), e.g. the full-chunk density grid. It shares
// the specialized kernel's stale y-cell gradient cache quirk verbatim.
func GenerateNormalPermutations(buf []float64, x, y, z float64, sizeX, sizeY, sizeZ int, noiseFactorX, noiseFactorY, noiseFactorZ, octaveSize float64, table PermutationTable) {
	octaveWidth := 1.0 / octaveSize
	perms := table.Permutations[:]
	i2 := int32(-1)
	var x1, x2, xx1, xx2 float64
	columnIndex := 0
	for xi := 0; xi < sizeX; xi++ {
		xCoord := (x+float64(xi))*noiseFactorX + table.Xo
		clampedX, xCoordFrac := floorCoord(xCoord)
		xBottoms := uint8(uint32(clampedX) & 0xff)
		fadeX := fade(xCoordFrac)
		for zi := 0; zi < sizeZ; zi++ {
			zCoord := (z+float64(zi))*noiseFactorZ + table.Zo
			clampedZ, zCoordFrac := floorCoord(zCoord)
			zBottoms := uint8(uint32(clampedZ) & 0xff)
			fadeZ := fade(zCoordFrac)
			for yi := 0; yi < sizeY; yi++ {
				yCoord := (y+float64(yi))*noiseFactorY + table.Yo
				clampedY, yCoordFrac := floorCoord(yCoord)
				yBottoms := uint8(uint32(clampedY) & 0xff)
				fadeY := fade(yCoordFrac)

				if yi == 0 || yBottoms != uint8(i2) {
					i2 = int32(yBottoms)
					k2 := uint16(perms[perms[xBottoms]+yBottoms]) + uint16(zBottoms)
					l2 := uint16(perms[perms[xBottoms]+yBottoms+1]) + uint16(zBottoms)
					k3 := uint16(perms[perms[xBottoms+1]+yBottoms]) + uint16(zBottoms)
					l3 := uint16(perms[perms[xBottoms+1]+yBottoms+1]) + uint16(zBottoms)
					x1 = lerp(fadeX, grad(perms[k2], xCoordFrac, yCoordFrac, zCoordFrac), grad(perms[k3], xCoordFrac-1.0, yCoordFrac, zCoordFrac))
					x2 = lerp(fadeX, grad(perms[l2], xCoordFrac, yCoordFrac-1.0, zCoordFrac), grad(perms[l3], xCoordFrac-1.0, yCoordFrac-1.0, zCoordFrac))
					xx1 = lerp(fadeX, grad(perms[k2+1], xCoordFrac, yCoordFrac, zCoordFrac-1.0), grad(perms[k3+1], xCoordFrac-1.0, yCoordFrac, zCoordFrac-1.0))
					xx2 = lerp(fadeX, grad(perms[l2+1], xCoordFrac, yCoordFrac-1.0, zCoordFrac-1.0), grad(perms[l3+1], xCoordFrac-1.0, yCoordFrac-1.0, zCoordFrac-1.0))
				}
				y1 := lerp(fadeY, x1, x2)
				y2 := lerp(fadeY, xx1, xx2)
				buf[columnIndex] += lerp(fadeZ, y1, y2) * octaveWidth
				columnIndex++
			}
		}
	}
}

// KernelKind selects which 3D driver GenerateNoise dispatches to.
type KernelKind int

const (
	// KernelSpecialized is the 10-corner/Y<11 fast surface-height kernel;
	// buf must have length 110 regardless of sizeX/sizeY/sizeZ.
	KernelSpecialized KernelKind = iota
	// KernelNormal is the general sizeX*sizeY*sizeZ kernel.
	KernelNormal
)

// GenerateNoise is the octave driver shared by both 3D kernels: it halves
// frequency (via octavesFactor) and implicitly doubles the contribution
// weight (via each kernel's octaveSize=octavesFactor -> octaveWidth=1/that)
// every octave, zeroing buf before summing.
func GenerateNoise(buf []float64, x, y, z float64, sizeX, sizeY, sizeZ int, offsetX, offsetY, offsetZ float64, tables []PermutationTable, kind KernelKind) {
	for i := range buf {
		buf[i] = 0
	}
	octavesFactor := 1.0
	for _, table := range tables {
		switch kind {
		case KernelSpecialized:
			GeneratePermutationsSpecialized(buf, x, y, z, offsetX*octavesFactor, offsetY*octavesFactor, offsetZ*octavesFactor, octavesFactor, table)
		default:
			GenerateNormalPermutations(buf, x, y, z, sizeX, sizeY, sizeZ, offsetX*octavesFactor, offsetY*octavesFactor, offsetZ*octavesFactor, octavesFactor, table)
		}
		octavesFactor /= 2.0
	}
}

// GenerateFixedNoise is the 2D octave driver.
func GenerateFixedNoise(buf []float64, x, z float64, sizeX, sizeZ int, offsetX, offsetZ float64, tables []PermutationTable) {
	for i := range buf {
		buf[i] = 0
	}
	octavesFactor := 1.0
	for _, table := range tables {
		GenerateFixedPermutations(buf, x, z, sizeX, sizeZ, offsetX*octavesFactor, offsetZ*octavesFactor, octavesFactor, table)
		octavesFactor /= 2.0
	}
}
