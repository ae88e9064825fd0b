package noise

const (
	simplexF2 = 0.3660254037844386
	simplexG2 = 0.21132486540518713
)

// grad2 is the fixed 12-entry 2D gradient table the simplex kernel hashes
// into. Entries 4-7 and 8-11 repeat the same two directions twice — that
// duplication (rather than 8 or 16 distinct directions) is part of the
// original table, not a transcription slip.
var grad2 = [12][2]int{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

// SimplexNoise adds one octave's contribution to buf (length sizeX*sizeZ,
// row-major X-major like the fixed Perlin kernel) using the standard
// skew/unskew 2D simplex construction, scaled by 70*octaveFactor.
func SimplexNoise(buf []float64, chunkX, chunkZ float64, sizeX, sizeZ int, offsetX, offsetZ, octaveFactor float64, table PermutationTable) {
	perms := table.Permutations[:]
	k := 0
	for xi := 0; xi < sizeX; xi++ {
		xCoords := (chunkX+float64(xi))*offsetX + table.Xo
		for zi := 0; zi < sizeZ; zi++ {
			zCoords := (chunkZ+float64(zi))*offsetZ + table.Yo

			hairy := (xCoords + zCoords) * simplexF2
			tempX := int32(xCoords + hairy)
			tempZ := int32(zCoords + hairy)
			var xHairy, zHairy int32
			if xCoords+hairy < float64(tempX) {
				xHairy = tempX - 1
			} else {
				xHairy = tempX
			}
			if zCoords+hairy < float64(tempZ) {
				zHairy = tempZ - 1
			} else {
				zHairy = tempZ
			}
			d11 := float64(xHairy+zHairy) * simplexG2
			x0Origin := float64(xHairy) - d11
			y0Origin := float64(zHairy) - d11
			x0 := xCoords - x0Origin
			y0 := zCoords - y0Origin

			var offSecondX, offSecondZ int
			if x0 > y0 {
				offSecondX, offSecondZ = 1, 0
			} else {
				offSecondX, offSecondZ = 0, 1
			}

			x1 := (x0 - float64(offSecondX)) + simplexG2
			y1 := (y0 - float64(offSecondZ)) + simplexG2
			x2 := (x0 - 1.0) + 2.0*simplexG2
			y2 := (y0 - 1.0) + 2.0*simplexG2

			ii := uint32(xHairy) & 0xff
			jj := uint32(zHairy) & 0xff
			gi0 := perms[(ii+uint32(perms[jj]))&0xff] % 12
			gi1 := perms[(ii+uint32(offSecondX)+uint32(perms[(jj+uint32(offSecondZ))&0xff]))&0xff] % 12
			gi2 := perms[(ii+1+uint32(perms[(jj+1)&0xff]))&0xff] % 12

			var n0, n1, n2 float64
			if t0 := 0.5 - x0*x0 - y0*y0; t0 >= 0.0 {
				t0 *= t0
				n0 = t0 * t0 * (float64(grad2[gi0][0])*x0 + float64(grad2[gi0][1])*y0)
			}
			if t1 := 0.5 - x1*x1 - y1*y1; t1 >= 0.0 {
				t1 *= t1
				n1 = t1 * t1 * (float64(grad2[gi1][0])*x1 + float64(grad2[gi1][1])*y1)
			}
			if t2 := 0.5 - x2*x2 - y2*y2; t2 >= 0.0 {
				t2 *= t2
				n2 = t2 * t2 * (float64(grad2[gi2][0])*x2 + float64(grad2[gi2][1])*y2)
			}

			buf[k] += 70.0 * (n0 + n1 + n2) * octaveFactor
			k++
		}
	}
}

// GetFixedNoise is the simplex octave driver: offsets are scaled down by
// 1.5 before the loop starts (a fixed correction the original applies once,
// outside the per-octave loop), each octave's frequency is the offsets times
// ampFactor^octave, and its amplitude is 0.55/diminution, where diminution
// halves every octave (so the amplitude doubles).
func GetFixedNoise(buf []float64, chunkX, chunkZ float64, sizeX, sizeZ int, offsetX, offsetZ, ampFactor float64, tables []PermutationTable) {
	offsetX /= 1.5
	offsetZ /= 1.5
	for i := range buf {
		buf[i] = 0
	}
	diminution := 1.0
	amplification := 1.0
	for _, table := range tables {
		SimplexNoise(buf, chunkX, chunkZ, sizeX, sizeZ, offsetX*amplification, offsetZ*amplification, 0.55/diminution, table)
		amplification *= ampFactor
		diminution *= 0.5
	}
}
