// Package palette holds the fixed 256 color game palette and the lookup
// tables derived from it: nearest color search, recoloring tables and the
// per transform code effect tables used while compositing.
package palette

// Size is the number of entries in an indexed palette.
const Size = 256

// Named entries at the start of the palette.
const (
	Black uint8 = iota
	Red
	Green
	Blue
	Yellow
	Magenta
	Cyan
	White
)

const (
	grayRampStart = 8
	cubeStart     = 16
	cubeLevels    = 6
	fineGrayStart = cubeStart + cubeLevels*cubeLevels*cubeLevels
)

// base holds the palette in 6 bit per channel units, like VGA DAC registers.
var base = buildBase()

func buildBase() [Size * 3]uint8 {
	var pal [Size * 3]uint8

	primaries := [8][3]uint8{
		{0, 0, 0}, {63, 0, 0}, {0, 63, 0}, {0, 0, 63},
		{63, 63, 0}, {63, 0, 63}, {0, 63, 63}, {63, 63, 63},
	}
	for i, c := range primaries {
		copy(pal[i*3:], c[:])
	}

	for k := 0; k < 8; k++ {
		v := uint8(7 * (k + 1))
		i := (grayRampStart + k) * 3
		pal[i], pal[i+1], pal[i+2] = v, v, v
	}

	levels := [cubeLevels]uint8{0, 13, 25, 38, 50, 63}
	for r := 0; r < cubeLevels; r++ {
		for g := 0; g < cubeLevels; g++ {
			for b := 0; b < cubeLevels; b++ {
				i := (cubeStart + r*36 + g*6 + b) * 3
				pal[i], pal[i+1], pal[i+2] = levels[r], levels[g], levels[b]
			}
		}
	}

	for k := 0; k < Size-fineGrayStart; k++ {
		v := uint8((k + 1) * 63 / 25)
		i := (fineGrayStart + k) * 3
		pal[i], pal[i+1], pal[i+2] = v, v, v
	}

	return pal
}

func expand(v uint8) uint8 {
	return v<<2 | v>>4
}

// RGB returns the 8 bit per channel color of a palette entry.
func RGB(id uint8) (r, g, b uint8) {
	i := int(id) * 3
	return expand(base[i]), expand(base[i+1]), expand(base[i+2])
}

// Default returns a copy of the palette as 8 bit RGB triplets, the format
// render engines expect.
func Default() []uint8 {
	out := make([]uint8, Size*3)
	for i := 0; i < Size*3; i++ {
		out[i] = expand(base[i])
	}
	return out
}

// nearest memoizes GetColorID results on 6 bit channels; 0 means not computed
// yet, otherwise the entry is the color id + 1.
var nearest [64 * 64 * 64]uint16

// GetColorID returns the palette entry closest to the given 8 bit color.
// Distance is squared euclidean on 6 bit channels; the lowest index wins ties.
func GetColorID(r, g, b uint8) uint8 {
	r6, g6, b6 := int(r>>2), int(g>>2), int(b>>2)
	key := r6<<12 | g6<<6 | b6

	if cached := nearest[key]; cached != 0 {
		return uint8(cached - 1)
	}

	best := 0
	bestDistance := 1 << 30
	for id := 0; id < Size; id++ {
		dr := r6 - int(base[id*3])
		dg := g6 - int(base[id*3+1])
		db := b6 - int(base[id*3+2])
		distance := dr*dr + dg*dg + db*db
		if distance < bestDistance {
			best = id
			bestDistance = distance
			if distance == 0 {
				break
			}
		}
	}

	nearest[key] = uint16(best + 1)
	return uint8(best)
}

// Mix blends two palette entries: alpha 255 gives src, 0 gives dst.
func Mix(src, dst, alpha uint8) uint8 {
	if alpha == 255 {
		return src
	}
	if alpha == 0 {
		return dst
	}

	behind := 255 - uint32(alpha)
	sr, sg, sb := RGB(src)
	dr, dg, db := RGB(dst)

	r := (uint32(sr)*uint32(alpha) + uint32(dr)*behind) / 255
	g := (uint32(sg)*uint32(alpha) + uint32(dg)*behind) / 255
	b := (uint32(sb)*uint32(alpha) + uint32(db)*behind) / 255

	return GetColorID(uint8(r), uint8(g), uint8(b))
}
