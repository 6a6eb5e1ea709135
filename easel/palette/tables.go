package palette

import "sync"

// Type selects one of the built-in recoloring tables.
type Type uint8

const (
	Standard   Type = iota // identity
	Gray                   // desaturated
	Sepia                  // brown interface recoloring
	RedTint                // everything pushed toward red
	Darkening              // same darkening as the mid shadow level
	Lightening             // brighter copy
	Mirror                 // inverted brightness
)

// transformCount covers all 4 bit transform codes; codes above
// raster.MaxTransformValue map to identity.
const transformCount = 16

var (
	tablesOnce      sync.Once
	transformTables [transformCount][Size]uint8
	typeTables      map[Type]*[Size]uint8
)

func scale(v uint8, factor uint32) uint8 {
	return uint8(uint32(v) * factor / 256)
}

func toward(v, target uint8, weight uint32) uint8 {
	return uint8((uint32(v)*(256-weight) + uint32(target)*weight) / 256)
}

func luminance(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}

func buildTable(fn func(r, g, b uint8) (uint8, uint8, uint8)) [Size]uint8 {
	var table [Size]uint8
	for id := 0; id < Size; id++ {
		r, g, b := RGB(uint8(id))
		table[id] = GetColorID(fn(r, g, b))
	}
	return table
}

func identity() [Size]uint8 {
	var table [Size]uint8
	for i := range table {
		table[i] = uint8(i)
	}
	return table
}

func darken(factor uint32) func(r, g, b uint8) (uint8, uint8, uint8) {
	return func(r, g, b uint8) (uint8, uint8, uint8) {
		return scale(r, factor), scale(g, factor), scale(b, factor)
	}
}

func lighten(weight uint32) func(r, g, b uint8) (uint8, uint8, uint8) {
	return func(r, g, b uint8) (uint8, uint8, uint8) {
		return toward(r, 255, weight), toward(g, 255, weight), toward(b, 255, weight)
	}
}

func tint(tr, tg, tb uint8) func(r, g, b uint8) (uint8, uint8, uint8) {
	return func(r, g, b uint8) (uint8, uint8, uint8) {
		return toward(r, tr, 128), toward(g, tg, 128), toward(b, tb, 128)
	}
}

func gray(r, g, b uint8) (uint8, uint8, uint8) {
	l := luminance(r, g, b)
	return l, l, l
}

func invert(r, g, b uint8) (uint8, uint8, uint8) {
	return 255 - r, 255 - g, 255 - b
}

func sepia(r, g, b uint8) (uint8, uint8, uint8) {
	l := uint32(luminance(r, g, b))
	return uint8(min(255, l*240/200)), uint8(l * 180 / 200), uint8(l * 120 / 200)
}

func buildTables() {
	transformTables[0] = identity()
	transformTables[1] = identity()

	// shadow levels: 2 is the darkest
	transformTables[2] = buildTable(darken(96))
	transformTables[3] = buildTable(darken(128))
	transformTables[4] = buildTable(darken(160))
	transformTables[5] = buildTable(darken(192))

	transformTables[6] = buildTable(lighten(64))
	transformTables[7] = buildTable(lighten(128))
	transformTables[8] = buildTable(tint(255, 0, 0))
	transformTables[9] = buildTable(tint(0, 255, 0))
	transformTables[10] = buildTable(tint(0, 0, 255))
	transformTables[11] = buildTable(tint(255, 255, 0))
	transformTables[12] = buildTable(invert)
	transformTables[13] = buildTable(gray)

	for code := 14; code < transformCount; code++ {
		transformTables[code] = identity()
	}

	standard := identity()
	grayTable := buildTable(gray)
	sepiaTable := buildTable(sepia)
	redTable := transformTables[8]
	darkTable := transformTables[3]
	lightTable := transformTables[6]
	mirrorTable := transformTables[12]

	typeTables = map[Type]*[Size]uint8{
		Standard:   &standard,
		Gray:       &grayTable,
		Sepia:      &sepiaTable,
		RedTint:    &redTable,
		Darkening:  &darkTable,
		Lightening: &lightTable,
		Mirror:     &mirrorTable,
	}
}

// TransformTable returns the recolor table applied to a destination pixel
// when a source pixel carries the given transform code. The returned table
// must not be modified.
func TransformTable(code uint8) *[Size]uint8 {
	tablesOnce.Do(buildTables)
	return &transformTables[code&(transformCount-1)]
}

// ApplyTransform returns the destination color after applying a transform code.
func ApplyTransform(code, value uint8) uint8 {
	return TransformTable(code)[value]
}

// Table returns a copy of a built-in recoloring table. Unknown types yield
// the identity table.
func Table(t Type) []uint8 {
	tablesOnce.Do(buildTables)

	out := make([]uint8, Size)
	if table, ok := typeTables[t]; ok {
		copy(out, table[:])
	} else {
		standard := identity()
		copy(out, standard[:])
	}
	return out
}
