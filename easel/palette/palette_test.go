package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedColors(t *testing.T) {
	tests := []struct {
		name    string
		id      uint8
		r, g, b uint8
	}{
		{"black", Black, 0, 0, 0},
		{"red", Red, 255, 0, 0},
		{"green", Green, 0, 255, 0},
		{"blue", Blue, 0, 0, 255},
		{"white", White, 255, 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := RGB(tt.id)
			assert.Equal(t, []uint8{tt.r, tt.g, tt.b}, []uint8{r, g, b})
			assert.Equal(t, tt.id, GetColorID(tt.r, tt.g, tt.b))
		})
	}
}

func TestGetColorIDRoundTrip(t *testing.T) {
	// every palette entry maps back to an entry with exactly the same color
	for id := 0; id < Size; id++ {
		r, g, b := RGB(uint8(id))
		found := GetColorID(r, g, b)

		fr, fg, fb := RGB(found)
		assert.Equal(t, []uint8{r, g, b}, []uint8{fr, fg, fb}, "entry %d", id)
		assert.LessOrEqual(t, int(found), id, "lowest index wins ties")
	}
}

func TestGetColorIDDeterministic(t *testing.T) {
	first := GetColorID(120, 33, 200)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, GetColorID(120, 33, 200))
	}
}

func TestDefault(t *testing.T) {
	pal := Default()
	require.Len(t, pal, Size*3)

	pal[0] = 99
	assert.Equal(t, uint8(0), Default()[0], "Default returns a copy")
}

func TestMix(t *testing.T) {
	assert.Equal(t, Red, Mix(Red, Black, 255))
	assert.Equal(t, Black, Mix(Red, Black, 0))

	r, g, b := RGB(Mix(White, Black, 128))
	assert.InDelta(t, 128, int(r), 16)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestTransformTables(t *testing.T) {
	t.Run("opaque and skip are identity", func(t *testing.T) {
		for v := 0; v < Size; v++ {
			assert.Equal(t, uint8(v), ApplyTransform(0, uint8(v)))
			assert.Equal(t, uint8(v), ApplyTransform(1, uint8(v)))
		}
	})

	t.Run("shadow levels darken white in order", func(t *testing.T) {
		prev := -1
		for code := uint8(2); code <= 5; code++ {
			r, _, _ := RGB(ApplyTransform(code, White))
			assert.Less(t, int(r), 255, "code %d must darken", code)
			assert.Greater(t, int(r), prev, "code %d must be lighter than the previous level", code)
			prev = int(r)
		}
	})

	t.Run("black stays black under shadow", func(t *testing.T) {
		assert.Equal(t, Black, ApplyTransform(2, Black))
	})

	t.Run("mirror inverts", func(t *testing.T) {
		assert.Equal(t, White, ApplyTransform(12, Black))
	})
}

func TestTable(t *testing.T) {
	standard := Table(Standard)
	for i, v := range standard {
		assert.Equal(t, uint8(i), v)
	}

	grayTable := Table(Gray)
	r, g, b := RGB(grayTable[Red])
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)

	unknown := Table(Type(200))
	assert.Equal(t, standard, unknown)

	standard[5] = 0
	assert.Equal(t, uint8(5), Table(Standard)[5], "Table returns a copy")
}
