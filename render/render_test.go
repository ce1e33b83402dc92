package render_test

import (
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungen/dungeon"
	"github.com/katalvlaran/dungen/grid"
	"github.com/katalvlaran/dungen/render"
	"github.com/katalvlaran/dungen/rooms"
)

// handMade builds a tiny artifact by hand: two rooms joined by a corridor,
// one doorway on each side, and one loose stair cell for glyph coverage.
func handMade(t *testing.T) *dungeon.Dungeon {
	t.Helper()
	g, err := grid.New(grid.Vec{X: 5, Y: 1, Z: 4})
	require.NoError(t, err)

	left := rooms.Room{
		Origin: grid.Vec{},
		Extent: grid.Vec{X: 2, Y: 1, Z: 2},
		Entrances: []rooms.Entrance{
			{Cell: grid.Vec{X: 1, Z: 1}, Dir: grid.East},
		},
	}
	right := rooms.Room{
		Origin: grid.Vec{X: 4, Z: 1},
		Extent: grid.Vec{X: 1, Y: 1, Z: 2},
		Entrances: []rooms.Entrance{
			{Cell: grid.Vec{X: 4, Z: 1}, Dir: grid.West},
		},
	}
	for _, rm := range []rooms.Room{left, right} {
		max := rm.Max()
		for z := rm.Origin.Z; z < max.Z; z++ {
			for x := rm.Origin.X; x < max.X; x++ {
				g.Set(grid.Vec{X: x, Z: z}, grid.Room)
			}
		}
	}
	g.Set(grid.Vec{X: 2, Z: 1}, grid.Corridor)
	g.Set(grid.Vec{X: 3, Z: 1}, grid.Corridor)
	g.Set(grid.Vec{X: 2, Z: 3}, grid.Stair)

	return &dungeon.Dungeon{Grid: g, Rooms: []rooms.Room{left, right}}
}

func TestRenderer_LevelExact(t *testing.T) {
	r := render.New(render.WithColors(false), render.WithLegend(false))
	out, err := r.Level(handMade(t), 0)
	require.NoError(t, err)

	want := "" +
		"██···\n" +
		"█+░░+\n" +
		"····█\n" +
		"··≡··\n"
	assert.Equal(t, want, out)

	// A single-level dungeon renders without headers: Render == Level.
	full, err := r.Render(handMade(t))
	require.NoError(t, err)
	assert.Equal(t, want, full)
}

func TestRenderer_Errors(t *testing.T) {
	r := render.New(render.WithColors(false))

	_, err := r.Render(nil)
	assert.ErrorIs(t, err, render.ErrNilDungeon)
	_, err = r.Level(&dungeon.Dungeon{}, 0)
	assert.ErrorIs(t, err, render.ErrNilDungeon)

	d := handMade(t)
	_, err = r.Level(d, -1)
	assert.ErrorIs(t, err, render.ErrLevelRange)
	_, err = r.Level(d, 1)
	assert.ErrorIs(t, err, render.ErrLevelRange)
}

func TestRenderer_Legend(t *testing.T) {
	r := render.New(render.WithColors(false), render.WithLegend(true))
	out, err := r.Render(handMade(t))
	require.NoError(t, err)

	for _, name := range []string{"room", "corridor", "stair", "entrance", "rock"} {
		assert.Contains(t, out, name)
	}
}

func TestRenderer_ColorsStripToPlain(t *testing.T) {
	d := handMade(t)
	plain, err := render.New(render.WithColors(false), render.WithLegend(false)).Level(d, 0)
	require.NoError(t, err)
	colored, err := render.New(render.WithColors(true), render.WithLegend(false)).Level(d, 0)
	require.NoError(t, err)

	assert.Equal(t, plain, color.ClearCode(colored))
}

func TestRenderer_GeneratedCensus(t *testing.T) {
	d, err := dungeon.Generate(
		dungeon.WithExtents(grid.Vec{X: 20, Y: 1, Z: 20}),
		dungeon.WithRoomCount(5),
		dungeon.WithRoomSize(grid.Vec{X: 3, Y: 1, Z: 3}, grid.Vec{X: 5, Y: 1, Z: 5}),
		dungeon.WithSeed(42),
	)
	require.NoError(t, err)

	out, err := render.New(render.WithColors(false), render.WithLegend(false)).Render(d)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 20)
	counts := map[rune]int{}
	for _, line := range lines {
		runes := []rune(line)
		assert.Len(t, runes, 20)
		for _, ru := range runes {
			counts[ru]++
		}
	}

	doors := map[grid.Vec]bool{}
	for _, rm := range d.Rooms {
		for _, en := range rm.Entrances {
			doors[en.Cell] = true
		}
	}
	assert.Equal(t, d.Grid.Count(grid.Room)-len(doors), counts[[]rune(render.GlyphRoom)[0]])
	assert.Equal(t, len(doors), counts[[]rune(render.GlyphEntrance)[0]])
	assert.Equal(t, d.Grid.Count(grid.Corridor), counts[[]rune(render.GlyphCorridor)[0]])
	assert.Equal(t, d.Grid.Count(grid.Empty), counts[[]rune(render.GlyphEmpty)[0]])
	assert.Zero(t, counts[[]rune(render.GlyphStair)[0]])
}

func TestRenderer_MultiLevelHeaders(t *testing.T) {
	d, err := dungeon.Generate(
		dungeon.WithExtents(grid.Vec{X: 16, Y: 2, Z: 16}),
		dungeon.WithRoomCount(4),
		dungeon.WithRoomSize(grid.Vec{X: 3, Y: 1, Z: 3}, grid.Vec{X: 4, Y: 1, Z: 4}),
		dungeon.WithSeed(7),
	)
	require.NoError(t, err)

	out, err := render.New(render.WithColors(false), render.WithLegend(false)).Render(d)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "level 0", lines[0])
	assert.Contains(t, lines, "level 1")

	rows := 0
	for _, line := range lines {
		if len([]rune(line)) == 16 {
			rows++
		}
	}
	assert.Equal(t, 32, rows, "two levels of sixteen rows each")
}
