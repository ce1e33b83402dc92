package render

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/dungen/dungeon"
	"github.com/katalvlaran/dungen/grid"
)

// Renderer formats dungeon artifacts as text. It is stateless apart from
// its options and safe to share.
type Renderer struct {
	opts Options
}

// New builds a Renderer.
func New(opts ...Option) *Renderer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{opts: o}
}

// Render formats every level of the dungeon, bottom level first, with a
// level header whenever the domain has more than one, and the legend when
// enabled.
func (r *Renderer) Render(d *dungeon.Dungeon) (string, error) {
	if d == nil || d.Grid == nil {
		return "", ErrNilDungeon
	}
	size := d.Grid.Size()

	var b strings.Builder
	for y := 0; y < size.Y; y++ {
		if size.Y > 1 {
			if y > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(r.styled(styleHeader, fmt.Sprintf("level %d", y)))
			b.WriteByte('\n')
		}
		block, err := r.Level(d, y)
		if err != nil {
			return "", err
		}
		b.WriteString(block)
	}
	if r.opts.Legend {
		b.WriteString(r.legend())
	}

	return b.String(), nil
}

// Level formats the single level y: one row per Z coordinate, one glyph
// per X coordinate, each row ending in a newline.
func (r *Renderer) Level(d *dungeon.Dungeon, y int) (string, error) {
	if d == nil || d.Grid == nil {
		return "", ErrNilDungeon
	}
	size := d.Grid.Size()
	if y < 0 || y >= size.Y {
		return "", fmt.Errorf("%w: level %d of %d", ErrLevelRange, y, size.Y)
	}
	doors := entranceCells(d)

	var b strings.Builder
	for z := 0; z < size.Z; z++ {
		for x := 0; x < size.X; x++ {
			cell := grid.Vec{X: x, Y: y, Z: z}
			if doors[cell] {
				b.WriteString(r.styled(styleEntrance, GlyphEntrance))
				continue
			}
			glyph, style := r.appearance(d.Grid.Get(cell))
			b.WriteString(r.styled(style, glyph))
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// appearance maps a cell state to its glyph and style.
func (r *Renderer) appearance(s grid.CellState) (string, color.Style) {
	switch s {
	case grid.Room:
		return GlyphRoom, styleRoom
	case grid.Corridor:
		return GlyphCorridor, styleCorridor
	case grid.Stair:
		return GlyphStair, styleStair
	default:
		return GlyphEmpty, styleEmpty
	}
}

// styled applies st to text when colors are on.
func (r *Renderer) styled(st color.Style, text string) string {
	if !r.opts.Colors {
		return text
	}

	return st.Sprint(text)
}

// legend names every glyph on one line.
func (r *Renderer) legend() string {
	parts := []struct {
		glyph string
		style color.Style
		name  string
	}{
		{GlyphRoom, styleRoom, "room"},
		{GlyphCorridor, styleCorridor, "corridor"},
		{GlyphStair, styleStair, "stair"},
		{GlyphEntrance, styleEntrance, "entrance"},
		{GlyphEmpty, styleEmpty, "rock"},
	}
	var b strings.Builder
	b.WriteByte('\n')
	for i, p := range parts {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(r.styled(p.style, p.glyph))
		b.WriteByte(' ')
		b.WriteString(p.name)
	}
	b.WriteByte('\n')

	return b.String()
}

// entranceCells collects the distinct cells that carry at least one
// confirmed entrance. A corner cell with two doorways overlays once.
func entranceCells(d *dungeon.Dungeon) map[grid.Vec]bool {
	doors := make(map[grid.Vec]bool)
	for _, rm := range d.Rooms {
		for _, en := range rm.Entrances {
			doors[en.Cell] = true
		}
	}

	return doors
}
