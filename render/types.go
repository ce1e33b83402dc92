package render

import (
	"errors"

	"github.com/gookit/color"
)

// Sentinel errors for rendering.
var (
	// ErrNilDungeon indicates a nil artifact or one without a grid.
	ErrNilDungeon = errors.New("render: dungeon must not be nil")
	// ErrLevelRange indicates a level outside the domain's Y extent.
	ErrLevelRange = errors.New("render: level outside the domain")
)

// Cell glyphs. Entrances overlay the room glyph on their own cell.
const (
	GlyphEmpty    = "·"
	GlyphRoom     = "█"
	GlyphCorridor = "░"
	GlyphStair    = "≡"
	GlyphEntrance = "+"
)

// Per-state color styles, applied only while colors are enabled.
var (
	styleEmpty    = color.Style{color.FgGray}
	styleRoom     = color.Style{color.FgBlue, color.OpBold}
	styleCorridor = color.Style{color.FgGreen}
	styleStair    = color.Style{color.FgYellow, color.OpBold}
	styleEntrance = color.Style{color.FgCyan, color.OpBold}
	styleHeader   = color.Style{color.FgGray, color.OpBold}
)

// Options holds the rendering switches.
type Options struct {
	// Colors applies the ANSI styles. Off, the output is plain glyph text
	// suitable for logs and golden files.
	Colors bool
	// Legend appends a line naming every glyph.
	Legend bool
}

// DefaultOptions enables colors and the legend.
func DefaultOptions() Options {
	return Options{Colors: true, Legend: true}
}

// Option mutates Options.
type Option func(*Options)

// WithColors toggles ANSI styling.
func WithColors(on bool) Option {
	return func(o *Options) { o.Colors = on }
}

// WithLegend toggles the glyph legend.
func WithLegend(on bool) Option {
	return func(o *Options) { o.Legend = on }
}
