package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/katalvlaran/dungen/dungeon"
	"github.com/katalvlaran/dungen/grid"
	"github.com/katalvlaran/dungen/render"
	"github.com/katalvlaran/dungen/spantree"
	"github.com/katalvlaran/dungen/store"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minExtent     = 12
)

// termSize returns the terminal dimensions, falling back to 80x24 when
// stdout is not a terminal.
func termSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return defaultWidth, defaultHeight
	}

	return width, height
}

// fitExtents fills unset horizontal extents from the terminal, keeping a
// few rows free for the legend and diagnostics below the map.
func fitExtents(width, depth, levels int) grid.Vec {
	tw, th := termSize()
	if width <= 0 {
		width = tw
	}
	if depth <= 0 {
		depth = th - 8
	}
	if width < minExtent {
		width = minExtent
	}
	if depth < minExtent {
		depth = minExtent
	}
	if levels < 1 {
		levels = 1
	}

	return grid.Vec{X: width, Y: levels, Z: depth}
}

// useColors reports whether ANSI styling should be emitted.
func useColors(plain bool) bool {
	return !plain && term.IsTerminal(int(os.Stdout.Fd()))
}

// candidateFunc resolves the -graph flag.
func candidateFunc(name string) (spantree.CandidateFunc, error) {
	switch name {
	case "complete":
		return spantree.CompleteGraph, nil
	case "gabriel":
		return spantree.GabrielGraph, nil
	default:
		return nil, fmt.Errorf("unknown candidate graph %q (want complete or gabriel)", name)
	}
}

// openStore picks the Postgres backend when a DSN is given, the directory
// backend otherwise.
func openStore(dsn, dir string) (store.Store, error) {
	if dsn != "" {
		return store.NewPostgresStore(dsn)
	}

	return store.NewFSStore(dir), nil
}

// generate runs one synthesis with diagnostics wired to the log.
func generate(seed int64, extents grid.Vec, roomCount int, extra float64, candidates spantree.CandidateFunc) (*dungeon.Dungeon, error) {
	return dungeon.Generate(
		dungeon.WithExtents(extents),
		dungeon.WithSeed(seed),
		dungeon.WithRoomCount(roomCount),
		dungeon.WithCandidateGraph(candidates),
		dungeon.WithExtraEdgeProbability(extra),
		dungeon.WithRoomShortfallHook(func(placed, requested int) {
			log.Printf("placed %d of %d rooms", placed, requested)
		}),
		dungeon.WithRepairHook(func(e spantree.Edge) {
			log.Printf("repaired disconnected candidates: %s", e)
		}),
		dungeon.WithPathNotFoundHook(func(e spantree.Edge) {
			log.Printf("no corridor found for %s", e)
		}),
	)
}

func main() {
	width := flag.Int("width", 0, "domain width in cells (0 = fit terminal)")
	depth := flag.Int("depth", 0, "domain depth in cells (0 = fit terminal)")
	levels := flag.Int("levels", 1, "vertical levels")
	roomCount := flag.Int("rooms", 8, "target room count")
	seed := flag.Int64("seed", 0, "generation seed (0 = derive from clock)")
	count := flag.Int("count", 1, "dungeons to generate; seeds derive from -seed")
	extra := flag.Float64("extra", spantree.DefaultExtraEdgeProbability, "cycle re-injection probability")
	graph := flag.String("graph", "complete", "candidate graph: complete or gabriel")
	plain := flag.Bool("plain", false, "disable ANSI colors")
	noLegend := flag.Bool("no-legend", false, "omit the glyph legend")
	save := flag.String("save", "", "store each artifact under this name")
	load := flag.String("load", "", "render a stored artifact instead of generating")
	list := flag.Bool("list", false, "list stored artifacts and exit")
	dir := flag.String("dir", "dungeons", "artifact directory for -save/-load/-list")
	dsn := flag.String("pg", "", "Postgres DSN replacing the directory store")
	flag.Parse()

	r := render.New(
		render.WithColors(useColors(*plain)),
		render.WithLegend(!*noLegend),
	)

	if *list {
		st, err := openStore(*dsn, *dir)
		if err != nil {
			log.Fatalf("opening store: %v", err)
		}
		defer st.Close()

		names, err := st.List()
		if err != nil {
			log.Fatalf("listing artifacts: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}

		return
	}

	if *load != "" {
		st, err := openStore(*dsn, *dir)
		if err != nil {
			log.Fatalf("opening store: %v", err)
		}
		defer st.Close()

		d, err := st.Load(*load)
		if err != nil {
			log.Fatalf("loading %s: %v", *load, err)
		}
		out, err := r.Render(d)
		if err != nil {
			log.Fatalf("rendering %s: %v", *load, err)
		}
		fmt.Print(out)

		return
	}

	candidates, err := candidateFunc(*graph)
	if err != nil {
		log.Fatalf("%v", err)
	}
	extents := fitExtents(*width, *depth, *levels)

	master := *seed
	if master == 0 {
		master = time.Now().UnixNano()
	}

	var st store.Store
	if *save != "" {
		if st, err = openStore(*dsn, *dir); err != nil {
			log.Fatalf("opening store: %v", err)
		}
		defer st.Close()
	}

	for i := 0; i < *count; i++ {
		runSeed := master
		if *count > 1 {
			runSeed = dungeon.DeriveSeed(master, uint64(i))
		}

		d, err := generate(runSeed, extents, *roomCount, *extra, candidates)
		if err != nil {
			log.Fatalf("generating with seed %d: %v", runSeed, err)
		}

		out, err := r.Render(d)
		if err != nil {
			log.Fatalf("rendering: %v", err)
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(out)

		log.Printf("seed %d: %d rooms, %d corridors, %d stair cells",
			d.Seed, len(d.Rooms), len(d.Corridors), d.Grid.Count(grid.Stair))
		for _, e := range d.Diagnostics.Unreached {
			log.Printf("unreached connection: %s", e)
		}

		if st != nil {
			name := *save
			if *count > 1 {
				name = fmt.Sprintf("%s-%d", *save, i)
			}
			if err = st.Save(name, d); err != nil {
				log.Fatalf("saving %s: %v", name, err)
			}
			log.Printf("saved %s", name)
		}
	}
}
