package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"github.com/katalvlaran/dungen/dungeon"
	"github.com/katalvlaran/dungen/grid"
	"github.com/katalvlaran/dungen/render"
	"github.com/katalvlaran/dungen/spantree"
)

// envelope frames every message pushed to stream clients.
type envelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// intent frames every message received from stream clients.
type intent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// requestGenerate asks for a fresh dungeon. A zero seed takes the next
// seed of the run's stream.
type requestGenerate struct {
	Seed int64 `json:"seed"`
}

// server owns the current artifact and regenerates it on request or on a
// timer, pushing each new one to the stream clients.
type server struct {
	extents   grid.Vec
	roomCount int

	hub      *hub
	renderer *render.Renderer
	sequence uint64

	mu      sync.Mutex
	master  int64
	stream  uint64
	current *dungeon.Dungeon
}

// nextSeed derives the next independent seed of this run.
func (s *server) nextSeed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	seed := dungeon.DeriveSeed(s.master, s.stream)
	s.stream++

	return seed
}

// synthesize runs one generation with diagnostics wired to the log.
func (s *server) synthesize(seed int64) (*dungeon.Dungeon, error) {
	return dungeon.Generate(
		dungeon.WithExtents(s.extents),
		dungeon.WithSeed(seed),
		dungeon.WithRoomCount(s.roomCount),
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

// regenerate produces a fresh artifact and pushes it to every client.
func (s *server) regenerate(seed int64) error {
	if seed == 0 {
		seed = s.nextSeed()
	}
	d, err := s.synthesize(seed)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = d
	s.mu.Unlock()

	seq := atomic.AddUint64(&s.sequence, 1)
	b, _ := json.Marshal(envelope{Sequence: seq, Type: "dungeon", Payload: d})
	s.hub.broadcast(b)
	log.Printf("dungeon %d ready: %d rooms, %d corridors, %d clients",
		d.Seed, len(d.Rooms), len(d.Corridors), s.hub.len())

	return nil
}

// snapshot frames the current artifact for a newly connected client.
func (s *server) snapshot() []byte {
	s.mu.Lock()
	d := s.current
	s.mu.Unlock()

	seq := atomic.AddUint64(&s.sequence, 1)
	b, _ := json.Marshal(envelope{Sequence: seq, Type: "dungeon", Payload: d})

	return b
}

// handleDungeon serves the current artifact as JSON.
func (s *server) handleDungeon(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	d := s.current
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(d); err != nil {
		log.Printf("encoding snapshot: %v", err)
	}
}

// handleText serves the current artifact as a plain-text map.
func (s *server) handleText(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	d := s.current
	s.mu.Unlock()

	out, err := s.renderer.Render(d)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, out)
}

// handleStream upgrades to a websocket, sends the current artifact and
// serves generate requests until the client goes away.
func (s *server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}
	s.hub.add(conn)
	_ = conn.Write(context.Background(), websocket.MessageText, s.snapshot())

	go func(c *websocket.Conn) {
		defer s.hub.remove(c)
		defer c.Close(websocket.StatusNormalClosure, "")
		for {
			_, data, err := c.Read(context.Background())
			if err != nil {
				return
			}
			var in intent
			if err := json.Unmarshal(data, &in); err != nil {
				continue
			}
			switch in.Type {
			case "generate":
				var req requestGenerate
				if len(in.Payload) > 0 {
					if err := json.Unmarshal(in.Payload, &req); err != nil {
						continue
					}
				}
				if err := s.regenerate(req.Seed); err != nil {
					log.Printf("regenerating: %v", err)
				}
			default:
			}
		}
	}(conn)
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	width := flag.Int("width", 48, "domain width in cells")
	depth := flag.Int("depth", 32, "domain depth in cells")
	levels := flag.Int("levels", 1, "vertical levels")
	roomCount := flag.Int("rooms", 10, "target room count")
	seed := flag.Int64("seed", 0, "master seed of the run (0 = derive from clock)")
	interval := flag.Duration("interval", 0, "push a fresh dungeon every interval (0 = only on request)")
	flag.Parse()

	master := *seed
	if master == 0 {
		master = time.Now().UnixNano()
	}

	s := &server{
		extents:   grid.Vec{X: *width, Y: *levels, Z: *depth},
		roomCount: *roomCount,
		hub:       newHub(),
		renderer:  render.New(render.WithColors(false)),
		master:    master,
	}
	log.Printf("master seed %d", master)
	if err := s.regenerate(0); err != nil {
		log.Fatalf("initial generation: %v", err)
	}

	if *interval > 0 {
		go func() {
			ticker := time.NewTicker(*interval)
			for range ticker.C {
				if err := s.regenerate(0); err != nil {
					log.Printf("regenerating: %v", err)
				}
			}
		}()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/dungeon", s.handleDungeon)
	mux.HandleFunc("/dungeon.txt", s.handleText)
	mux.HandleFunc("/stream", s.handleStream)

	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
