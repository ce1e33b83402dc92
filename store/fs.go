package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/dungen/dungeon"
)

// FSStore persists each dungeon as a pretty-printed JSON file named
// <name>.json inside one directory.
type FSStore struct {
	dir string
}

// NewFSStore returns a store rooted at dir. The directory is created on
// the first Save, so pointing at a fresh path is fine.
func NewFSStore(dir string) *FSStore {
	return &FSStore{dir: dir}
}

// path maps a dungeon name to its file.
func (s *FSStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Save writes d under name, overwriting any previous file.
func (s *FSStore) Save(name string, d *dungeon.Dungeon) error {
	if err := validName(name); err != nil {
		return err
	}
	if d == nil {
		return ErrNilDungeon
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("store: preparing %s: %w", s.dir, err)
	}
	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("store: creating %s: %w", s.path(name), err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	return enc.Encode(d)
}

// Load reads the artifact saved under name.
func (s *FSStore) Load(name string) (*dungeon.Dungeon, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}

		return nil, fmt.Errorf("store: reading %s: %w", s.path(name), err)
	}
	var d dungeon.Dungeon
	if err = json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("store: decoding %s: %w", s.path(name), err)
	}

	return &d, nil
}

// List returns the saved names in lexicographic order. A store that never
// saved anything lists empty.
func (s *FSStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("store: listing %s: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)

	return names, nil
}

// Close is a no-op for the filesystem backend.
func (s *FSStore) Close() error { return nil }
