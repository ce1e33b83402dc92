package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dungen/dungeon"
)

// Sentinel errors for persistence.
var (
	// ErrBadName indicates an empty name or one that would escape the
	// backend namespace.
	ErrBadName = errors.New("store: name must be non-empty and free of path separators")
	// ErrNilDungeon indicates a Save call without an artifact.
	ErrNilDungeon = errors.New("store: dungeon must not be nil")
	// ErrNotFound indicates a Load of a name that was never saved.
	ErrNotFound = errors.New("store: dungeon not found")
)

// Store persists dungeon artifacts under stable names.
type Store interface {
	// Save writes d under name, overwriting any previous artifact.
	Save(name string, d *dungeon.Dungeon) error
	// Load returns the artifact saved under name, or ErrNotFound.
	Load(name string) (*dungeon.Dungeon, error)
	// List returns every saved name in lexicographic order.
	List() ([]string, error)
	// Close releases backend resources. The store is unusable afterwards.
	Close() error
}

// validName rejects names that are empty or could traverse outside the
// backend namespace.
func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}

	return nil
}
