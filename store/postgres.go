package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/katalvlaran/dungen/dungeon"
)

// PostgresStore persists dungeons in a single table, one JSONB row per
// name. Saving an existing name upserts the row.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens connString, verifies the connection and ensures
// the schema exists.
func NewPostgresStore(connString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()

		return nil, fmt.Errorf("store: pinging database: %w", err)
	}
	s := &PostgresStore{db: db}
	if err = s.initSchema(); err != nil {
		db.Close()

		return nil, fmt.Errorf("store: initializing schema: %w", err)
	}

	return s, nil
}

// initSchema creates the dungeons table when it does not exist yet.
func (s *PostgresStore) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS dungeons (
		name       TEXT PRIMARY KEY,
		seed       BIGINT NOT NULL,
		size_x     INTEGER NOT NULL,
		size_y     INTEGER NOT NULL,
		size_z     INTEGER NOT NULL,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`
	_, err := s.db.Exec(schema)

	return err
}

// Save upserts d under name.
func (s *PostgresStore) Save(name string, d *dungeon.Dungeon) error {
	if err := validName(name); err != nil {
		return err
	}
	if d == nil {
		return ErrNilDungeon
	}
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("store: encoding %s: %w", name, err)
	}
	size := d.Grid.Size()
	const query = `
	INSERT INTO dungeons (name, seed, size_x, size_y, size_z, payload)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (name) DO UPDATE
	SET seed = $2, size_x = $3, size_y = $4, size_z = $5,
	    payload = $6, updated_at = NOW()`
	if _, err = s.db.Exec(query, name, d.Seed, size.X, size.Y, size.Z, payload); err != nil {
		return fmt.Errorf("store: saving %s: %w", name, err)
	}

	return nil
}

// Load reads the artifact saved under name.
func (s *PostgresStore) Load(name string) (*dungeon.Dungeon, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM dungeons WHERE name = $1`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: loading %s: %w", name, err)
	}
	var d dungeon.Dungeon
	if err = json.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("store: decoding %s: %w", name, err)
	}

	return &d, nil
}

// List returns the saved names in lexicographic order.
func (s *PostgresStore) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM dungeons ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: listing: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: listing: %w", err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: listing: %w", err)
	}

	return names, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error { return s.db.Close() }
