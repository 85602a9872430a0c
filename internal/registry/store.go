// Package registry stores the companion declarations of compiled traits
// so later compilations can resolve them by qualified trait name. The
// build toolchain writes a row per trait when it compiles one; the
// composer reads through the CompanionLookup contract, where absence is
// an ok=false result and never an error.
package registry

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/weftlang/weft/internal/ast"
	"github.com/weftlang/weft/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// Store is a sqlite-backed companion registry.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open opens (creating if needed) a registry database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenMemory opens a throwaway in-memory registry, used by tests and by
// single-shot driver runs without an artifact directory.
func OpenMemory() (*Store, error) {
	return Open(":memory:")
}

func (s *Store) init() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read registry version: %w", err)
	}
	if version != 0 && version != config.RegistrySchemaVersion {
		return fmt.Errorf("registry schema version %d, want %d", version, config.RegistrySchemaVersion)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("init registry schema: %w", err)
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", config.RegistrySchemaVersion)); err != nil {
		return fmt.Errorf("write registry version: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Put records a compiled trait's companions, replacing any previous row
// for the same trait. fieldHelper may be nil for stateless traits.
func (s *Store) Put(traitName string, helper, fieldHelper *ast.ClassDecl) error {
	if helper == nil {
		return errors.New("registry: helper declaration is required")
	}
	helperBlob, err := ast.EncodeClass(helper)
	if err != nil {
		return fmt.Errorf("encode helper for %s: %w", traitName, err)
	}
	var fieldBlob []byte
	if fieldHelper != nil {
		fieldBlob, err = ast.EncodeClass(fieldHelper)
		if err != nil {
			return fmt.Errorf("encode field helper for %s: %w", traitName, err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(`
		INSERT INTO companions (id, trait, helper, field_helper, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(trait) DO UPDATE SET
			helper = excluded.helper,
			field_helper = excluded.field_helper,
			created_at = excluded.created_at`,
		uuid.NewString(), traitName, helperBlob, fieldBlob, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("store companions for %s: %w", traitName, err)
	}
	return nil
}

// LookupCompanions implements the composition lookup contract. A trait
// with no row yields ok=false with a nil error.
func (s *Store) LookupCompanions(traitName string) (helper, fieldHelper *ast.ClassDecl, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var helperBlob, fieldBlob []byte
	row := s.db.QueryRow("SELECT helper, field_helper FROM companions WHERE trait = ?", traitName)
	if err := row.Scan(&helperBlob, &fieldBlob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, false, nil
		}
		return nil, nil, false, fmt.Errorf("lookup companions for %s: %w", traitName, err)
	}
	helper, err = ast.DecodeClass(helperBlob)
	if err != nil {
		return nil, nil, false, fmt.Errorf("decode helper for %s: %w", traitName, err)
	}
	if len(fieldBlob) > 0 {
		fieldHelper, err = ast.DecodeClass(fieldBlob)
		if err != nil {
			return nil, nil, false, fmt.Errorf("decode field helper for %s: %w", traitName, err)
		}
	}
	return helper, fieldHelper, true, nil
}

// Traits returns the qualified names of all registered traits.
func (s *Store) Traits() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.Query("SELECT trait FROM companions ORDER BY trait")
	if err != nil {
		return nil, fmt.Errorf("list traits: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
