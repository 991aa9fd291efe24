// Package store persists lattices in an embedded BadgerDB.
//
// Every stored lattice gets a random UUID. Its Record is kept as YAML under
// "record/<id>", a small metadata document under "meta/<id>", and the name
// it was saved under points at the latest id in "name/<name>".
package store

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polylattice/lattice"
)

var (
	// ErrNotFound is returned for an unknown id or name.
	ErrNotFound = errors.New("store: lattice not found")

	// ErrNoPath is returned when a persistent store has no directory.
	ErrNoPath = errors.New("store: path is required for a persistent store")
)

const (
	prefixMeta   = "meta/"
	prefixRecord = "record/"
	prefixName   = "name/"
)

// Config configures Open.
type Config struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in memory; nothing survives Close.
	InMemory bool

	// SyncWrites makes every write durable before it returns.
	SyncWrites bool

	// Logger receives BadgerDB's own log lines. Nil silences them.
	Logger log15.Logger
}

// DefaultConfig returns the configuration of a durable on-disk store.
func DefaultConfig() Config {
	return Config{SyncWrites: true}
}

// InMemoryConfig returns the configuration of a throwaway store, for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts log15 to badger.Logger.
type badgerLogger struct {
	logger log15.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Meta describes a stored lattice.
type Meta struct {
	ID      uuid.UUID `yaml:"-"`
	Name    string    `yaml:"name"`
	Nodes   int       `yaml:"nodes"`
	Edges   int       `yaml:"edges"`
	Rank    int       `yaml:"rank"`
	Created time.Time `yaml:"created"`
}

// Store is a lattice store. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the store described by cfg.
//
// Errors: ErrNoPath, directory creation and BadgerDB open failures.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, ErrNoPath
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Put saves l under name and returns its new id. A later Put with the same
// name redirects the name; the earlier lattice stays reachable by id.
func Put[D lattice.Decorated[D]](s *Store, name string, l *lattice.Lattice[D]) (uuid.UUID, error) {
	rec, err := lattice.EncodeYAML(l)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: encode record: %w", err)
	}
	id := uuid.New()
	meta, err := yaml.Marshal(Meta{
		Name:    name,
		Nodes:   l.Nodes(),
		Edges:   l.EdgeCount(),
		Rank:    l.Rank(),
		Created: time.Now().UTC(),
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: encode meta: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		key := id.String()
		if err := txn.Set([]byte(prefixRecord+key), rec); err != nil {
			return err
		}
		if err := txn.Set([]byte(prefixMeta+key), meta); err != nil {
			return err
		}
		return txn.Set([]byte(prefixName+name), []byte(key))
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: put %q: %w", name, err)
	}

	return id, nil
}

// Get loads the lattice stored under id.
//
// Errors: ErrNotFound, decoding and validation errors of lattice.DecodeYAML.
func Get[D lattice.Decorated[D]](s *Store, id uuid.UUID) (*lattice.Lattice[D], error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixRecord + id.String()))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}

	return lattice.DecodeYAML[D](raw)
}

// Resolve returns the id the name currently points at.
func (s *Store) Resolve(name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixName + name))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			var perr error
			id, perr = uuid.ParseBytes(v)
			return perr
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return uuid.Nil, fmt.Errorf("%w: name %q", ErrNotFound, name)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: resolve %q: %w", name, err)
	}

	return id, nil
}

// GetByName loads the latest lattice saved under name.
func GetByName[D lattice.Decorated[D]](s *Store, name string) (*lattice.Lattice[D], error) {
	id, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}

	return Get[D](s, id)
}

// List returns the metadata of every stored lattice, oldest first.
func (s *Store) List() ([]Meta, error) {
	var out []Meta
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(prefixMeta)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id, err := uuid.ParseBytes(item.Key()[len(prefix):])
			if err != nil {
				return fmt.Errorf("key %q: %w", item.Key(), err)
			}
			m := Meta{ID: id}
			if err = item.Value(func(v []byte) error { return yaml.Unmarshal(v, &m) }); err != nil {
				return fmt.Errorf("meta %s: %w", id, err)
			}
			m.ID = id
			out = append(out, m)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })

	return out, nil
}

// Delete removes the lattice stored under id. A name pointing at it is
// removed as well.
//
// Errors: ErrNotFound.
func (s *Store) Delete(id uuid.UUID) error {
	key := id.String()
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixMeta + key))
		if err != nil {
			return err
		}
		var m Meta
		if err = item.Value(func(v []byte) error { return yaml.Unmarshal(v, &m) }); err != nil {
			return err
		}
		if cur, err := txn.Get([]byte(prefixName + m.Name)); err == nil {
			target, _ := cur.ValueCopy(nil)
			if string(target) == key {
				if err = txn.Delete([]byte(prefixName + m.Name)); err != nil {
					return err
				}
			}
		}
		if err = txn.Delete([]byte(prefixMeta + key)); err != nil {
			return err
		}
		return txn.Delete([]byte(prefixRecord + key))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}

	return nil
}
