package badger

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/forkful/forkful/storage"
)

// Backend wraps a BadgerDB instance and provides low-level operations.
// It also tracks the published corpus generation, shared by the recipe and
// index repositories so both always read the same snapshot.
type Backend struct {
	db     *badger.DB
	logger *slog.Logger

	// cached published generation; 0 means "not resolved yet or no corpus"
	gen atomic.Uint64
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenBackend opens a BadgerDB database at the specified path.
// Creates the directory if it doesn't exist.
func OpenBackend(filePath string, inMemory bool) (*Backend, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		// Ensure directory exists
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Backend{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// Close closes the BadgerDB database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// IsClosed returns true if the database is closed.
func (b *Backend) IsClosed() bool {
	return b.db.IsClosed()
}

// WithTx executes a function within a BadgerDB transaction.
// If isWrite is true, creates a read-write transaction.
// The transaction is automatically discarded if fn returns an error.
func (b *Backend) WithTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	tx := b.db.NewTransaction(isWrite)
	defer tx.Discard()
	return fn(tx)
}

// NewWriteBatch returns a write batch for bulk loads that would exceed the
// size limit of a single transaction (corpus imports, index publishes).
func (b *Backend) NewWriteBatch() *badger.WriteBatch {
	return b.db.NewWriteBatch()
}

// DropPrefix deletes all keys with the given prefixes.
func (b *Backend) DropPrefix(prefixes ...[]byte) error {
	return b.db.DropPrefix(prefixes...)
}

// currentGeneration resolves the published corpus generation, caching the
// result. Zero means nothing has been published.
func (b *Backend) currentGeneration() (uint64, error) {
	if gen := b.gen.Load(); gen > 0 {
		return gen, nil
	}

	var gen uint64
	err := b.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(currentGenKey))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			n, err := storage.UnmarshalCount(val)
			gen = uint64(n)
			return err
		})
	}, false)
	if err != nil {
		return 0, err
	}
	if gen > 0 {
		b.gen.Store(gen)
	}
	return gen, nil
}

// publishGeneration flips the generation pointer. This is the single small
// transaction that makes a corpus publish atomic: readers resolve the new
// generation from here on.
func (b *Backend) publishGeneration(gen uint64) error {
	err := b.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(currentGenKey), storage.MarshalCount(int(gen))); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}
	b.gen.Store(gen)
	return nil
}
