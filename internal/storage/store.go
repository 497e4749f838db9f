package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Document names
const (
	DocConfig = "config"
	DocMenu   = "buttons"
	DocUsers  = "users"
	DocOrders = "orders"
	DocAdmins = "admins"
)

// ErrNotExist is returned when a backend holds no document with the given name
var ErrNotExist = errors.New("document does not exist")

// Backend reads and writes raw JSON documents by name
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// Store serializes every document read and write behind one lock
type Store struct {
	mu      sync.Mutex
	backend Backend
	logger  *zap.Logger
}

// New creates a store over backend
func New(backend Backend, logger *zap.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

// Load decodes document name into v
func (s *Store) Load(ctx context.Context, name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx(ctx).Load(name, v)
}

// Save encodes v as document name
func (s *Store) Save(ctx context.Context, name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx(ctx).Save(name, v)
}

// Update loads document name into v, runs mutate and saves v, holding the lock
// throughout. A missing document leaves v untouched before mutate runs, so
// callers pre-fill v with the default. Pre-filled slices of structs are decoded
// element-wise over the old values, so defaults holding them must go through Do.
// Nothing is saved when mutate fails.
func (s *Store) Update(ctx context.Context, name string, v any, mutate func() error) error {
	return s.Do(ctx, func(tx *Tx) error {
		if err := tx.Load(name, v); err != nil && !errors.Is(err, ErrNotExist) {
			return err
		}
		if err := mutate(); err != nil {
			return err
		}
		return tx.Save(name, v)
	})
}

// Do runs fn with exclusive access to every document
func (s *Store) Do(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.tx(ctx))
}

// Ensure writes def as document name unless it already exists
func (s *Store) Ensure(ctx context.Context, name string, def any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.backend.Read(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotExist) {
		return fmt.Errorf("read %s: %w", name, err)
	}

	s.logger.Info("Seeding default document", zap.String("document", name))
	return s.tx(ctx).Save(name, def)
}

func (s *Store) tx(ctx context.Context) *Tx {
	return &Tx{ctx: ctx, backend: s.backend}
}

// Tx gives lock-free document access inside Store.Do
type Tx struct {
	ctx     context.Context
	backend Backend
}

// Load decodes document name into v
func (tx *Tx) Load(name string, v any) error {
	data, err := tx.backend.Read(tx.ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotExist) {
			return err
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Save encodes v as indented UTF-8 JSON and writes it as document name
func (tx *Tx) Save(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := tx.backend.Write(tx.ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
