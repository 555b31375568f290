package inmemory

import (
	"context"
	"sync"

	"github.com/tbrown320/compliance-cicd-pipeline/internal/compliance"
)

// Store is an in-memory implementation of compliance.Store.
// It keeps records in a map keyed by transaction id and is safe for
// concurrent use. Data is lost on service restart - for persistence, use a
// database-backed store.
type Store struct {
	mu      sync.RWMutex
	records map[string]compliance.Transaction
}

// NewStore creates a new in-memory transaction store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]compliance.Transaction),
	}
}

// Put implements the compliance.Store interface.
// It saves a record keyed by its transaction id. An existing record with
// the same id is replaced, last writer wins. The id must be present and a
// string; the empty string is a valid key.
func (s *Store) Put(ctx context.Context, tx compliance.Transaction) error {
	v, ok := tx[compliance.FieldTransactionID]
	if !ok {
		return compliance.ErrMissingID
	}
	id, ok := v.(string)
	if !ok {
		return compliance.ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy to avoid external modifications
	s.records[id] = tx.Clone()

	return nil
}

// Get implements the compliance.Store interface.
// It retrieves a record by transaction id.
func (s *Store) Get(ctx context.Context, id string) (compliance.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, exists := s.records[id]
	if !exists {
		return nil, compliance.ErrNotFound
	}

	// Return a copy to avoid external modifications
	return tx.Clone(), nil
}

// List implements the compliance.Store interface.
// It returns all records; iteration order is not defined.
func (s *Store) List(ctx context.Context) ([]compliance.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]compliance.Transaction, 0, len(s.records))
	for _, tx := range s.records {
		result = append(result, tx.Clone())
	}

	return result, nil
}

// Delete implements the compliance.Store interface.
// It removes a record by transaction id.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		return compliance.ErrNotFound
	}

	delete(s.records, id)
	return nil
}

// Ensure Store implements the compliance.Store interface.
var _ compliance.Store = (*Store)(nil)
