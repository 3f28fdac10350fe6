package corpusstore

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/schema"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetCorpusStore implements the StoreManager interface.
func (m *MockStoreManager) GetCorpusStore() contract.CorpusStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.CorpusStore)
	return store
}

// MockCorpusStore is a mock implementation of CorpusStore for testing.
type MockCorpusStore struct {
	mock.Mock
}

var _ contract.CorpusStore = &MockCorpusStore{} // Compile-time check

// FetchCandidates implements the CorpusStore interface.
func (m *MockCorpusStore) FetchCandidates(ctx context.Context, schemaVersion, limit int) ([]schema.CorpusEntry, error) {
	args := m.Called(ctx, schemaVersion, limit)
	entries, _ := args.Get(0).([]schema.CorpusEntry)
	return entries, args.Error(1)
}

// Append implements the CorpusStore interface.
func (m *MockCorpusStore) Append(ctx context.Context, entry schema.CorpusEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

// GetStatus implements the CorpusStore interface.
func (m *MockCorpusStore) GetStatus() (schema.CorpusStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CorpusStatus), args.Error(1)
}

// Clear implements the CorpusStore interface.
func (m *MockCorpusStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the CorpusStore interface.
func (m *MockCorpusStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
