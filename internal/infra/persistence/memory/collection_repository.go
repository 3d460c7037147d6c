// Package memory implements the in-memory feature store, the default layer
// finalized measurements land in.
package memory

import (
	"context"
	"sync"

	"measure/internal/domain/entity"
	"measure/internal/domain/repository"
)

// collectionRepository implements repository.CollectionRepository in memory.
type collectionRepository struct {
	mu          sync.RWMutex
	collections map[string]*entity.MeasurementCollection
	order       []string
}

// NewCollectionRepository creates an empty in-memory collection repository
func NewCollectionRepository() repository.CollectionRepository {
	return &collectionRepository{
		collections: make(map[string]*entity.MeasurementCollection),
	}
}

// SaveCollection stores a finalized collection. Names are unique per store.
func (r *collectionRepository) SaveCollection(_ context.Context, collection *entity.MeasurementCollection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.collections[collection.Name]; exists {
		return repository.ErrCollectionExists
	}

	stored := *collection
	stored.Records = append([]entity.SegmentRecord(nil), collection.Records...)
	r.collections[collection.Name] = &stored
	r.order = append(r.order, collection.Name)

	return nil
}

// FindCollectionByName retrieves a collection by its unique name.
func (r *collectionRepository) FindCollectionByName(_ context.Context, name string) (*entity.MeasurementCollection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.collections[name]
	if !ok {
		return nil, repository.ErrCollectionNotFound
	}

	found := *stored
	found.Records = append([]entity.SegmentRecord(nil), stored.Records...)

	return &found, nil
}

// ListCollections returns all collections in creation order.
func (r *collectionRepository) ListCollections(_ context.Context) ([]*entity.MeasurementCollection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	collections := make([]*entity.MeasurementCollection, 0, len(r.order))
	for _, name := range r.order {
		stored := r.collections[name]
		found := *stored
		found.Records = append([]entity.SegmentRecord(nil), stored.Records...)
		collections = append(collections, &found)
	}

	return collections, nil
}
