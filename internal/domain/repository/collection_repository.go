// Package repository defines the persistence interfaces of the domain layer.
package repository

import (
	"context"
	"errors"

	"measure/internal/domain/entity"
)

var (
	// ErrCollectionNotFound is returned when no collection has the given name.
	ErrCollectionNotFound = errors.New("measurement collection not found")
	// ErrCollectionExists is returned when a collection name is already taken.
	ErrCollectionExists = errors.New("measurement collection already exists")
)

// CollectionRepository stores finalized measurement collections.
type CollectionRepository interface {
	SaveCollection(ctx context.Context, collection *entity.MeasurementCollection) error
	FindCollectionByName(ctx context.Context, name string) (*entity.MeasurementCollection, error)
	ListCollections(ctx context.Context) ([]*entity.MeasurementCollection, error)
}
