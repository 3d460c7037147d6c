// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"measure/internal/domain/entity"
	"measure/internal/domain/repository"
	"measure/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// collectionRepository implements the repository.CollectionRepository interface.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) (repository.CollectionRepository, error) {
	if err := db.AutoMigrate(&model.CollectionModel{}, &model.SegmentModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate measurement tables")
	}

	return &collectionRepository{db: db}, nil
}

// SaveCollection persists a finalized measurement collection with its segments.
func (repo *collectionRepository) SaveCollection(ctx context.Context, collection *entity.MeasurementCollection) error {
	collectionM := fromCollectionDomain(collection)

	if err := repo.db.WithContext(ctx).Create(collectionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCollectionExists
		}

		return errors.Wrap(err, "failed to save measurement collection")
	}

	collection.ID = collectionM.ID
	collection.CreatedAt = collectionM.CreatedAt

	return nil
}

// FindCollectionByName retrieves a collection and its segments by name.
func (repo *collectionRepository) FindCollectionByName(ctx context.Context, name string) (*entity.MeasurementCollection, error) {
	var collectionM model.CollectionModel
	err := repo.db.WithContext(ctx).
		Preload("Segments", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_id ASC")
		}).
		Where("name = ?", name).
		First(&collectionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find collection by name")
	}

	return toCollectionDomain(&collectionM), nil
}

// ListCollections retrieves all collections in creation order.
func (repo *collectionRepository) ListCollections(ctx context.Context) ([]*entity.MeasurementCollection, error) {
	var collectionModels []model.CollectionModel
	err := repo.db.WithContext(ctx).
		Preload("Segments", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_id ASC")
		}).
		Order("created_at ASC").
		Find(&collectionModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	collections := make([]*entity.MeasurementCollection, 0, len(collectionModels))
	for i := range collectionModels {
		collections = append(collections, toCollectionDomain(&collectionModels[i]))
	}

	return collections, nil
}

// --- Mapper Functions ---

// toCollectionDomain converts a GORM CollectionModel to a domain MeasurementCollection.
func toCollectionDomain(data *model.CollectionModel) *entity.MeasurementCollection {
	if data == nil {
		return nil
	}

	records := make([]entity.SegmentRecord, 0, len(data.Segments))
	for _, segmentM := range data.Segments {
		records = append(records, entity.SegmentRecord{
			LineID:      segmentM.LineID,
			Start:       segmentM.StartText,
			Stop:        segmentM.StopText,
			LengthM:     segmentM.LengthM,
			LengthNM:    segmentM.LengthNM,
			CumLengthM:  segmentM.CumLengthM,
			CumLengthNM: segmentM.CumLengthNM,
			StartVertex: entity.Vertex{X: segmentM.StartX, Y: segmentM.StartY},
			StopVertex:  entity.Vertex{X: segmentM.StopX, Y: segmentM.StopY},
		})
	}

	return &entity.MeasurementCollection{
		ID:        data.ID,
		Name:      data.Name,
		CRS:       data.CRS,
		CreatedAt: data.CreatedAt,
		Records:   records,
	}
}

// fromCollectionDomain converts a domain MeasurementCollection to a GORM CollectionModel.
func fromCollectionDomain(data *entity.MeasurementCollection) *model.CollectionModel {
	if data == nil {
		return nil
	}

	segments := make([]model.SegmentModel, 0, len(data.Records))
	for _, record := range data.Records {
		segments = append(segments, model.SegmentModel{
			LineID:      record.LineID,
			StartText:   record.Start,
			StopText:    record.Stop,
			StartX:      record.StartVertex.X,
			StartY:      record.StartVertex.Y,
			StopX:       record.StopVertex.X,
			StopY:       record.StopVertex.Y,
			LengthM:     record.LengthM,
			LengthNM:    record.LengthNM,
			CumLengthM:  record.CumLengthM,
			CumLengthNM: record.CumLengthNM,
		})
	}

	return &model.CollectionModel{
		ID:        data.ID,
		Name:      data.Name,
		CRS:       data.CRS,
		CreatedAt: data.CreatedAt,
		Segments:  segments,
	}
}
