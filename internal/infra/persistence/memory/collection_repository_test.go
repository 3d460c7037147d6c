package memory

import (
	"context"
	"testing"
	"time"

	"measure/internal/domain/entity"
	"measure/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollection(name string) *entity.MeasurementCollection {
	return &entity.MeasurementCollection{
		ID:        uuid.New(),
		Name:      name,
		CRS:       "EPSG:4326",
		CreatedAt: time.Now(),
		Records: []entity.SegmentRecord{
			{LineID: 1, Start: "0.0000, 0.0000", Stop: "0.0000, 1.0000", LengthM: 111319.5},
		},
	}
}

func TestCollectionRepository_SaveAndFind(t *testing.T) {
	repo := NewCollectionRepository()
	ctx := context.Background()

	saved := newCollection("Measurement_20250314_092653")
	require.NoError(t, repo.SaveCollection(ctx, saved))

	found, err := repo.FindCollectionByName(ctx, saved.Name)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, saved.Records, found.Records)

	// The stored collection is insulated from caller mutation.
	found.Records[0].LineID = 99
	again, err := repo.FindCollectionByName(ctx, saved.Name)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Records[0].LineID)
}

func TestCollectionRepository_SaveDuplicateName(t *testing.T) {
	repo := NewCollectionRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveCollection(ctx, newCollection("Measurement_20250314_092653")))
	err := repo.SaveCollection(ctx, newCollection("Measurement_20250314_092653"))
	assert.ErrorIs(t, err, repository.ErrCollectionExists)
}

func TestCollectionRepository_FindMissing(t *testing.T) {
	repo := NewCollectionRepository()

	_, err := repo.FindCollectionByName(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrCollectionNotFound)
}

func TestCollectionRepository_ListPreservesOrder(t *testing.T) {
	repo := NewCollectionRepository()
	ctx := context.Background()

	first := newCollection("Measurement_20250314_092653")
	second := newCollection("Measurement_20250314_101500")
	require.NoError(t, repo.SaveCollection(ctx, first))
	require.NoError(t, repo.SaveCollection(ctx, second))

	collections, err := repo.ListCollections(ctx)
	require.NoError(t, err)
	require.Len(t, collections, 2)
	assert.Equal(t, first.Name, collections[0].Name)
	assert.Equal(t, second.Name, collections[1].Name)
}
