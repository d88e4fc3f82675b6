package main

import (
	"clinic-booking-service/internal/app/models"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepository struct {
	stored  map[string]models.TreatmentOption
	failOn  string
	indexed bool
}

func (f *fakeCatalogRepository) FindAll(ctx context.Context) ([]models.TreatmentOption, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) FindByName(ctx context.Context, name string) (*models.TreatmentOption, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) FindNames(ctx context.Context) ([]models.TreatmentOption, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) FindAllWithBookedSlots(ctx context.Context, appointmentDate string) ([]models.TreatmentOptionWithBookedSlots, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) UpsertByName(ctx context.Context, option *models.TreatmentOption) (bool, error) {
	if option.Name == f.failOn {
		return false, errors.New("write concern error")
	}
	_, existed := f.stored[option.Name]
	f.stored[option.Name] = *option
	return !existed, nil
}

func (f *fakeCatalogRepository) EnsureIndexes(ctx context.Context) error {
	f.indexed = true
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestParseCatalog_Embedded(t *testing.T) {
	options, err := ParseCatalog(defaultCatalog)
	require.NoError(t, err)
	require.NotEmpty(t, options)

	for _, option := range options {
		assert.NotEmpty(t, option.Name)
		assert.NotEmpty(t, option.Slots)
	}
}

func TestParseCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "Not JSON", raw: `{`},
		{name: "Empty", raw: `[]`},
		{name: "Blank Name", raw: `[{"name":" ","price":1,"slots":["9:00"]}]`},
		{name: "Repeated Name", raw: `[{"name":"Cleaning","price":1,"slots":["9:00"]},{"name":"Cleaning","price":2,"slots":["10:00"]}]`},
		{name: "Negative Price", raw: `[{"name":"Cleaning","price":-1,"slots":["9:00"]}]`},
		{name: "No Slots", raw: `[{"name":"Cleaning","price":1,"slots":[]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestSeedCatalog(t *testing.T) {
	repo := &fakeCatalogRepository{stored: map[string]models.TreatmentOption{
		"Cleaning": {Name: "Cleaning", Price: 40, Slots: []string{"9:00"}},
	}}
	options := []models.TreatmentOption{
		{Name: "Cleaning", Price: 50, Slots: []string{"9:00", "10:00", "11:00"}},
		{Name: "Whitening", Price: 90, Slots: []string{"13:00"}},
	}

	report, err := SeedCatalog(context.Background(), quietLogger(), repo, options)

	require.NoError(t, err)
	assert.Equal(t, SeedReport{Inserted: 1, Updated: 1}, report)
	assert.Equal(t, []string{"9:00", "10:00", "11:00"}, repo.stored["Cleaning"].Slots)
	assert.Equal(t, 50.0, repo.stored["Cleaning"].Price)

	t.Run("Upsert Failure Stops", func(t *testing.T) {
		repo := &fakeCatalogRepository{stored: map[string]models.TreatmentOption{}, failOn: "Cleaning"}
		report, err := SeedCatalog(context.Background(), quietLogger(), repo, options)

		assert.Error(t, err)
		assert.Equal(t, SeedReport{}, report)
		assert.Empty(t, repo.stored)
	})
}

func TestEnsureIndexes(t *testing.T) {
	first := &fakeCatalogRepository{}
	second := &fakeCatalogRepository{}

	err := EnsureIndexes(context.Background(), quietLogger(), []IndexedRepository{
		{Name: "treatment options", Repository: first},
		{Name: "bookings", Repository: second},
	})

	require.NoError(t, err)
	assert.True(t, first.indexed)
	assert.True(t, second.indexed)
}
