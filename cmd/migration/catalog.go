package main

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

//go:embed catalog.json
var defaultCatalog []byte

type indexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

type IndexedRepository struct {
	Name       string
	Repository indexEnsurer
}

type SeedReport struct {
	Inserted int
	Updated  int
}

func EnsureIndexes(ctx context.Context, log *logrus.Logger, repositories []IndexedRepository) error {
	for _, r := range repositories {
		if err := r.Repository.EnsureIndexes(ctx); err != nil {
			log.WithError(err).WithField("collection", r.Name).Error("failed to create indexes")
			return err
		}
		log.WithField("collection", r.Name).Info("indexes ready")
	}
	return nil
}

// ParseCatalog decodes a JSON array of treatment options and rejects entries
// that would break availability: blank or repeated names, negative prices and
// empty slot lists.
func ParseCatalog(raw []byte) ([]models.TreatmentOption, error) {
	var options []models.TreatmentOption
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	seen := make(map[string]struct{}, len(options))
	for i, option := range options {
		name := strings.TrimSpace(option.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("catalog entry %q is repeated", name)
		}
		seen[name] = struct{}{}

		if option.Price < 0 {
			return nil, fmt.Errorf("catalog entry %q has a negative price", name)
		}
		if len(option.Slots) == 0 {
			return nil, fmt.Errorf("catalog entry %q has no slots", name)
		}
		options[i].Name = name
	}
	return options, nil
}

func SeedCatalog(ctx context.Context, log *logrus.Logger, repo contracts.TreatmentOptionRepository, options []models.TreatmentOption) (SeedReport, error) {
	var report SeedReport
	for i := range options {
		inserted, err := repo.UpsertByName(ctx, &options[i])
		if err != nil {
			log.WithError(err).WithField("treatment", options[i].Name).Error("failed to upsert treatment option")
			return report, err
		}
		if inserted {
			report.Inserted++
		} else {
			report.Updated++
		}
	}

	log.WithFields(logrus.Fields{
		"inserted": report.Inserted,
		"updated":  report.Updated,
	}).Info("treatment catalog seeded")
	return report, nil
}
