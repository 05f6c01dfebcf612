package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gormlib "gorm.io/gorm"

	"pilotbid/bidboard/internal/bid"
	"pilotbid/bidboard/internal/models/dtos"
	gormModels "pilotbid/bidboard/internal/models/gorm"
)

// PairingRepository handles the pairings table.
type PairingRepository struct {
	db *gormlib.DB
}

// NewPairingRepository creates a new pairing repository
func NewPairingRepository(db *gormlib.DB) *PairingRepository {
	return &PairingRepository{db: db}
}

// ReplaceAll swaps the stored roster for a fresh import inside one
// transaction, following the delete-then-reimport pattern.
func (r *PairingRepository) ReplaceAll(ctx context.Context, pairings []bid.Pairing) error {
	rows := make([]gormModels.Pairing, 0, len(pairings))
	for _, p := range pairings {
		row, err := toRow(p)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if err := tx.Where("1 = 1").Delete(&gormModels.Pairing{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
}

// List returns the stored roster, optionally narrowed by the hard
// filters, ordered by departure time.
func (r *PairingRepository) List(ctx context.Context, filter dtos.PairingFilter) ([]bid.Pairing, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Pairing{}).Order("departure_time asc")

	if len(filter.AircraftTypes) > 0 {
		q = q.Where("aircraft_type IN ?", filter.AircraftTypes)
	}
	if filter.MaxDuration > 0 {
		q = q.Where("duration <= ?", filter.MaxDuration)
	}
	if filter.MinBlockHours > 0 {
		q = q.Where("block_hours_decimal >= ?", filter.MinBlockHours)
	}
	if filter.StartDate != "" {
		q = q.Where("departure_time >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("departure_time <= ?", filter.EndDate)
	}
	if filter.SearchQuery != "" {
		needle := "%" + strings.ToLower(filter.SearchQuery) + "%"
		q = q.Where(
			"LOWER(pairing_number) LIKE ? OR LOWER(details) LIKE ? OR LOWER(aircraft_type) LIKE ?",
			needle, needle, needle,
		)
	}

	var rows []gormModels.Pairing
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list pairings: %w", err)
	}

	pairings := make([]bid.Pairing, 0, len(rows))
	for _, row := range rows {
		pairings = append(pairings, fromRow(row))
	}
	return pairings, nil
}

// Count returns total number of stored pairings.
func (r *PairingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Pairing{}).Count(&count).Error
	return count, err
}

// AircraftTypes returns the distinct aircraft in the roster, sorted.
func (r *PairingRepository) AircraftTypes(ctx context.Context) ([]string, error) {
	var types []string
	err := r.db.WithContext(ctx).
		Model(&gormModels.Pairing{}).
		Distinct("aircraft_type").
		Order("aircraft_type asc").
		Pluck("aircraft_type", &types).Error
	return types, err
}

func toRow(p bid.Pairing) (gormModels.Pairing, error) {
	layovers, err := json.Marshal(p.Layovers)
	if err != nil {
		return gormModels.Pairing{}, fmt.Errorf("failed to encode layovers: %w", err)
	}
	return gormModels.Pairing{
		PairingNumber:     p.PairingNumber,
		PreAssigned:       p.PreAssigned,
		Duration:          p.Duration,
		AircraftType:      p.AircraftType,
		DepartureTime:     p.DepartureTime,
		ArrivalTime:       p.ArrivalTime,
		Details:           p.Details,
		BlockHours:        p.BlockHours,
		BlockHoursDecimal: p.BlockHoursDecimal,
		Layovers:          string(layovers),
	}, nil
}

func fromRow(row gormModels.Pairing) bid.Pairing {
	var layovers []string
	// A row written by toRow always decodes; tolerate hand-edited data.
	_ = json.Unmarshal([]byte(row.Layovers), &layovers)
	return bid.Pairing{
		PairingNumber:     row.PairingNumber,
		PreAssigned:       row.PreAssigned,
		Duration:          row.Duration,
		AircraftType:      row.AircraftType,
		DepartureTime:     row.DepartureTime,
		ArrivalTime:       row.ArrivalTime,
		Details:           row.Details,
		BlockHours:        row.BlockHours,
		BlockHoursDecimal: row.BlockHoursDecimal,
		Layovers:          layovers,
	}
}
