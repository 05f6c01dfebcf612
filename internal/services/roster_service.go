package services

import (
	"bytes"
	"context"
	"fmt"

	"pilotbid/bidboard/internal/constants"
	"pilotbid/bidboard/internal/db/repositories"
	"pilotbid/bidboard/internal/ingest"
	"pilotbid/bidboard/internal/logging"
	"pilotbid/bidboard/internal/metrics"
	"pilotbid/bidboard/internal/models/dtos"
)

// RosterService owns the CSV import path. A successful import replaces
// the stored roster wholesale and invalidates every derived result.
type RosterService struct {
	pairingRepo *repositories.PairingRepository
	bidService  *BidService
	metrics     *metrics.MetricsRegistry
}

// NewRosterService creates a new roster service
func NewRosterService(
	pairingRepo *repositories.PairingRepository,
	bidService *BidService,
	reg *metrics.MetricsRegistry,
) *RosterService {
	return &RosterService{
		pairingRepo: pairingRepo,
		bidService:  bidService,
		metrics:     reg,
	}
}

// Import parses a raw CSV payload and swaps the stored roster. An
// upload that yields zero valid pairings is rejected without touching
// the existing data.
func (svc *RosterService) Import(ctx context.Context, raw []byte) (*dtos.RosterImportResponse, error) {
	result, err := ingest.ParseRoster(bytes.NewReader(raw))
	if err != nil {
		return nil, newServiceError(constants.ErrCodeRosterRejected,
			constants.GetErrorMessage(constants.ErrCodeRosterRejected), err)
	}

	if len(result.Pairings) == 0 {
		return nil, newServiceError(constants.ErrCodeRosterEmpty,
			fmt.Sprintf("no valid pairings found in upload (%d rows skipped)", result.Skipped), nil)
	}

	if err := svc.pairingRepo.ReplaceAll(ctx, result.Pairings); err != nil {
		return nil, fmt.Errorf("failed to store roster: %w", err)
	}

	svc.bidService.InvalidateDerived()

	if svc.metrics != nil {
		svc.metrics.RosterImportsTotal.Inc()
		svc.metrics.RosterPairingsImported.Set(float64(len(result.Pairings)))
	}

	aircraft, err := svc.pairingRepo.AircraftTypes(ctx)
	if err != nil {
		logging.Warn("failed to list aircraft types after import", "error", err)
		aircraft = nil
	}

	logging.Info("roster imported",
		"imported", len(result.Pairings),
		"skipped", result.Skipped,
		"aircraft", len(aircraft))

	return &dtos.RosterImportResponse{
		Imported: len(result.Pairings),
		Skipped:  result.Skipped,
		Aircraft: aircraft,
	}, nil
}
