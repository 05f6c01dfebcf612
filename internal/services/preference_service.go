package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"pilotbid/bidboard/internal/bid"
	"pilotbid/bidboard/internal/constants"
	"pilotbid/bidboard/internal/db/repositories"
	"pilotbid/bidboard/internal/logging"
	"pilotbid/bidboard/internal/models/dtos"
)

// PreferenceService manages the stored bidding rules. Every mutation
// invalidates the cached rankings and schedules.
type PreferenceService struct {
	prefRepo   *repositories.PreferenceRepository
	bidService *BidService
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(prefRepo *repositories.PreferenceRepository, bidService *BidService) *PreferenceService {
	return &PreferenceService{
		prefRepo:   prefRepo,
		bidService: bidService,
	}
}

// List returns all stored preferences.
func (svc *PreferenceService) List(ctx context.Context) ([]bid.Preference, error) {
	return svc.prefRepo.List(ctx)
}

// Add validates and stores one preference. The ranking engine would
// quietly treat a malformed value as inapplicable; rejecting it here
// keeps the stored rules meaningful.
func (svc *PreferenceService) Add(ctx context.Context, req dtos.AddPreferenceRequest) (*bid.Preference, error) {
	prefType := bid.PreferenceType(req.Type)
	if !bid.IsKnownPreferenceType(prefType) {
		return nil, newServiceError(constants.ErrCodePreferenceInvalid,
			fmt.Sprintf("unknown preference type %q", req.Type), nil)
	}
	if err := validatePreferenceValue(prefType, req.Value); err != nil {
		return nil, newServiceError(constants.ErrCodePreferenceInvalid, err.Error(), nil)
	}

	pref := bid.Preference{
		ID:    uuid.New().String(),
		Type:  prefType,
		Value: req.Value,
		Label: req.Label,
	}

	if err := svc.prefRepo.Create(ctx, pref); err != nil {
		return nil, fmt.Errorf("failed to store preference: %w", err)
	}

	svc.bidService.InvalidateDerived()
	logging.Info("preference added", "type", req.Type, "id", pref.ID)

	return &pref, nil
}

// Delete removes one preference by id.
func (svc *PreferenceService) Delete(ctx context.Context, id string) error {
	deleted, err := svc.prefRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	if !deleted {
		return newServiceError(constants.ErrCodePreferenceMissing,
			fmt.Sprintf("no preference with id %q", id), nil)
	}

	svc.bidService.InvalidateDerived()
	logging.Info("preference deleted", "id", id)
	return nil
}

// validatePreferenceValue enforces the per-type value encoding at the
// API boundary.
func validatePreferenceValue(t bid.PreferenceType, value string) error {
	switch t {
	case bid.TypeTimeWindow:
		parts := strings.SplitN(value, "-", 2)
		if len(parts) != 2 {
			return fmt.Errorf("time window must look like \"6-14\", got %q", value)
		}
		for _, part := range parts {
			h, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || h < 0 || h > 23 {
				return fmt.Errorf("time window hours must be 0-23, got %q", value)
			}
		}
	case bid.TypeDayOfWeekOff:
		d, err := strconv.Atoi(value)
		if err != nil || d < 0 || d > 6 {
			return fmt.Errorf("weekday must be a digit 0-6 (Sunday=0), got %q", value)
		}
	case bid.TypeSpecificDateOff:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD, got %q", value)
		}
	case bid.TypeMaxDuration, bid.TypeMaxLegsPerDay:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("value must be a positive integer, got %q", value)
		}
	case bid.TypeRoute, bid.TypeAvoidAirport:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("station value cannot be empty")
		}
	}
	// STRATEGY_MONEY and AVOID_RED_EYE are flags; any value is accepted.
	return nil
}
