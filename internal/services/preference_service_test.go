package services

import (
	"context"
	"testing"
	"time"

	"pilotbid/bidboard/internal/bid"
	"pilotbid/bidboard/internal/common"
	"pilotbid/bidboard/internal/db/repositories"
	"pilotbid/bidboard/internal/models/dtos"
)

func newTestPreferenceService(t *testing.T) (*PreferenceService, *BidService, *repositories.PairingRepository) {
	db := setupTestDB(t)
	pairingRepo := repositories.NewPairingRepository(db)
	prefRepo := repositories.NewPreferenceRepository(db)
	cache := common.NewCacheService(60, 120)
	bidSvc := NewBidService(pairingRepo, prefRepo, cache, bid.DefaultLimits(), nil)
	return NewPreferenceService(prefRepo, bidSvc), bidSvc, pairingRepo
}

func TestPreferenceServiceAddAndList(t *testing.T) {
	svc, _, _ := newTestPreferenceService(t)
	ctx := context.Background()

	pref, err := svc.Add(ctx, dtos.AddPreferenceRequest{
		Type:  "AVOID_AIRPORT",
		Value: "JFK",
		Label: "Avoid JFK",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if pref.ID == "" {
		t.Error("expected server-assigned id")
	}

	prefs, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(prefs) != 1 || prefs[0].Type != bid.TypeAvoidAirport || prefs[0].Value != "JFK" {
		t.Fatalf("unexpected stored preferences: %+v", prefs)
	}
}

func TestPreferenceServiceRejectsUnknownType(t *testing.T) {
	svc, _, _ := newTestPreferenceService(t)

	if _, err := svc.Add(context.Background(), dtos.AddPreferenceRequest{
		Type:  "FAVORITE_COLOR",
		Value: "blue",
	}); err == nil {
		t.Error("expected error for unknown preference type")
	}
}

func TestPreferenceServiceRejectsMalformedValues(t *testing.T) {
	svc, _, _ := newTestPreferenceService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  dtos.AddPreferenceRequest
	}{
		{"weekday out of range", dtos.AddPreferenceRequest{Type: "DAY_OF_WEEK_OFF", Value: "7"}},
		{"weekday not a digit", dtos.AddPreferenceRequest{Type: "DAY_OF_WEEK_OFF", Value: "monday"}},
		{"window missing dash", dtos.AddPreferenceRequest{Type: "TIME_WINDOW", Value: "614"}},
		{"window hour too large", dtos.AddPreferenceRequest{Type: "TIME_WINDOW", Value: "6-25"}},
		{"date wrong layout", dtos.AddPreferenceRequest{Type: "SPECIFIC_DATE_OFF", Value: "11/10/2025"}},
		{"duration zero", dtos.AddPreferenceRequest{Type: "MAX_DURATION", Value: "0"}},
		{"empty station", dtos.AddPreferenceRequest{Type: "AVOID_AIRPORT", Value: "  "}},
	}
	for _, tc := range cases {
		if _, err := svc.Add(ctx, tc.req); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}

	// Flag types accept any value.
	if _, err := svc.Add(ctx, dtos.AddPreferenceRequest{Type: "AVOID_RED_EYE", Value: "true"}); err != nil {
		t.Errorf("flag preference rejected: %v", err)
	}
}

func TestPreferenceServiceDelete(t *testing.T) {
	svc, _, _ := newTestPreferenceService(t)
	ctx := context.Background()

	pref, err := svc.Add(ctx, dtos.AddPreferenceRequest{Type: "ROUTE", Value: "MIA"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := svc.Delete(ctx, pref.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	prefs, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(prefs) != 0 {
		t.Fatalf("expected empty preference list, got %d", len(prefs))
	}

	if err := svc.Delete(ctx, pref.ID); err == nil {
		t.Error("expected error deleting missing preference")
	}
}

func TestPreferenceMutationInvalidatesRankings(t *testing.T) {
	svc, bidSvc, pairingRepo := newTestPreferenceService(t)
	ctx := context.Background()

	base := time.Date(2025, 10, 6, 8, 0, 0, 0, time.UTC)
	if err := pairingRepo.ReplaceAll(ctx, []bid.Pairing{testPairing("P100", 20, base, 2)}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	ranked, _, err := bidSvc.RankedPairings(ctx, dtos.PairingFilter{})
	if err != nil {
		t.Fatalf("RankedPairings failed: %v", err)
	}
	if ranked[0].Score != 0 {
		t.Fatalf("expected zero score without preferences, got %d", ranked[0].Score)
	}

	if _, err := svc.Add(ctx, dtos.AddPreferenceRequest{Type: "STRATEGY_MONEY", Value: "true"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	ranked, _, err = bidSvc.RankedPairings(ctx, dtos.PairingFilter{})
	if err != nil {
		t.Fatalf("RankedPairings failed: %v", err)
	}
	if ranked[0].Score != 40 {
		t.Errorf("expected score 40 after adding money preference, got %d", ranked[0].Score)
	}
}
