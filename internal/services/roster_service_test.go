package services

import (
	"context"
	"testing"

	"pilotbid/bidboard/internal/bid"
	"pilotbid/bidboard/internal/common"
	"pilotbid/bidboard/internal/db/repositories"
	"pilotbid/bidboard/internal/models/dtos"
)

const sampleRoster = `Pairing,Pre-assigned,Duration,AC,Departure,Arrival,Pairing details,Block hours
P101,,2,B737,"Oct 06,2025 08:00","Oct 07,2025 18:00",PTY - MIA - PTY,12:30
P102,,3,B787,"Oct 10,2025 06:00","Oct 12,2025 20:00",PTY - JFK - PTY,18:00
P103,,1,B737,not a date,"Oct 14,2025 20:00",PTY - SJO - PTY,05:00
`

func newTestRosterService(t *testing.T) (*RosterService, *BidService) {
	db := setupTestDB(t)
	pairingRepo := repositories.NewPairingRepository(db)
	prefRepo := repositories.NewPreferenceRepository(db)
	cache := common.NewCacheService(60, 120)
	bidSvc := NewBidService(pairingRepo, prefRepo, cache, bid.DefaultLimits(), nil)
	return NewRosterService(pairingRepo, bidSvc, nil), bidSvc
}

func TestRosterServiceImport(t *testing.T) {
	svc, bidSvc := newTestRosterService(t)
	ctx := context.Background()

	resp, err := svc.Import(ctx, []byte(sampleRoster))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if resp.Imported != 2 {
		t.Errorf("expected 2 imported pairings, got %d", resp.Imported)
	}
	if resp.Skipped != 1 {
		t.Errorf("expected 1 skipped row, got %d", resp.Skipped)
	}
	if len(resp.Aircraft) != 2 {
		t.Errorf("expected 2 aircraft types, got %v", resp.Aircraft)
	}

	ranked, total, err := bidSvc.RankedPairings(ctx, dtos.PairingFilter{})
	if err != nil {
		t.Fatalf("RankedPairings failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 stored pairings, got %d", total)
	}
	if ranked[0].Layovers == nil {
		t.Error("expected layovers to survive the storage round trip")
	}
}

func TestRosterServiceImportReplacesPreviousRoster(t *testing.T) {
	svc, bidSvc := newTestRosterService(t)
	ctx := context.Background()

	if _, err := svc.Import(ctx, []byte(sampleRoster)); err != nil {
		t.Fatalf("first Import failed: %v", err)
	}

	second := `Pairing,Pre-assigned,Duration,AC,Departure,Arrival,Pairing details,Block hours
P201,,2,A320,"Oct 20,2025 08:00","Oct 21,2025 18:00",PTY - BOG - PTY,10:00
`
	resp, err := svc.Import(ctx, []byte(second))
	if err != nil {
		t.Fatalf("second Import failed: %v", err)
	}
	if resp.Imported != 1 {
		t.Fatalf("expected 1 imported pairing, got %d", resp.Imported)
	}

	ranked, total, err := bidSvc.RankedPairings(ctx, dtos.PairingFilter{})
	if err != nil {
		t.Fatalf("RankedPairings failed: %v", err)
	}
	if total != 1 || ranked[0].PairingNumber != "P201" {
		t.Fatalf("expected only P201 after reimport, got total=%d", total)
	}
}

func TestRosterServiceRejectsEmptyRoster(t *testing.T) {
	svc, _ := newTestRosterService(t)

	onlyHeader := "Pairing,Pre-assigned,Duration,AC,Departure,Arrival,Pairing details,Block hours\n"
	if _, err := svc.Import(context.Background(), []byte(onlyHeader)); err == nil {
		t.Error("expected error for roster with no valid rows")
	}
}

func TestRosterServiceRejectsMalformedHeader(t *testing.T) {
	svc, _ := newTestRosterService(t)

	if _, err := svc.Import(context.Background(), []byte("garbage,data\n1,2\n")); err == nil {
		t.Error("expected error for unrecognized header")
	}
}
