package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pilotbid/bidboard/internal/bid"
	"pilotbid/bidboard/internal/common"
	"pilotbid/bidboard/internal/db/repositories"
	"pilotbid/bidboard/internal/models/dtos"
	gormModels "pilotbid/bidboard/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.Pairing{}, &gormModels.Preference{}, &gormModels.APIKey{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func newTestBidService(t *testing.T) (*BidService, *repositories.PairingRepository, *repositories.PreferenceRepository) {
	db := setupTestDB(t)
	pairingRepo := repositories.NewPairingRepository(db)
	prefRepo := repositories.NewPreferenceRepository(db)
	cache := common.NewCacheService(60, 120)
	svc := NewBidService(pairingRepo, prefRepo, cache, bid.DefaultLimits(), nil)
	return svc, pairingRepo, prefRepo
}

func testPairing(number string, blockHours float64, departure time.Time, days int) bid.Pairing {
	return bid.Pairing{
		PairingNumber:     number,
		Duration:          days,
		AircraftType:      "B737",
		DepartureTime:     departure,
		ArrivalTime:       departure.AddDate(0, 0, days-1).Add(8 * time.Hour),
		Details:           "PTY - MIA - PTY",
		BlockHours:        "10:00",
		BlockHoursDecimal: blockHours,
		Layovers:          []string{"MIA"},
	}
}

func TestBidServiceRankedPairingsOrdersByScore(t *testing.T) {
	svc, pairingRepo, prefRepo := newTestBidService(t)
	ctx := context.Background()

	base := time.Date(2025, 10, 6, 8, 0, 0, 0, time.UTC)
	pairings := []bid.Pairing{
		testPairing("P100", 10, base, 2),
		testPairing("P200", 25, base.AddDate(0, 0, 5), 3),
	}
	if err := pairingRepo.ReplaceAll(ctx, pairings); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	if err := prefRepo.Create(ctx, bid.Preference{ID: "m1", Type: bid.TypeStrategyMoney, Value: "true"}); err != nil {
		t.Fatalf("Create preference failed: %v", err)
	}

	ranked, total, err := svc.RankedPairings(ctx, dtos.PairingFilter{})
	if err != nil {
		t.Fatalf("RankedPairings failed: %v", err)
	}
	if total != 2 || len(ranked) != 2 {
		t.Fatalf("expected 2 ranked pairings, got total=%d len=%d", total, len(ranked))
	}
	if ranked[0].PairingNumber != "P200" {
		t.Errorf("expected high block-hour pairing first, got %s", ranked[0].PairingNumber)
	}
	if ranked[0].Score != 50 {
		t.Errorf("expected score 50 for 25 block hours, got %d", ranked[0].Score)
	}
}

func TestBidServiceRankedPairingsUsesCacheUntilInvalidated(t *testing.T) {
	svc, pairingRepo, _ := newTestBidService(t)
	ctx := context.Background()

	base := time.Date(2025, 10, 6, 8, 0, 0, 0, time.UTC)
	if err := pairingRepo.ReplaceAll(ctx, []bid.Pairing{testPairing("P100", 10, base, 2)}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	first, _, err := svc.RankedPairings(ctx, dtos.PairingFilter{})
	if err != nil {
		t.Fatalf("RankedPairings failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 pairing, got %d", len(first))
	}

	// Swap the roster behind the service's back; the cached result
	// must survive until an explicit invalidation.
	if err := pairingRepo.ReplaceAll(ctx, []bid.Pairing{
		testPairing("P300", 12, base, 2),
		testPairing("P400", 14, base.AddDate(0, 0, 4), 2),
	}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	cached, _, err := svc.RankedPairings(ctx, dtos.PairingFilter{})
	if err != nil {
		t.Fatalf("RankedPairings failed: %v", err)
	}
	if len(cached) != 1 || cached[0].PairingNumber != "P100" {
		t.Fatalf("expected cached result with P100, got %d pairings", len(cached))
	}

	svc.InvalidateDerived()

	fresh, _, err := svc.RankedPairings(ctx, dtos.PairingFilter{})
	if err != nil {
		t.Fatalf("RankedPairings failed: %v", err)
	}
	if len(fresh) != 2 {
		t.Fatalf("expected 2 pairings after invalidation, got %d", len(fresh))
	}
}

func TestBidServiceRankedPairingsAppliesFilter(t *testing.T) {
	svc, pairingRepo, _ := newTestBidService(t)
	ctx := context.Background()

	base := time.Date(2025, 10, 6, 8, 0, 0, 0, time.UTC)
	narrow := testPairing("P100", 10, base, 2)
	wide := testPairing("P200", 25, base.AddDate(0, 0, 5), 5)
	wide.AircraftType = "B787"
	if err := pairingRepo.ReplaceAll(ctx, []bid.Pairing{narrow, wide}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	ranked, total, err := svc.RankedPairings(ctx, dtos.PairingFilter{AircraftTypes: []string{"B787"}})
	if err != nil {
		t.Fatalf("RankedPairings failed: %v", err)
	}
	if total != 1 || ranked[0].PairingNumber != "P200" {
		t.Fatalf("expected only P200 under aircraft filter, got total=%d", total)
	}

	ranked, _, err = svc.RankedPairings(ctx, dtos.PairingFilter{MaxDuration: 3})
	if err != nil {
		t.Fatalf("RankedPairings failed: %v", err)
	}
	if len(ranked) != 1 || ranked[0].PairingNumber != "P100" {
		t.Fatalf("expected only P100 under duration filter, got %d pairings", len(ranked))
	}
}

func TestBidServiceSchedulesBuildsThreePlans(t *testing.T) {
	svc, pairingRepo, _ := newTestBidService(t)
	ctx := context.Background()

	base := time.Date(2025, 10, 6, 8, 0, 0, 0, time.UTC)
	if err := pairingRepo.ReplaceAll(ctx, []bid.Pairing{
		testPairing("P100", 20, base, 3),
		testPairing("P200", 18, base.AddDate(0, 0, 7), 3),
	}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	schedules, err := svc.Schedules(ctx)
	if err != nil {
		t.Fatalf("Schedules failed: %v", err)
	}
	if len(schedules) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(schedules))
	}

	sched, err := svc.ScheduleByID(ctx, schedules[0].ID)
	if err != nil {
		t.Fatalf("ScheduleByID failed: %v", err)
	}
	if sched.Name != schedules[0].Name {
		t.Errorf("ScheduleByID returned %q, want %q", sched.Name, schedules[0].Name)
	}

	if _, err := svc.ScheduleByID(ctx, "no-such-plan"); err == nil {
		t.Error("expected error for unknown schedule id")
	}
}

func TestBidServiceSchedulesEmptyPool(t *testing.T) {
	svc, _, _ := newTestBidService(t)

	schedules, err := svc.Schedules(context.Background())
	if err != nil {
		t.Fatalf("Schedules failed: %v", err)
	}
	if len(schedules) != 0 {
		t.Fatalf("expected no plans for empty pool, got %d", len(schedules))
	}
}
