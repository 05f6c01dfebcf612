package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"pilotbid/bidboard/internal/bid"
	"pilotbid/bidboard/internal/common"
	"pilotbid/bidboard/internal/constants"
	"pilotbid/bidboard/internal/db/repositories"
	"pilotbid/bidboard/internal/logging"
	"pilotbid/bidboard/internal/metrics"
	"pilotbid/bidboard/internal/models/dtos"
)

// derivedResultTTL bounds how long a ranking or schedule set is served
// from cache; mutations invalidate earlier.
const derivedResultTTL = 10 * time.Minute

// BidService computes ranked pairings and generated schedules over the
// stored roster and preferences. Results are cached, and concurrent
// identical computations are collapsed through singleflight.
type BidService struct {
	pairingRepo *repositories.PairingRepository
	prefRepo    *repositories.PreferenceRepository
	cache       common.CacheInterface
	limits      bid.Limits
	metrics     *metrics.MetricsRegistry

	group     singleflight.Group
	refreshCh chan struct{}
}

// NewBidService creates a new bid service
func NewBidService(
	pairingRepo *repositories.PairingRepository,
	prefRepo *repositories.PreferenceRepository,
	cache common.CacheInterface,
	limits bid.Limits,
	reg *metrics.MetricsRegistry,
) *BidService {
	return &BidService{
		pairingRepo: pairingRepo,
		prefRepo:    prefRepo,
		cache:       cache,
		limits:      limits,
		metrics:     reg,
		refreshCh:   make(chan struct{}, 1),
	}
}

// RankedPairings runs one ranking pass over the (optionally filtered)
// pool. Total is the pool size before the display cap.
func (svc *BidService) RankedPairings(ctx context.Context, filter dtos.PairingFilter) ([]bid.ScoredPairing, int, error) {
	key := string(constants.CachePrefixRankedPairings) + filterKey(filter)

	if val, found := svc.cache.Get(key); found {
		if ranked, ok := val.([]bid.ScoredPairing); ok {
			svc.countCache(true, string(constants.CachePrefixRankedPairings))
			return ranked, len(ranked), nil
		}
	}
	svc.countCache(false, string(constants.CachePrefixRankedPairings))

	val, err, _ := svc.group.Do(key, func() (interface{}, error) {
		return svc.computeRanking(ctx, filter)
	})
	if err != nil {
		return nil, 0, err
	}

	ranked := val.([]bid.ScoredPairing)
	svc.cache.Set(key, ranked, derivedResultTTL)
	return ranked, len(ranked), nil
}

func (svc *BidService) computeRanking(ctx context.Context, filter dtos.PairingFilter) ([]bid.ScoredPairing, error) {
	pairings, err := svc.pairingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load pairings: %w", err)
	}

	prefs, err := svc.prefRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	ranked := bid.Rank(pairings, prefs)
	if svc.metrics != nil {
		svc.metrics.RankingsComputedTotal.Inc()
	}
	return ranked, nil
}

// Schedules builds the three candidate plans over the full pool.
func (svc *BidService) Schedules(ctx context.Context) ([]bid.GeneratedSchedule, error) {
	key := string(constants.CachePrefixSchedules) + "all"

	if val, found := svc.cache.Get(key); found {
		if schedules, ok := val.([]bid.GeneratedSchedule); ok {
			svc.countCache(true, string(constants.CachePrefixSchedules))
			return schedules, nil
		}
	}
	svc.countCache(false, string(constants.CachePrefixSchedules))

	val, err, _ := svc.group.Do(key, func() (interface{}, error) {
		return svc.computeSchedules(ctx)
	})
	if err != nil {
		return nil, err
	}

	schedules := val.([]bid.GeneratedSchedule)
	svc.cache.Set(key, schedules, derivedResultTTL)
	return schedules, nil
}

func (svc *BidService) computeSchedules(ctx context.Context) ([]bid.GeneratedSchedule, error) {
	pairings, err := svc.pairingRepo.List(ctx, dtos.PairingFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load pairings: %w", err)
	}

	prefs, err := svc.prefRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	start := time.Now()
	schedules := bid.GenerateSchedules(pairings, prefs, svc.limits)
	if svc.metrics != nil {
		svc.metrics.SchedulesBuiltTotal.Inc()
		svc.metrics.ScheduleBuildDuration.Observe(time.Since(start).Seconds())
	}
	return schedules, nil
}

// ScheduleByID finds one generated plan, used by the share link path.
func (svc *BidService) ScheduleByID(ctx context.Context, id string) (*bid.GeneratedSchedule, error) {
	schedules, err := svc.Schedules(ctx)
	if err != nil {
		return nil, err
	}
	for i := range schedules {
		if schedules[i].ID == id {
			return &schedules[i], nil
		}
	}
	return nil, fmt.Errorf("no schedule with id %q", id)
}

// InvalidateDerived drops every cached ranking and schedule set and
// nudges the refresh worker.
func (svc *BidService) InvalidateDerived() {
	svc.cache.DeletePrefix(string(constants.CachePrefixRankedPairings))
	svc.cache.DeletePrefix(string(constants.CachePrefixSchedules))

	select {
	case svc.refreshCh <- struct{}{}:
	default:
	}
}

// RefreshSignal exposes the invalidation channel to the refresh worker.
func (svc *BidService) RefreshSignal() <-chan struct{} {
	return svc.refreshCh
}

// Warm recomputes the default ranking and the schedule set so the next
// read is served from cache.
func (svc *BidService) Warm(ctx context.Context) {
	if _, _, err := svc.RankedPairings(ctx, dtos.PairingFilter{}); err != nil {
		logging.Warn("cache warm: ranking failed", "error", err)
	}
	if _, err := svc.Schedules(ctx); err != nil {
		logging.Warn("cache warm: schedules failed", "error", err)
	}
}

func (svc *BidService) countCache(hit bool, pattern string) {
	if svc.metrics == nil {
		return
	}
	if hit {
		svc.metrics.CacheHitsTotal.WithLabelValues(pattern).Inc()
	} else {
		svc.metrics.CacheMissesTotal.WithLabelValues(pattern).Inc()
	}
}

// filterKey renders a filter into a stable cache key fragment.
func filterKey(f dtos.PairingFilter) string {
	if isZeroFilter(f) {
		return "all"
	}
	aircraft := append([]string(nil), f.AircraftTypes...)
	sort.Strings(aircraft)
	return fmt.Sprintf("ac=%s|dur=%d|bh=%.2f|q=%s|from=%s|to=%s",
		strings.Join(aircraft, ","),
		f.MaxDuration,
		f.MinBlockHours,
		strings.ToLower(f.SearchQuery),
		f.StartDate,
		f.EndDate,
	)
}

func isZeroFilter(f dtos.PairingFilter) bool {
	return len(f.AircraftTypes) == 0 &&
		f.MaxDuration == 0 &&
		f.MinBlockHours == 0 &&
		f.SearchQuery == "" &&
		f.StartDate == "" &&
		f.EndDate == ""
}
