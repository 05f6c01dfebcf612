package api

import (
	"time"

	"pilotbid/bidboard/internal/bid"
	"pilotbid/bidboard/internal/common"
	"pilotbid/bidboard/internal/config"
	"pilotbid/bidboard/internal/db"
	"pilotbid/bidboard/internal/db/repositories"
	"pilotbid/bidboard/internal/logging"
	"pilotbid/bidboard/internal/metrics"
	"pilotbid/bidboard/internal/providers"
	"pilotbid/bidboard/internal/services"
)

type Repositories struct {
	Pairings    *repositories.PairingRepository
	Preferences *repositories.PreferenceRepository
	Keys        *repositories.KeysRepo
	Stats       *repositories.StatsRepository
}

type Services struct {
	Cache       common.CacheInterface
	Bid         *services.BidService
	Roster      *services.RosterService
	Preferences *services.PreferenceService
	Assistant   *services.AssistantService
	Share       *common.ShareSignerService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	ShareTTL time.Duration
}

// InitDependencies wires repositories and services against the already
// initialized database handles.
func InitDependencies(cfg *config.Config, reg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Pairings:    repositories.NewPairingRepository(db.PgDB),
		Preferences: repositories.NewPreferenceRepository(db.PgDB),
		Keys:        repositories.NewApiKeysRepo(db.PgDB),
		Stats:       repositories.NewStatsRepository(db.DB),
	}

	var cacheSvc common.CacheInterface
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			logging.Warn("redis unavailable, falling back to in-memory cache", "error", err)
			cacheSvc = common.NewCacheService(600, 1200)
		} else {
			cacheSvc = redisCache
		}
	} else {
		cacheSvc = common.NewCacheService(600, 1200)
	}

	bidSvc := services.NewBidService(repos.Pairings, repos.Preferences, cacheSvc, bid.DefaultLimits(), reg)
	rosterSvc := services.NewRosterService(repos.Pairings, bidSvc, reg)
	prefSvc := services.NewPreferenceService(repos.Preferences, bidSvc)
	assistantProvider := providers.NewAssistantProvider(cfg.AssistantEndpoint, cfg.AssistantAPIKey)
	assistantSvc := services.NewAssistantService(bidSvc, assistantProvider, reg)
	shareSvc := common.NewShareSignerService([]byte(cfg.ShareSecret), cacheSvc)

	return &Dependencies{
		Repo: repos,
		Services: &Services{
			Cache:       cacheSvc,
			Bid:         bidSvc,
			Roster:      rosterSvc,
			Preferences: prefSvc,
			Assistant:   assistantSvc,
			Share:       shareSvc,
		},
		ShareTTL: time.Duration(cfg.ShareTTLHours) * time.Hour,
	}, nil
}
