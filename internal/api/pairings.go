package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"pilotbid/bidboard/internal/common"
	"pilotbid/bidboard/internal/constants"
	"pilotbid/bidboard/internal/db/repositories"
	"pilotbid/bidboard/internal/models/dtos"
	"pilotbid/bidboard/internal/services"
)

// RankedPairingsHandler handles GET /api/v1/pairings. Query params map
// onto the hard filters; the response is capped at the display limit.
func RankedPairingsHandler(bidSvc *services.BidService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter := filterFromQuery(r)
		ranked, total, err := bidSvc.RankedPairings(r.Context(), filter)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to rank pairings")
			return
		}

		truncated := false
		if len(ranked) > constants.DisplayRankedLimit {
			ranked = ranked[:constants.DisplayRankedLimit]
			truncated = true
		}

		common.RespondSuccess(w, initTime, "Ranked pairings", dtos.RankedPairingsResponse{
			Total:     total,
			Returned:  len(ranked),
			Pairings:  ranked,
			Truncated: truncated,
		})
	}
}

// AircraftStatsHandler handles GET /api/v1/pairings/stats.
func AircraftStatsHandler(statsRepo *repositories.StatsRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		rows, err := statsRepo.AircraftStats(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to compute aircraft stats")
			return
		}

		common.RespondSuccess(w, initTime, "Aircraft stats", rows)
	}
}

func filterFromQuery(r *http.Request) dtos.PairingFilter {
	q := r.URL.Query()

	var filter dtos.PairingFilter
	if aircraft := q.Get("aircraft"); aircraft != "" {
		for _, ac := range strings.Split(aircraft, ",") {
			if ac = strings.TrimSpace(ac); ac != "" {
				filter.AircraftTypes = append(filter.AircraftTypes, ac)
			}
		}
	}
	if v := q.Get("max_duration"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.MaxDuration = n
		}
	}
	if v := q.Get("min_block_hours"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			filter.MinBlockHours = f
		}
	}
	filter.SearchQuery = q.Get("q")
	filter.StartDate = q.Get("from")
	filter.EndDate = q.Get("to")
	return filter
}
