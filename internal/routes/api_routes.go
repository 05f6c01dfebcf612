package routes

import (
	"github.com/go-chi/chi/v5"

	"pilotbid/bidboard/internal/api"
	"pilotbid/bidboard/internal/middleware"
)

// RegisterAPIRoutes registers the public and authenticated route groups.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	// Public routes: share links carry their own credential
	r.Group(func(public chi.Router) {
		public.Get("/public/schedule/shared", api.SharedScheduleHandler(deps.Services.Bid, deps.Services.Share))
	})

	// API v1 routes: all require an API key
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(deps.Repo.Keys))

		v1.Post("/roster/import", api.RosterImportHandler(deps.Services.Roster))

		v1.Get("/pairings", api.RankedPairingsHandler(deps.Services.Bid))
		v1.Get("/pairings/stats", api.AircraftStatsHandler(deps.Repo.Stats))

		v1.Get("/preferences", api.ListPreferencesHandler(deps.Services.Preferences))
		v1.Post("/preferences", api.AddPreferenceHandler(deps.Services.Preferences))
		v1.Delete("/preferences/{id}", api.DeletePreferenceHandler(deps.Services.Preferences))

		v1.Get("/schedules", api.SchedulesHandler(deps.Services.Bid))
		v1.Post("/schedules/share", api.ShareScheduleHandler(deps.Services.Bid, deps.Services.Share, deps.ShareTTL))

		v1.Post("/assistant/ask", api.AssistantAskHandler(deps.Services.Assistant))
	})
}
