package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pilotbid/bidboard/internal/common"
	"pilotbid/bidboard/internal/constants"
	"pilotbid/bidboard/internal/models/dtos"
	"pilotbid/bidboard/internal/services"
)

// ListPreferencesHandler handles GET /api/v1/preferences.
func ListPreferencesHandler(prefSvc *services.PreferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		prefs, err := prefSvc.List(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list preferences")
			return
		}

		common.RespondSuccess(w, initTime, "Preferences", prefs)
	}
}

// AddPreferenceHandler handles POST /api/v1/preferences.
func AddPreferenceHandler(prefSvc *services.PreferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AddPreferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.GetErrorMessage(constants.ErrCodeInvalidDataFormat), http.StatusBadRequest)
			return
		}

		pref, err := prefSvc.Add(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.GetErrorMessage(constants.ErrCodePreferenceInvalid), http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Preference added", pref, http.StatusCreated)
	}
}

// DeletePreferenceHandler handles DELETE /api/v1/preferences/{id}.
func DeletePreferenceHandler(prefSvc *services.PreferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "id")
		if id == "" {
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodePreferenceMissing), http.StatusBadRequest)
			return
		}

		if err := prefSvc.Delete(r.Context(), id); err != nil {
			common.RespondError(w, initTime, err, constants.GetErrorMessage(constants.ErrCodePreferenceMissing), http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Preference deleted", nil)
	}
}
