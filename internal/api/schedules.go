package api

import (
	"encoding/json"
	"net/http"
	"time"

	"pilotbid/bidboard/internal/common"
	"pilotbid/bidboard/internal/constants"
	"pilotbid/bidboard/internal/models/dtos"
	"pilotbid/bidboard/internal/services"
)

// SchedulesHandler handles GET /api/v1/schedules.
func SchedulesHandler(bidSvc *services.BidService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		schedules, err := bidSvc.Schedules(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build schedules")
			return
		}

		common.RespondSuccess(w, initTime, "Generated schedules", dtos.SchedulesResponse{Schedules: schedules})
	}
}

// ShareScheduleHandler handles POST /api/v1/schedules/share. Mints a
// single-use signed token for one generated plan.
func ShareScheduleHandler(bidSvc *services.BidService, signer *common.ShareSignerService, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ShareScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.GetErrorMessage(constants.ErrCodeInvalidDataFormat), http.StatusBadRequest)
			return
		}

		// The plan must exist before a link is minted for it.
		if _, err := bidSvc.ScheduleByID(r.Context(), req.ScheduleID); err != nil {
			common.RespondError(w, initTime, err, "Unknown schedule id", http.StatusNotFound)
			return
		}

		token, expiresAt, err := signer.GenerateShareToken(req.ScheduleID, ttl)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to mint share link")
			return
		}

		common.RespondSuccess(w, initTime, "Share link minted", dtos.ShareLinkResponse{
			Token:     token,
			ExpiresIn: int(time.Until(expiresAt).Seconds()),
		}, http.StatusCreated)
	}
}

// SharedScheduleHandler handles GET /public/schedule/shared?token=...
// No API key required; the token itself is the credential and is
// burned on first use.
func SharedScheduleHandler(bidSvc *services.BidService, signer *common.ShareSignerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeShareInvalid), http.StatusBadRequest)
			return
		}

		token, err := signer.ValidateToken(tokenString)
		if err != nil {
			common.RespondError(w, initTime, err, constants.GetErrorMessage(constants.ErrCodeShareInvalid), http.StatusUnauthorized)
			return
		}

		schedule, err := bidSvc.ScheduleByID(r.Context(), token.ScheduleID)
		if err != nil {
			common.RespondError(w, initTime, err, constants.GetErrorMessage(constants.ErrCodeShareInvalid), http.StatusNotFound)
			return
		}

		signer.MarkTokenAsUsed(token.TokenID, token.ExpiresAt)

		common.RespondSuccess(w, initTime, "Shared schedule", schedule)
	}
}
