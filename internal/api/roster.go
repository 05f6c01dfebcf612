package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"pilotbid/bidboard/internal/auth"
	"pilotbid/bidboard/internal/common"
	"pilotbid/bidboard/internal/constants"
	"pilotbid/bidboard/internal/logging"
	"pilotbid/bidboard/internal/services"
)

// maxRosterBytes caps uploaded CSV payloads. A full monthly bid
// package is well under a megabyte.
const maxRosterBytes = 5 << 20

// RosterImportHandler handles POST /api/v1/roster/import. Accepts
// either a multipart upload under the "file" field or a raw CSV body.
func RosterImportHandler(rosterSvc *services.RosterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		raw, err := readRosterPayload(w, r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.GetErrorMessage(constants.ErrCodeInvalidDataFormat), http.StatusBadRequest)
			return
		}
		if len(raw) == 0 {
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeRosterEmpty), http.StatusBadRequest)
			return
		}

		resp, err := rosterSvc.Import(r.Context(), raw)
		if err != nil {
			status := http.StatusUnprocessableEntity
			var svcErr *services.ServiceError
			if errors.As(err, &svcErr) && svcErr.Code == constants.ErrCodeRosterEmpty {
				status = http.StatusBadRequest
			}
			common.RespondError(w, initTime, err, constants.GetErrorMessage(constants.ErrCodeRosterRejected), status)
			return
		}

		if claims := auth.GetClientClaims(r.Context()); claims != nil {
			logging.Info("roster import accepted", "key_id", claims.KeyID(), "imported", resp.Imported)
		}

		common.RespondSuccess(w, initTime, "Roster imported", resp, http.StatusCreated)
	}
}

func readRosterPayload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRosterBytes)

	if file, _, err := r.FormFile("file"); err == nil {
		defer file.Close()
		return io.ReadAll(file)
	}

	return io.ReadAll(r.Body)
}
