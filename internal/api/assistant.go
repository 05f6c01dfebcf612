package api

import (
	"encoding/json"
	"net/http"
	"time"

	"pilotbid/bidboard/internal/common"
	"pilotbid/bidboard/internal/constants"
	"pilotbid/bidboard/internal/logging"
	"pilotbid/bidboard/internal/middleware"
	"pilotbid/bidboard/internal/models/dtos"
	"pilotbid/bidboard/internal/services"
)

// AssistantAskHandler handles POST /api/v1/assistant/ask. The same
// query params as the pairings endpoint scope the sample the assistant
// reasons over.
func AssistantAskHandler(assistantSvc *services.AssistantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AssistantAskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.GetErrorMessage(constants.ErrCodeInvalidDataFormat), http.StatusBadRequest)
			return
		}
		if req.Question == "" {
			common.RespondError(w, initTime, nil, "Question cannot be empty", http.StatusBadRequest)
			return
		}

		logger := logging.WithRequest(middleware.RequestIDFromContext(r.Context()), r.URL.Path)
		logger.Infow("assistant question received", "question_len", len(req.Question))

		answer := assistantSvc.Ask(r.Context(), filterFromQuery(r), req.Question)

		common.RespondSuccess(w, initTime, "Assistant answer", dtos.AssistantResponse{Answer: answer})
	}
}
