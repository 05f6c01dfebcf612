package services

import (
	"context"

	"pilotbid/bidboard/internal/bid"
	"pilotbid/bidboard/internal/constants"
	"pilotbid/bidboard/internal/logging"
	"pilotbid/bidboard/internal/metrics"
	"pilotbid/bidboard/internal/models/dtos"
)

// assistantApology is returned in place of an answer when the upstream
// gateway fails; the question itself never errors out to the client.
const assistantApology = "Sorry, I encountered an error analyzing your schedule. Please check your API key or try again later."

// AssistantService answers free-text questions over the current ranked
// pairings by sampling the top results into the provider prompt.
type AssistantService struct {
	bidService *BidService
	provider   assistantProvider
	metrics    *metrics.MetricsRegistry
}

// assistantProvider is the narrow provider contract used here; the
// concrete implementation lives in the providers package.
type assistantProvider interface {
	Ask(ctx context.Context, sample []bid.ScoredPairing, question string) (string, error)
}

// NewAssistantService creates a new assistant service
func NewAssistantService(bidService *BidService, provider assistantProvider, reg *metrics.MetricsRegistry) *AssistantService {
	return &AssistantService{
		bidService: bidService,
		provider:   provider,
		metrics:    reg,
	}
}

// Ask ranks the current pool under the given filter, caps the sample,
// and delegates to the provider.
func (svc *AssistantService) Ask(ctx context.Context, filter dtos.PairingFilter, question string) string {
	ranked, _, err := svc.bidService.RankedPairings(ctx, filter)
	if err != nil {
		logging.Error("assistant: failed to rank pairings", "error", err)
		svc.countOutcome("error")
		return assistantApology
	}

	sample := ranked
	if len(sample) > constants.AssistantSampleLimit {
		sample = sample[:constants.AssistantSampleLimit]
	}

	answer, err := svc.provider.Ask(ctx, sample, question)
	if err != nil {
		logging.Error("assistant: provider call failed", "error", err)
		svc.countOutcome("error")
		return assistantApology
	}

	svc.countOutcome("ok")
	return answer
}

func (svc *AssistantService) countOutcome(outcome string) {
	if svc.metrics == nil {
		return
	}
	svc.metrics.AssistantRequestsTotal.WithLabelValues(outcome).Inc()
}
