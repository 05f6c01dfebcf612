package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pilotbid/bidboard/internal/bid"
	"pilotbid/bidboard/internal/constants"
)

const assistantPromptLayout = "Jan 02 15:04"

// AssistantProvider talks to the upstream LLM gateway that answers
// natural-language questions about a ranked pairing sample.
type AssistantProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAssistantProvider creates a new assistant provider
func NewAssistantProvider(baseURL, apiKey string) *AssistantProvider {
	return &AssistantProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// promptPairing is the compact pairing shape serialized into prompts.
type promptPairing struct {
	ID    string `json:"id"`
	AC    string `json:"ac"`
	Dep   string `json:"dep"`
	Arr   string `json:"arr"`
	Dur   int    `json:"dur"`
	Route string `json:"route"`
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Ask builds the analysis prompt from the pairing sample and the
// pilot's question, then calls the gateway.
func (p *AssistantProvider) Ask(ctx context.Context, sample []bid.ScoredPairing, question string) (string, error) {
	if question == "" {
		return "", &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "question cannot be empty",
		}
	}

	contextPairings := make([]promptPairing, 0, len(sample))
	for _, sp := range sample {
		contextPairings = append(contextPairings, promptPairing{
			ID:    sp.PairingNumber,
			AC:    sp.AircraftType,
			Dep:   sp.DepartureTime.Format(assistantPromptLayout),
			Arr:   sp.ArrivalTime.Format(assistantPromptLayout),
			Dur:   sp.Duration,
			Route: sp.Details,
		})
	}

	sampleJSON, err := json.Marshal(contextPairings)
	if err != nil {
		return "", &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "failed to encode pairing sample",
			Err:     err,
		}
	}

	prompt := fmt.Sprintf(`You are an intelligent assistant for an airline pilot using a bidding app.

The pilot has filtered their monthly schedule and is asking a question about the remaining available flights.

Here is a sample of the filtered pairings (JSON format):
%s

User Question: "%s"

Please provide a helpful, professional, and concise answer.
If suggesting specific pairings, refer to them by their Pairing ID.
Highlight specific pros/cons like "good for maximizing block hours" or "easy turn-around".
If the list seems empty or irrelevant to the query, advise them to adjust filters.`, sampleJSON, question)

	var result generateResponse
	if _, err := p.doPost(ctx, "/generate", generateRequest{Prompt: prompt}, &result); err != nil {
		return "", err
	}

	if result.Text == "" {
		return "I couldn't generate a response. Please try rephrasing.", nil
	}
	return result.Text, nil
}

// doPost performs a POST request with authentication and JSON body
func (p *AssistantProvider) doPost(ctx context.Context, endpoint string, payload interface{}, result interface{}) (int, error) {
	if p.BaseURL == "" || p.APIKey == "" {
		return 0, &ProviderError{
			Code:    constants.ErrCodeAssistantDown,
			Message: "assistant endpoint is not configured",
		}
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to marshal request body",
			Err:     err,
		}
	}

	url := p.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payloadBytes))
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to read response body",
			Err:     readErr,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeAssistantDown,
			Message: constants.GetErrorMessage(constants.ErrCodeAssistantDown),
			Details: fmt.Sprintf("POST %s returned %d: %s", endpoint, resp.StatusCode, string(bodyBytes)),
		}
	}

	if err := json.Unmarshal(bodyBytes, result); err != nil {
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to decode response",
			Details: string(bodyBytes),
			Err:     err,
		}
	}

	return resp.StatusCode, nil
}
