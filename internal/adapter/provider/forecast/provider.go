// Package forecast fetches per-material demand predictions from the model
// service over HTTP.
package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/powerline/gridstock/internal/config"
	"github.com/powerline/gridstock/internal/domain"
	"github.com/powerline/gridstock/internal/provider"
)

// Provider calls the model service's predict-all endpoint.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from config.
func NewProvider(cfg config.ForecastConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "forecast"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.With("adapter", "forecast"),
	}
}

// predictRequest is the wire envelope the model service expects; the
// feature map must sit under "input_features" or the service rejects
// the call with 400.
type predictRequest struct {
	InputFeatures domain.ProjectAttributes `json:"input_features"`
}

// PredictAll requests predictions for every material kind at once. A kind
// whose model errors server-side comes back as zero and is recorded in
// Failed; the call only fails as a whole on transport or decode errors.
func (p *Provider) PredictAll(ctx context.Context, attrs domain.ProjectAttributes) (*provider.ForecastResult, error) {
	payload, err := json.Marshal(predictRequest{InputFeatures: attrs})
	if err != nil {
		return nil, fmt.Errorf("forecast: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/predict_all", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("forecast: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.doWithRetry(ctx, req, payload)
	if err != nil {
		p.log.ErrorContext(ctx, "forecast request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("forecast: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("forecast: read body: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("forecast: decode json: %w", err)
	}

	result := mapResponse(raw)

	p.log.DebugContext(ctx, "forecast response",
		slog.Int("kinds", len(result.Quantities)),
		slog.Int("failed", len(result.Failed)),
	)

	return result, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. The body is rewound before the second attempt.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, payload []byte) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "forecast retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	req = req.Clone(ctx)
	req.Body = io.NopCloser(bytes.NewReader(payload))
	return p.httpClient.Do(req)
}

// mapResponse converts the raw per-kind payload. The model service returns
// either a number or an error string per kind; unknown keys are dropped.
func mapResponse(raw map[string]json.RawMessage) *provider.ForecastResult {
	result := &provider.ForecastResult{
		Quantities: make(map[domain.MaterialKind]float64, len(raw)),
	}

	for key, val := range raw {
		kind := domain.MaterialKind(key)
		if !kind.IsValid() {
			continue
		}

		var qty float64
		if err := json.Unmarshal(val, &qty); err != nil {
			// Per-kind failure, reported as a string by the model service.
			result.Quantities[kind] = 0
			result.Failed = append(result.Failed, kind)
			continue
		}
		result.Quantities[kind] = qty
	}

	return result
}
