// Package llm executes generation calls against a configured provider.
// It is the only part of the service that talks to the network; every
// failure it can produce is an *LLMError, and none are retried.
package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/brenonun3s/project-llm-optimizer/config"
	"github.com/brenonun3s/project-llm-optimizer/providers"
	"github.com/brenonun3s/project-llm-optimizer/utils"
)

// bodyExcerptLen bounds how much of an upstream error body is echoed into
// diagnostics.
const bodyExcerptLen = 200

// Client invokes a provider's generation endpoint over HTTP with a
// bounded timeout and outbound pacing. It holds no per-call state and is
// safe for concurrent use.
type Client struct {
	provider providers.Provider
	client   *http.Client
	limiter  *rate.Limiter
	logger   utils.Logger
}

func NewClient(provider providers.Provider, cfg *config.Config, logger utils.Logger) *Client {
	provider.SetLogger(logger)
	return &Client{
		provider: provider,
		client:   &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(rate.Every(cfg.RateEvery), cfg.RateBurst),
		logger:   logger,
	}
}

// Generate sends the system instruction and prompt to the provider and
// returns the raw text payload it produced. The text is expected to be
// JSON, but judging that is the caller's concern.
func (c *Client) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", NewLLMError(ErrorTypeRequest, "request cancelled while pacing", err)
	}

	reqBody, err := c.provider.PrepareRequest(systemInstruction, prompt)
	if err != nil {
		return "", NewLLMError(ErrorTypeRequest, "failed to prepare request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.provider.Endpoint(), bytes.NewReader(reqBody))
	if err != nil {
		return "", NewLLMError(ErrorTypeRequest, "failed to create request", err)
	}
	for k, v := range c.provider.Headers() {
		req.Header.Set(k, v)
	}

	c.logger.Debug("calling generation API", "provider", c.provider.Name(), "endpoint", c.provider.Endpoint())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", NewLLMError(ErrorTypeRequest, "failed to send request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewLLMError(ErrorTypeResponse, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.statusError(resp.StatusCode, body)
	}

	text, err := c.provider.ParseResponse(body)
	if err != nil {
		return "", NewLLMError(ErrorTypeResponse, "failed to parse provider response", err)
	}

	c.logger.Debug("generation succeeded", "provider", c.provider.Name(), "chars", len(text))
	return text, nil
}

func (c *Client) statusError(status int, body []byte) *LLMError {
	excerpt := string(body)
	if len(excerpt) > bodyExcerptLen {
		excerpt = excerpt[:bodyExcerptLen]
	}
	msg := fmt.Sprintf("API returned status %d: %s", status, excerpt)

	c.logger.Error("generation API error", "provider", c.provider.Name(), "status", status)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return NewLLMError(ErrorTypeAuthentication, msg, nil)
	case http.StatusTooManyRequests:
		return NewLLMError(ErrorTypeRateLimit, msg, nil)
	default:
		return NewLLMError(ErrorTypeAPI, msg, nil)
	}
}
