package providers

import (
	"encoding/json"
	"errors"

	"github.com/brenonun3s/project-llm-optimizer/utils"
)

// MockProvider is a deterministic Provider used in tests. It records the
// last prepared request and returns scripted responses.
type MockProvider struct {
	endpoint string
	logger   utils.Logger

	ResponseText string
	PrepareErr   error
	ParseErr     error

	LastSystemInstruction string
	LastPrompt            string
}

func NewMockProvider(endpoint string) *MockProvider {
	return &MockProvider{
		endpoint:     endpoint,
		logger:       utils.NewLogger(utils.LogLevelOff),
		ResponseText: "mock response",
	}
}

func (p *MockProvider) Name() string             { return "mock" }
func (p *MockProvider) Endpoint() string         { return p.endpoint }
func (p *MockProvider) SupportsJSONOutput() bool { return true }

func (p *MockProvider) SetLogger(logger utils.Logger) { p.logger = logger }

func (p *MockProvider) Headers() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

func (p *MockProvider) PrepareRequest(systemInstruction, prompt string) ([]byte, error) {
	if p.PrepareErr != nil {
		return nil, p.PrepareErr
	}
	p.LastSystemInstruction = systemInstruction
	p.LastPrompt = prompt
	return json.Marshal(map[string]string{
		"system": systemInstruction,
		"prompt": prompt,
	})
}

func (p *MockProvider) ParseResponse(body []byte) (string, error) {
	if p.ParseErr != nil {
		return "", p.ParseErr
	}
	if len(body) == 0 {
		return "", errors.New("empty response body")
	}
	if p.ResponseText != "" {
		return p.ResponseText, nil
	}
	return string(body), nil
}
