package providers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/brenonun3s/project-llm-optimizer/utils"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiProvider implements Provider for Google's Generative Language API
// (generateContent). Every request carries the system instruction, the
// user prompt as the sole content, and a generationConfig demanding a
// JSON-only response.
type GeminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	schema  map[string]any
	logger  utils.Logger
}

type GeminiOption func(*GeminiProvider)

// WithBaseURL redirects requests to a different endpoint. Used by tests
// to point the provider at a local stub server.
func WithBaseURL(baseURL string) GeminiOption {
	return func(p *GeminiProvider) {
		p.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithResponseSchema derives a JSON schema from v and attaches it to every
// request's generationConfig, so the API constrains the output shape in
// addition to the mime type.
func WithResponseSchema(v any) GeminiOption {
	return func(p *GeminiProvider) {
		schema, err := reflectResponseSchema(v)
		if err != nil {
			p.logger.Warn("could not derive response schema, continuing without it", "error", err)
			return
		}
		p.schema = schema
	}
}

func NewGeminiProvider(apiKey, model string, opts ...GeminiOption) *GeminiProvider {
	p := &GeminiProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		logger:  utils.NewLogger(utils.LogLevelWarn),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Endpoint returns the generateContent URL for the configured model, e.g.
// ".../v1beta/models/gemini-2.5-flash:generateContent".
func (p *GeminiProvider) Endpoint() string {
	model := p.model
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}
	return fmt.Sprintf("%s/%s:generateContent", p.baseURL, model)
}

func (p *GeminiProvider) Headers() map[string]string {
	return map[string]string{
		"Content-Type":   "application/json",
		"x-goog-api-key": p.apiKey,
	}
}

func (p *GeminiProvider) SupportsJSONOutput() bool {
	return true
}

func (p *GeminiProvider) SetLogger(logger utils.Logger) {
	p.logger = logger
}

// PrepareRequest builds the generateContent body. responseMimeType forces
// the model to answer with JSON and no surrounding prose; the optional
// responseSchema narrows the shape further.
func (p *GeminiProvider) PrepareRequest(systemInstruction, prompt string) ([]byte, error) {
	genConfig := map[string]any{
		"responseMimeType": "application/json",
	}
	if p.schema != nil {
		genConfig["responseSchema"] = p.schema
	}

	body := map[string]any{
		"systemInstruction": map[string]any{
			"parts": []map[string]string{
				{"text": systemInstruction},
			},
		},
		"contents": []map[string]any{
			{
				"role": "user",
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": genConfig,
	}

	return json.Marshal(body)
}

// ParseResponse extracts the text of the first candidate. The vendor
// envelope being empty or missing its text parts is reported as an error;
// whether that text is the JSON the service asked for is judged upstream.
func (p *GeminiProvider) ParseResponse(body []byte) (string, error) {
	var resp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
			FinishReason string `json:"finishReason"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response envelope: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("candidate has no content parts (finish reason %q)", candidate.FinishReason)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

// reflectResponseSchema generates a plain JSON schema object for v. The
// Generative Language API accepts a subset of JSON schema, so references
// are inlined and the draft version keyword is stripped.
func reflectResponseSchema(v any) (map[string]any, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	schema := reflector.Reflect(v)

	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	delete(m, "$schema")
	delete(m, "$id")
	delete(m, "additionalProperties")
	return m, nil
}
