package providers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiEndpoint(t *testing.T) {
	p := NewGeminiProvider("key", "gemini-2.5-flash")
	assert.Equal(t,
		"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent",
		p.Endpoint())

	p = NewGeminiProvider("key", "models/gemini-2.5-flash")
	assert.Equal(t,
		"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent",
		p.Endpoint())
}

func TestGeminiEndpointOverride(t *testing.T) {
	p := NewGeminiProvider("key", "gemini-2.5-flash", WithBaseURL("http://127.0.0.1:8081/"))
	assert.Equal(t, "http://127.0.0.1:8081/models/gemini-2.5-flash:generateContent", p.Endpoint())
}

func TestGeminiHeaders(t *testing.T) {
	p := NewGeminiProvider("secret", "gemini-2.5-flash")
	headers := p.Headers()
	assert.Equal(t, "application/json", headers["Content-Type"])
	assert.Equal(t, "secret", headers["x-goog-api-key"])
}

func TestGeminiPrepareRequest(t *testing.T) {
	p := NewGeminiProvider("key", "gemini-2.5-flash")

	body, err := p.PrepareRequest("you rewrite prompts", "write a haiku")
	require.NoError(t, err)

	var req struct {
		SystemInstruction struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"systemInstruction"`
		Contents []struct {
			Role  string `json:"role"`
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
		GenerationConfig struct {
			ResponseMimeType string         `json:"responseMimeType"`
			ResponseSchema   map[string]any `json:"responseSchema"`
		} `json:"generationConfig"`
	}
	require.NoError(t, json.Unmarshal(body, &req))

	require.Len(t, req.SystemInstruction.Parts, 1)
	assert.Equal(t, "you rewrite prompts", req.SystemInstruction.Parts[0].Text)
	require.Len(t, req.Contents, 1)
	assert.Equal(t, "user", req.Contents[0].Role)
	require.Len(t, req.Contents[0].Parts, 1)
	assert.Equal(t, "write a haiku", req.Contents[0].Parts[0].Text)
	assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)
	assert.Nil(t, req.GenerationConfig.ResponseSchema)
}

func TestGeminiPrepareRequestWithSchema(t *testing.T) {
	type tip struct {
		Strategy string `json:"estrategia"`
		Details  string `json:"detalhes"`
	}
	type response struct {
		OptimizedPrompt string `json:"prompt_otimizado"`
		AppliedTips     []tip  `json:"dicas_aplicadas"`
	}

	p := NewGeminiProvider("key", "gemini-2.5-flash", WithResponseSchema(&response{}))

	body, err := p.PrepareRequest("sys", "prompt")
	require.NoError(t, err)

	var req struct {
		GenerationConfig struct {
			ResponseSchema map[string]any `json:"responseSchema"`
		} `json:"generationConfig"`
	}
	require.NoError(t, json.Unmarshal(body, &req))

	schema := req.GenerationConfig.ResponseSchema
	require.NotNil(t, schema)
	assert.NotContains(t, schema, "$schema")
	assert.Equal(t, "object", schema["type"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "prompt_otimizado")
	assert.Contains(t, props, "dicas_aplicadas")
}

func TestGeminiParseResponse(t *testing.T) {
	p := NewGeminiProvider("key", "gemini-2.5-flash")

	body := `{
		"candidates": [
			{
				"content": {
					"parts": [
						{"text": "{\"prompt_otimizado\""},
						{"text": ": \"x\"}"}
					]
				},
				"finishReason": "STOP"
			}
		]
	}`

	text, err := p.ParseResponse([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, `{"prompt_otimizado": "x"}`, text)
}

func TestGeminiParseResponseErrors(t *testing.T) {
	p := NewGeminiProvider("key", "gemini-2.5-flash")

	testCases := []struct {
		name string
		body string
	}{
		{"invalid envelope", "not even json"},
		{"no candidates", `{"candidates": []}`},
		{"no parts", `{"candidates": [{"content": {"parts": []}, "finishReason": "SAFETY"}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.ParseResponse([]byte(tc.body))
			require.Error(t, err)
		})
	}
}
