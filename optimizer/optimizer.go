// Package optimizer implements the prompt optimization pipeline: validate
// the caller's prompt, send it with the fixed system instruction to the
// generation collaborator, and enforce the JSON output contract on
// whatever comes back.
//
// The contract enforcement is two-staged on purpose. A JSON syntax
// failure (MalformedOutput) means the model answered with prose and the
// fix is instruction tuning; a shape failure (SchemaMismatch) means the
// model answered with JSON missing or mistyping a required field and the
// fix is schema relaxation. Collapsing the two would lose that signal.
package optimizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/brenonun3s/project-llm-optimizer/utils"
)

// excerptLen bounds how much upstream text is echoed into diagnostics.
const excerptLen = 200

// Generator is the external generation collaborator: text in, text out.
// *llm.Client satisfies it in production; tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// PromptOptimizer orchestrates a single optimization call. It holds no
// mutable per-call state and is safe for concurrent use.
type PromptOptimizer struct {
	generator       Generator
	validate        *validator.Validate
	counter         *TokenCounter
	maxPromptTokens int
	logger          utils.Logger
}

type Option func(*PromptOptimizer)

func WithLogger(logger utils.Logger) Option {
	return func(po *PromptOptimizer) {
		po.logger = logger
	}
}

// WithTokenBudget enables the inbound prompt token guard. A nil counter
// disables the check.
func WithTokenBudget(counter *TokenCounter, maxTokens int) Option {
	return func(po *PromptOptimizer) {
		po.counter = counter
		po.maxPromptTokens = maxTokens
	}
}

// New builds a PromptOptimizer around the given generator. A nil
// generator is allowed: it models the service running without a usable
// credential, and every call then fails with ServiceUnavailable.
func New(generator Generator, opts ...Option) *PromptOptimizer {
	po := &PromptOptimizer{
		generator: generator,
		validate:  validator.New(),
		logger:    utils.NewLogger(utils.LogLevelWarn),
	}
	for _, opt := range opts {
		opt(po)
	}
	return po
}

// Optimize rewrites the caller's prompt. It either returns a validated
// Response or an *OptimizationError; the input request is never mutated
// and no state survives the call.
func (po *PromptOptimizer) Optimize(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, NewOptimizationError(ErrorTypeInvalidRequest, "prompt must be a non-empty string", nil)
	}

	if po.counter != nil && po.maxPromptTokens > 0 {
		if tokens := po.counter.Count(req.Prompt); tokens > po.maxPromptTokens {
			msg := fmt.Sprintf("prompt is %d tokens, the limit is %d", tokens, po.maxPromptTokens)
			return nil, NewOptimizationError(ErrorTypeInvalidRequest, msg, nil)
		}
	}

	if po.generator == nil {
		return nil, NewOptimizationError(ErrorTypeServiceUnavailable,
			"generation client is not configured, check the GEMINI_API_KEY credential", nil)
	}

	raw, err := po.generator.Generate(ctx, SystemInstruction, req.Prompt)
	if err != nil {
		po.logger.Error("generation call failed", "error", err)
		return nil, NewOptimizationError(ErrorTypeUpstream, "generation call failed", err)
	}

	return po.parseResponse(raw)
}

// parseResponse enforces the output contract on the raw model text.
func (po *PromptOptimizer) parseResponse(raw string) (*Response, error) {
	cleaned := cleanJSONOutput(raw)

	data := []byte(cleaned)
	if !json.Valid(data) {
		msg := fmt.Sprintf("model output is not valid JSON: %s", excerpt(raw))
		return nil, NewOptimizationError(ErrorTypeMalformedOutput, msg, nil)
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		// Valid JSON that cannot populate the struct is a shape problem,
		// e.g. dicas_aplicadas as a string instead of a sequence.
		return nil, NewOptimizationError(ErrorTypeSchemaMismatch, "model JSON does not match the expected shape", err)
	}

	if err := po.validate.Struct(&resp); err != nil {
		return nil, NewOptimizationError(ErrorTypeSchemaMismatch, "model JSON is missing required fields", err)
	}

	po.logger.Debug("optimization validated", "tips", len(resp.AppliedTips))
	return &resp, nil
}

// cleanJSONOutput strips the markdown fences models sometimes wrap around
// JSON even when told not to.
func cleanJSONOutput(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}

// excerpt truncates s to the first excerptLen runes for diagnostics.
func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptLen {
		return s
	}
	return string(runes[:excerptLen]) + "..."
}
