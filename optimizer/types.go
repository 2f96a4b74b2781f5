package optimizer

// Request carries the caller's original prompt. It lives for a single
// Optimize call.
type Request struct {
	Prompt string `json:"prompt_original" validate:"required"`
}

// Response is the validated result of one optimization. The JSON names
// are the service's public wire contract and match the shape the model is
// instructed to produce.
type Response struct {
	OptimizedPrompt string `json:"prompt_otimizado" validate:"required"`
	AppliedTips     []Tip  `json:"dicas_aplicadas" validate:"required,dive"`
}

// Tip describes one rewriting strategy the model applied, in the order
// the model produced them.
type Tip struct {
	Strategy string `json:"estrategia" validate:"required"`
	Details  string `json:"detalhes" validate:"required"`
}
