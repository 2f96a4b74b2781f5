package main

import (
	"github.com/spf13/cobra"

	"github.com/brenonun3s/project-llm-optimizer/config"
	"github.com/brenonun3s/project-llm-optimizer/llm"
	"github.com/brenonun3s/project-llm-optimizer/optimizer"
	"github.com/brenonun3s/project-llm-optimizer/providers"
	"github.com/brenonun3s/project-llm-optimizer/utils"
)

var rootCmd = &cobra.Command{
	Use:   "optimizer",
	Short: "Prompt optimization service backed by Gemini",
	Long: `optimizer takes a free-text prompt, sends it to Gemini with a fixed
optimization persona, and returns an improved prompt annotated with the
rewriting strategies that were applied.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(optimizeCmd)
}

// buildOptimizer assembles the pipeline from configuration. A missing
// credential degrades instead of failing: the optimizer is built without
// a generator and reports ServiceUnavailable per call.
func buildOptimizer(cfg *config.Config, logger utils.Logger) *optimizer.PromptOptimizer {
	opts := []optimizer.Option{optimizer.WithLogger(logger)}

	if counter, err := optimizer.NewTokenCounter(); err != nil {
		logger.Warn("token encoding unavailable, prompt budget disabled", "error", err)
	} else {
		opts = append(opts, optimizer.WithTokenBudget(counter, cfg.MaxPromptTokens))
	}

	var generator optimizer.Generator
	if cfg.HasCredential() {
		provider := providers.NewGeminiProvider(cfg.GeminiAPIKey, cfg.Model,
			providers.WithResponseSchema(&optimizer.Response{}))
		generator = llm.NewClient(provider, cfg, logger)
	} else {
		logger.Error("GEMINI_API_KEY is not set, optimization calls will fail until it is configured")
	}

	return optimizer.New(generator, opts...)
}
