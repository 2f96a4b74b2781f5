package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brenonun3s/project-llm-optimizer/config"
	"github.com/brenonun3s/project-llm-optimizer/optimizer"
	"github.com/brenonun3s/project-llm-optimizer/utils"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [prompt]",
	Short: "Optimize a single prompt and print the result",
	Long: `Optimize sends one prompt through the optimization pipeline and prints
the improved prompt together with the strategies that were applied.
The prompt is taken from the arguments, or from stdin when absent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		logger := utils.NewLogger(cfg.LogLevel)

		prompt := strings.Join(args, " ")
		if strings.TrimSpace(prompt) == "" {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading prompt from stdin: %w", err)
			}
			prompt = string(raw)
		}

		opt := buildOptimizer(cfg, logger)

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		resp, err := opt.Optimize(ctx, optimizer.Request{Prompt: prompt})
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), resp)
		return nil
	},
}

func printResult(w io.Writer, resp *optimizer.Response) {
	heading := color.New(color.FgGreen, color.Bold)
	strategy := color.New(color.FgCyan, color.Bold)

	_, _ = heading.Fprintln(w, "PROMPT OTIMIZADO")
	fmt.Fprintln(w, resp.OptimizedPrompt)
	fmt.Fprintln(w)

	if len(resp.AppliedTips) == 0 {
		return
	}
	_, _ = heading.Fprintln(w, "DICAS APLICADAS")
	for _, tip := range resp.AppliedTips {
		_, _ = strategy.Fprintf(w, "- %s: ", tip.Strategy)
		fmt.Fprintln(w, tip.Details)
	}
}
