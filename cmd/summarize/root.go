package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Abstractive text summarizer",
		Long: `summarize produces abstractive summaries of text, PDF, Word and HTML
documents or article URLs, with optional tone, keyword highlighting and
readability metrics.

The generator backend is configured through the same environment variables
as the API server (SUMMARIZER_BACKEND, HF_API_TOKEN, OPENAI_API_KEY, ...).
A .env file in the working directory is loaded when present.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewTonesCmd())
	cmd.AddCommand(NewTokenCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
