package main

import (
	"fmt"

	"text-summarizer/internal/domain/entity"

	"github.com/spf13/cobra"
)

// NewTonesCmd creates the tones command.
func NewTonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tones",
		Short: "List the available summary tones",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, t := range entity.Tones() {
				instruction := t.Instruction()
				if instruction == "" {
					instruction = "(no instruction)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", t, instruction)
			}
		},
	}
}
