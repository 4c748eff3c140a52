package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/posting-optimizer/internal/engine"
	"github.com/jonathan/posting-optimizer/internal/rules"
	"github.com/jonathan/posting-optimizer/internal/types"
)

var analyzeOptimize bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a posting from a JSON file or stdin",
	Long: `Read a posting (JSON with at least "title" and "description") from the given
file or stdin, run the analysis pipeline, and print the result as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeOptimize, "optimize", false, "Also emit the restructured content")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read posting file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	var posting types.JobPosting
	if err := json.Unmarshal(data, &posting); err != nil {
		return fmt.Errorf("failed to parse posting JSON: %w", err)
	}
	if posting.Title == "" || posting.Description == "" {
		return fmt.Errorf("posting must have a title and a description")
	}

	ruleTables, err := rules.Load()
	if err != nil {
		return fmt.Errorf("failed to load rule tables: %w", err)
	}
	eng := engine.New(ruleTables)

	var out any
	if analyzeOptimize {
		out = eng.Optimize(&posting)
	} else {
		out = eng.Analyze(&posting)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
