package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/segment"
	"github.com/libertypr/converge/internal/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a rule tree file into segment metrics",
	Long: `Evaluate reads a rule tree (JSON) and prints the full metrics block:
size, per-channel reach, guardrail warnings, impact estimate and lint
findings. Runs entirely offline against the built-in catalog.`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().String("rules", "", "path to a rule tree JSON file")
	evaluateCmd.MarkFlagRequired("rules")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("rules")

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules types.Group
	if err := json.Unmarshal(raw, &rules); err != nil {
		return fmt.Errorf("failed to parse rules file: %w", err)
	}

	engine := segment.New(catalog.Default())
	metrics, err := engine.Metrics(&rules)
	if err != nil {
		return fmt.Errorf("rule tree rejected: %w", err)
	}

	out := struct {
		Metrics  types.SegmentMetrics      `json:"metrics"`
		Lint     []types.ValidationWarning `json:"lint"`
		Profiles []types.SampleProfile     `json:"matchedProfiles"`
	}{
		Metrics:  metrics,
		Lint:     engine.Lint(&rules),
		Profiles: engine.MatchProfiles(&rules),
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
