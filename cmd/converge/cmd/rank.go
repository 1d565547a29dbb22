package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/radar"
	"github.com/libertypr/converge/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank market opportunities against a campaign context",
	Long: `Rank reads a campaign context (JSON) and prints the opportunity catalog
in score order together with inferred drivers, assumption lines and the
scoring rationale for each entry. Runs entirely offline against the
built-in catalog.`,
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.Flags().String("context", "", "path to a campaign context JSON file")
	rankCmd.MarkFlagRequired("context")
}

type rankedEntry struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

func runRank(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("context")

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read context file: %w", err)
	}

	var ctx types.ContextInput
	if err := json.Unmarshal(raw, &ctx); err != nil {
		return fmt.Errorf("failed to parse context file: %w", err)
	}

	engine := radar.New(catalog.Default())

	ranked := engine.Rank(ctx)
	entries := make([]rankedEntry, 0, len(ranked))
	for _, r := range ranked {
		entries = append(entries, rankedEntry{
			ID:      r.Opportunity.ID,
			Title:   r.Opportunity.Title,
			Score:   r.Score,
			Reasons: engine.Explain(ctx, r.Opportunity),
		})
	}

	out := struct {
		SeedName      string         `json:"seedName"`
		Drivers       []types.Driver `json:"drivers"`
		Assumptions   []string       `json:"assumptions"`
		Opportunities []rankedEntry  `json:"opportunities"`
	}{
		SeedName:      engine.SeedName(ctx),
		Drivers:       engine.InferDrivers(ctx),
		Assumptions:   engine.Assumptions(ctx),
		Opportunities: entries,
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
