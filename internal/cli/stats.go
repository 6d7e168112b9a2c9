package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"alfredoptarigan/talent-matcher/internal/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard counters",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := openDeps(ctx)
	if err != nil {
		return err
	}
	defer d.close()

	stats, err := d.matches.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	if outputFmt == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(stats)
	}
	return renderStats(cmd.OutOrStdout(), stats)
}

func renderStats(w io.Writer, stats *models.DashboardStats) error {
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Count")

	rows := [][]string{
		{"Candidates", strconv.FormatInt(stats.TotalCandidates, 10)},
		{"Open jobs", strconv.FormatInt(stats.OpenJobs, 10)},
		{"Saved matches", strconv.FormatInt(stats.SavedMatches, 10)},
	}
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to render stats: %w", err)
	}

	return table.Render()
}
