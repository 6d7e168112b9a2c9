package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"alfredoptarigan/talent-matcher/internal/matching"
	"alfredoptarigan/talent-matcher/internal/services"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank matches for a candidate or a job",
	Long: `Score a candidate against every open job, or a job against every candidate.

Examples:
  talentctl match --candidate 3f6c...   # Jobs for a candidate
  talentctl match --job 9a1d... -o json # Candidates for a job as JSON`,
	RunE: runMatch,
}

var (
	matchCandidate string
	matchJob       string
)

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchCandidate, "candidate", "", "candidate id to find jobs for")
	matchCmd.Flags().StringVar(&matchJob, "job", "", "job id to find candidates for")
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	anchor, err := parseAnchor(matchCandidate, matchJob)
	if err != nil {
		return err
	}

	d, err := openDeps(ctx)
	if err != nil {
		return err
	}
	defer d.close()

	results, err := d.matches.FindMatches(ctx, anchor)
	if err != nil {
		return fmt.Errorf("failed to find matches: %w", err)
	}

	if outputFmt == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	return renderResults(cmd.OutOrStdout(), results, anchor.CandidateID != nil)
}

func parseAnchor(candidate, job string) (services.Anchor, error) {
	var anchor services.Anchor

	if candidate == "" && job == "" {
		return anchor, errors.New("one of --candidate or --job is required")
	}

	if candidate != "" {
		id, err := uuid.Parse(candidate)
		if err != nil {
			return anchor, fmt.Errorf("invalid candidate id: %w", err)
		}
		anchor.CandidateID = &id
	}

	if job != "" {
		id, err := uuid.Parse(job)
		if err != nil {
			return anchor, fmt.Errorf("invalid job id: %w", err)
		}
		anchor.JobID = &id
	}

	return anchor, nil
}

// renderResults prints one row per result. jobsSide selects whether the
// job or the candidate is named in each row.
func renderResults(w io.Writer, results []matching.Result, jobsSide bool) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	if jobsSide {
		table.Header("Score", "Tier", "Job", "Company", "Matched skills")
	} else {
		table.Header("Score", "Tier", "Candidate", "Availability", "Matched skills")
	}

	for _, r := range results {
		row := []string{strconv.Itoa(r.MatchScore), string(r.Tier)}
		if jobsSide {
			row = append(row, r.Job.Title, r.Job.Company)
		} else {
			row = append(row, r.Candidate.Name, string(r.Candidate.Availability))
		}
		row = append(row, strings.Join(r.SkillMatches, ", "))

		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to render row: %w", err)
		}
	}

	return table.Render()
}
