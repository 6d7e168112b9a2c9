package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load candidates and jobs from a TOML file",
	Long: `Create every candidate and job listed in a TOML fixture file.

Examples:
  talentctl seed --file fixtures/sample.toml --owner recruiter-1`,
	RunE: runSeed,
}

var (
	seedFile  string
	seedOwner string
)

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "TOML fixture file")
	seedCmd.Flags().StringVar(&seedOwner, "owner", "", "user id recorded as creator of the seeded records")
	_ = seedCmd.MarkFlagRequired("file")
	_ = seedCmd.MarkFlagRequired("owner")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fixtures, err := LoadFixtures(seedFile)
	if err != nil {
		return err
	}

	d, err := openDeps(ctx)
	if err != nil {
		return err
	}
	defer d.close()

	res, err := fixtures.Apply(ctx, seedOwner, d.candidates, d.jobs)
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d candidates and %d jobs\n", res.Candidates, res.Jobs)
	return err
}
