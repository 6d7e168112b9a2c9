package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Version info set from main
	version = "dev"

	// Global flags
	outputFmt string
)

// SetVersion sets version information from build flags
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "talentctl",
	Short: "Operate the talent matcher from the command line",
	Long: `talentctl works directly against the talent matcher database.

It provides:
  - Seeding candidates and jobs from a TOML fixture file
  - Ranked match lookups for a candidate or a job
  - Dashboard counters`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("talentctl %s\n", version)
	},
}
