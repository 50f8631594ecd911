package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vastuplan/vastuplan/pkg/pipeline"
	"github.com/vastuplan/vastuplan/pkg/render/sink"
)

// cleanupCommand creates the cleanup command removing stale artifacts.
func (c *CLI) cleanupCommand() *cobra.Command {
	var output string
	var maxAge time.Duration

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove generated plans past a maximum age",
		Example: `  vastuplan cleanup
  vastuplan cleanup --output generated_plans --max-age 48h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cutoff := time.Now().Add(-maxAge)
			removed, err := sink.Sweep(output, cutoff)
			if err != nil {
				return err
			}
			if removed == 0 {
				printInfo("No plans older than %s", maxAge)
				return nil
			}
			printSuccess("Removed %d old floor plan file(s)", removed)
			printDetail("Directory: %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", pipeline.DefaultOutputDir, "output directory to sweep")
	cmd.Flags().DurationVar(&maxAge, "max-age", 24*time.Hour, "delete plans older than this")

	return cmd
}
