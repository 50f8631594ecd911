package cli

import (
	"github.com/spf13/cobra"

	"github.com/vastuplan/vastuplan/pkg/pipeline"
)

// validateCommand creates the validate command. It runs the rule
// engine without rendering and prints the report and remedies.
func (c *CLI) validateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a plot against Vastu rules",
		Long: `Validate checks plot shape, aspect ratio and minimum area, prints
the computed room placements, and suggests Vastu remedies. No image
is rendered.`,
		Example: `  vastuplan validate --direction north --width 12 --length 15
  vastuplan validate --direction south --width 8 --length 20 --shape l_shaped`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				Direction:  opts.direction,
				Width:      opts.width,
				Length:     opts.length,
				Shape:      opts.shape,
				MainDoor:   opts.mainDoor,
				SkipRender: true,
				Logger:     c.Logger,
			})
			if err != nil {
				printError("%v", err)
				return err
			}

			printPlanSummary(result)
			if result.Report.IsValid {
				printSuccess("Plot passes all Vastu checks")
			} else {
				printWarning("Plot has %d validation issue(s)", len(result.Report.Messages))
			}
			printNewline()
			printRemedies(result.Remedies)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.direction, "direction", "d", "", "plot facing direction (north, east, ...)")
	cmd.Flags().Float64VarP(&opts.width, "width", "W", 0, "plot width in meters")
	cmd.Flags().Float64VarP(&opts.length, "length", "L", 0, "plot length in meters")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "plot shape: rectangular (default), square, l_shaped")
	cmd.Flags().StringVar(&opts.mainDoor, "door", "", "main door direction (defaults to plot direction)")

	_ = cmd.MarkFlagRequired("direction")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}
