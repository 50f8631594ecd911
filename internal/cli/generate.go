package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vastuplan/vastuplan/pkg/pipeline"
	"github.com/vastuplan/vastuplan/pkg/plan"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	direction string  // plot facing direction
	width     float64 // plot width in meters
	length    float64 // plot length in meters
	shape     string  // plot shape
	mainDoor  string  // main door direction (defaults to plot direction)
	format    string  // artifact format: png or jpeg
	output    string  // output directory
	scale     int     // base pixels per meter
	noCache   bool    // disable the render cache
	refresh   bool    // bypass cached render bytes
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an annotated floor plan image",
		Long: `Generate computes a Vastu-compliant room layout for the given plot
and renders it as an annotated image with dimensions, door swings,
windows, a compass rose and a legend.`,
		Example: `  vastuplan generate --direction north --width 12 --length 15
  vastuplan generate --direction east --width 10 --length 12 --shape square --format jpeg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				Direction:      opts.direction,
				Width:          opts.width,
				Length:         opts.length,
				Shape:          opts.shape,
				MainDoor:       opts.mainDoor,
				Format:         opts.format,
				OutputDir:      opts.output,
				BasePxPerMeter: opts.scale,
				Refresh:        opts.refresh,
				Logger:         c.Logger,
			})
			if err != nil {
				printError("%v", err)
				return err
			}

			printPlanSummary(result)
			printSuccess("Floor plan generated")
			printStats(result.Stats.RoomCount, result.CacheInfo.RenderHit)
			printFile(filepath.Join(opts.output, result.Filename))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.direction, "direction", "d", "", "plot facing direction (north, east, ...)")
	cmd.Flags().Float64VarP(&opts.width, "width", "W", 0, "plot width in meters")
	cmd.Flags().Float64VarP(&opts.length, "length", "L", 0, "plot length in meters")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "plot shape: rectangular (default), square, l_shaped")
	cmd.Flags().StringVar(&opts.mainDoor, "door", "", "main door direction (defaults to plot direction)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "artifact format: png (default), jpeg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", pipeline.DefaultOutputDir, "output directory")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "base pixels per meter (default 30)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	_ = cmd.MarkFlagRequired("direction")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}

// printPlanSummary prints the room layout and any validation warnings.
func printPlanSummary(result *pipeline.Result) {
	fmt.Println(StyleTitle.Render("Floor plan"))
	printKeyValue("Plot", fmt.Sprintf("%.1f × %.1f m, %s facing",
		result.Spec.WidthM, result.Spec.LengthM, result.Spec.Direction.Label()))
	printKeyValue("Shape", string(result.Spec.Shape))

	for _, room := range result.Rooms {
		printDetail("%-16s %.2f × %.2f m at (%.2f, %.2f)",
			room.Type.Label(), room.Width, room.Length, room.X, room.Y)
	}

	for _, msg := range result.Report.Messages {
		printWarning("%s", msg)
	}
	printNewline()
}

// printRemedies prints remedy suggestions grouped by category.
func printRemedies(remedies plan.RemedyMap) {
	for _, cat := range plan.RemedyCategories {
		suggestions := remedies[cat]
		if len(suggestions) == 0 {
			continue
		}
		printInfo("%s", categoryLabel(cat))
		for _, s := range suggestions {
			printDetail("%s", s)
		}
	}
}

func categoryLabel(cat plan.RemedyCategory) string {
	switch cat {
	case plan.RemedyPlotShape:
		return "Plot shape remedies"
	case plan.RemedyRoomPlacement:
		return "Room placement remedies"
	case plan.RemedyEnergyBalance:
		return "Energy balance remedies"
	}
	return string(cat)
}
