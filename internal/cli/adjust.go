package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telugudelicacies/palettegen/internal/colour"
)

type adjustOptions struct {
	lightness  int
	saturation int
}

// newAdjustCmd represents the adjust command
func newAdjustCmd() *cobra.Command {
	opts := &adjustOptions{}

	cmd := &cobra.Command{
		Use:   "adjust <colour>",
		Short: "Shift a colour's lightness and saturation",
		Long: `Shift a colour's HSL lightness and saturation by whole percentage points.
Results are clamped to 0-100. Lightness is applied before saturation.

Examples:
  palettegen adjust '#8b0000' --lightness 20
  palettegen adjust '#228b22' --lightness -10 --saturation 30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !colour.IsValidColour(args[0]) {
				return fmt.Errorf("%s: %w", args[0], colour.ErrInvalidColour)
			}

			hex := colour.AdjustLightness(args[0], opts.lightness)
			hex = colour.AdjustSaturation(hex, opts.saturation)

			fmt.Fprintln(cmd.OutOrStdout(), colour.FormatColourWithPreview(hex, 6))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.lightness, "lightness", "l", 0, "lightness change in percentage points (-100 to 100)")
	cmd.Flags().IntVarP(&opts.saturation, "saturation", "s", 0, "saturation change in percentage points (-100 to 100)")

	return cmd
}
