package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telugudelicacies/palettegen/internal/colour"
)

// newConvertCmd represents the convert command
func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Show hex, RGB and HSL forms of colours",
		Long: `Show each colour as normalised hex, rgb() and hsl(), with its WCAG relative
luminance and the text colour that reads on it.

Examples:
  palettegen convert '#228B22'
  palettegen convert '#fa0' '#8b0000'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := NewTable([]string{"Swatch", "Hex", "RGB", "HSL", "Luminance", "Text"})

			for _, arg := range args {
				rgb, err := colour.HexToRGB(arg)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				hex := rgb.Hex()
				table.AddRow(
					colour.ColourPreview(hex, 6),
					hex,
					rgb.String(),
					colour.RGBToHSL(rgb.R, rgb.G, rgb.B).String(),
					fmt.Sprintf("%.4f", colour.RelativeLuminance(rgb)),
					colour.AccessibleTextColour(hex, colour.DefaultTextColour),
				)
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}
