package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telugudelicacies/palettegen/internal/colour"
)

// newHarmonyCmd represents the harmony command
func newHarmonyCmd() *cobra.Command {
	var angle int

	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Show complementary and analogous colours",
		Long: `Show the complementary colour (hue rotated by 180 degrees) and the two
analogous colours (hue rotated by -angle and +angle).

Examples:
  palettegen harmony '#228b22'
  palettegen harmony '#ff0000' --angle 120`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := colour.NormaliseHex(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			analogous := colour.Analogous(base, angle)
			rows := [][2]string{
				{"base", base},
				{"complementary", colour.Complementary(base)},
				{fmt.Sprintf("analogous -%d", angle), analogous[0]},
				{fmt.Sprintf("analogous +%d", angle), analogous[2]},
			}

			table := NewTable([]string{"Swatch", "Role", "Hex", "HSL"})
			for _, row := range rows {
				rgb, err := colour.HexToRGB(row[1])
				if err != nil {
					return err
				}
				table.AddRow(
					colour.ColourPreview(row[1], 6),
					row[0],
					row[1],
					colour.RGBToHSL(rgb.R, rgb.G, rgb.B).String(),
				)
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	cmd.Flags().IntVar(&angle, "angle", colour.DefaultAnalogousAngle, "analogous hue offset in degrees")

	return cmd
}
