package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telugudelicacies/palettegen/internal/colour"
)

// ErrContrastFailed is returned by check --strict when a combination fails.
var ErrContrastFailed = errors.New("contrast check failed")

type checkOptions struct {
	level  string
	size   string
	strict bool
}

// newCheckCmd represents the check command
func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <foreground> <background>",
		Short: "Check the WCAG contrast of a text colour on a background",
		Long: `Check the WCAG 2.x contrast ratio of a text colour on a background.

Without --level or --size every combination is reported:
  AA normal 4.5:1, AA large 3:1, AAA normal 7:1, AAA large 4.5:1

When a combination fails, a text colour that passes AA for normal text is
suggested.

Examples:
  palettegen check '#ffffff' '#228b22'
  palettegen check '#000' '#ffd700' --level AAA --size normal --strict`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.level, "level", "", "conformance level (AA or AAA, default both)")
	cmd.Flags().StringVar(&opts.size, "size", "", "text size (normal or large, default both)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with an error when any reported combination fails")

	return cmd
}

func runCheck(cmd *cobra.Command, fg, bg string, opts *checkOptions) error {
	levels := []colour.Level{colour.LevelAA, colour.LevelAAA}
	if opts.level != "" {
		levels = []colour.Level{colour.Level(opts.level)}
	}
	sizes := []colour.TextSize{colour.SizeNormal, colour.SizeLarge}
	if opts.size != "" {
		sizes = []colour.TextSize{colour.TextSize(opts.size)}
	}

	table := NewTable([]string{"Level", "Size", "Ratio", "Required", "Result"})
	var ratio float64
	failed := false

	for _, level := range levels {
		for _, size := range sizes {
			result, err := colour.CheckAccessibility(fg, bg, level, size)
			if err != nil {
				return err
			}
			ratio = result.Ratio

			verdict := "PASS"
			if !result.Passes {
				verdict = "FAIL"
				failed = true
			}
			table.AddRow(
				string(result.Level),
				string(result.Size),
				fmt.Sprintf("%.2f:1", result.Ratio),
				fmt.Sprintf("%.1f:1", result.Threshold),
				verdict,
			)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s on %s\n", colour.ColourPreviewWithText(bg, "Aa", 6), bg)
	fmt.Fprintf(out, "Contrast ratio: %.2f:1\n\n", ratio)
	fmt.Fprint(out, table.Render())

	if failed {
		fmt.Fprintf(out, "\nSuggested text colour on %s: %s\n", bg, colour.AccessibleTextColour(bg, fg))
		if opts.strict {
			return ErrContrastFailed
		}
	}
	return nil
}
